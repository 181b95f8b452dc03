// Package logging builds the zap loggers used by the CLI and the TUI.
package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// New returns a JSON logger writing to path at the given level.
// An empty path returns a no-op logger: the TUI owns stdout and stderr.
func New(path, level string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	return build([]string{path}, level)
}

// NewStderr returns a console logger on stderr, for non-interactive commands.
func NewStderr(level string) (*zap.Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}
	config := zap.NewDevelopmentConfig()
	config.Level = lvl
	config.DisableStacktrace = true
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

func build(paths []string, level string) (*zap.Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}
	config := zap.NewProductionConfig()
	config.Level = lvl
	config.OutputPaths = paths
	config.ErrorOutputPaths = paths
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

func parseLevel(level string) (zap.AtomicLevel, error) {
	if level == "" {
		return zap.NewAtomicLevelAt(zap.InfoLevel), nil
	}
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return zap.AtomicLevel{}, fmt.Errorf("parse log level %q: %w", level, err)
	}
	return lvl, nil
}
