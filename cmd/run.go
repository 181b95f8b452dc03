package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ayomide-cmd/folio/internal/app"
	"github.com/ayomide-cmd/folio/internal/catalog"
	"github.com/ayomide-cmd/folio/internal/logging"
)

// runApp loads configuration and content, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer func() { _ = log.Sync() }()

	portfolio, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("load portfolio: %w", err)
	}

	log.Info("starting",
		zap.String("version", version),
		zap.Int("projects", portfolio.Catalog().Len()),
		zap.Bool("skip_intro", cfg.SkipIntro))

	return app.Run(app.Options{
		Portfolio: portfolio,
		Loader:    cfg.Loader(),
		SkipIntro: cfg.SkipIntro,
		Logger:    log,
	})
}
