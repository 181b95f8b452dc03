package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 30*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, 1, cfg.Step)
	assert.Equal(t, 500*time.Millisecond, cfg.Settle)
	assert.False(t, cfg.SkipIntro)
	assert.Empty(t, cfg.LogFile)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("FOLIO_TICK", "5ms")
	t.Setenv("FOLIO_STEP", "4")
	t.Setenv("FOLIO_SETTLE", "0s")
	t.Setenv("FOLIO_SKIP_INTRO", "true")
	t.Setenv("FOLIO_LOG_FILE", "/tmp/folio.log")
	t.Setenv("FOLIO_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, 4, cfg.Step)
	assert.Zero(t, cfg.Settle)
	assert.True(t, cfg.SkipIntro)
	assert.Equal(t, "/tmp/folio.log", cfg.LogFile)
	assert.Equal(t, "debug", cfg.LogLevel)

	lc := cfg.Loader()
	assert.Equal(t, 5*time.Millisecond, lc.Interval)
	assert.Equal(t, 4, lc.Step)
	assert.Equal(t, 100, lc.Max)
	assert.Zero(t, lc.Settle)
}

func TestLoad_ParseError(t *testing.T) {
	t.Setenv("FOLIO_TICK", "soon")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}

func TestLoad_RangeErrors(t *testing.T) {
	t.Setenv("FOLIO_TICK", "0s")
	t.Setenv("FOLIO_STEP", "101")
	t.Setenv("FOLIO_SETTLE", "-1s")

	_, err := Load()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "FOLIO_TICK")
	assert.Contains(t, msg, "FOLIO_STEP")
	assert.Contains(t, msg, "FOLIO_SETTLE")
}
