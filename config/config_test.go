package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnv_Defaults(t *testing.T) {
	cfg := LoadEnv()

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "console", cfg.Logger.Encoding)
	assert.Equal(t, ".", cfg.Report.Dir)
	assert.True(t, cfg.Seed.DemoData)
}

func TestLoadEnv_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOGGER_LEVEL", "warn")
	t.Setenv("REPORT_DIR", "/tmp/reports")
	t.Setenv("SEED_DEMO_DATA", "false")

	cfg := LoadEnv()

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "warn", cfg.Logger.Level)
	assert.Equal(t, "/tmp/reports", cfg.Report.Dir)
	assert.False(t, cfg.Seed.DemoData)
}
