package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadSweepConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		restore := setupAndRestoreEnv(t, map[string]string{})
		defer restore()

		cfg := LoadSweepConfigFromEnv()
		assert.True(t, cfg.Enabled)
		assert.Equal(t, 24*time.Hour, cfg.Interval)
		assert.True(t, cfg.RunOnStart)
	})

	t.Run("custom values", func(t *testing.T) {
		restore := setupAndRestoreEnv(t, map[string]string{
			"SWEEP_ENABLED":      "false",
			"SWEEP_INTERVAL":     "1h",
			"SWEEP_RUN_ON_START": "false",
		})
		defer restore()

		cfg := LoadSweepConfigFromEnv()
		assert.False(t, cfg.Enabled)
		assert.Equal(t, time.Hour, cfg.Interval)
		assert.False(t, cfg.RunOnStart)
	})
}

func TestSweepConfig_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cfg := SweepConfig{Enabled: true, Interval: time.Hour}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("disabled sweeper ignores interval", func(t *testing.T) {
		cfg := SweepConfig{Enabled: false, Interval: 0}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("non-positive interval", func(t *testing.T) {
		cfg := SweepConfig{Enabled: true, Interval: 0}
		assert.Error(t, cfg.Validate())
	})
}
