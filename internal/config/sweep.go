package config

import (
	"fmt"
	"time"
)

// SweepConfig holds configuration for the periodic lifecycle sweep.
type SweepConfig struct {
	// Enabled controls whether the in-process sweeper goroutine runs.
	Enabled bool
	// Interval is the time between sweep ticks. The sweep is idempotent with
	// respect to final cycle state, so any at-least-once cadence is safe.
	Interval time.Duration
	// RunOnStart triggers one sweep immediately on startup before the first tick.
	RunOnStart bool
}

// LoadSweepConfigFromEnv loads sweep configuration from environment variables.
func LoadSweepConfigFromEnv() SweepConfig {
	return SweepConfig{
		Enabled:    GetEnvBool("SWEEP_ENABLED", true),
		Interval:   GetEnvDuration("SWEEP_INTERVAL", 24*time.Hour),
		RunOnStart: GetEnvBool("SWEEP_RUN_ON_START", true),
	}
}

// Validate validates sweep configuration.
func (c SweepConfig) Validate() error {
	if c.Enabled && c.Interval <= 0 {
		return fmt.Errorf("sweep interval must be greater than 0")
	}
	return nil
}
