package server

import (
	"fmt"

	"github.com/robfig/cron/v3"
)

// Config holds configuration for the HTTP server used by serve mode.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
	// Schedule is an optional cron expression (e.g. "@every 5m") for background runs.
	Schedule string `mapstructure:"schedule" default:""`
}

// HasSchedule reports whether background runs are configured.
func (c Config) HasSchedule() bool {
	return c.Schedule != ""
}

// ValidateSchedule checks that the configured schedule parses as a cron expression.
func (c Config) ValidateSchedule() error {
	if !c.HasSchedule() {
		return nil
	}
	if _, err := cron.ParseStandard(c.Schedule); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", c.Schedule, err)
	}
	return nil
}
