package server_test

import (
	"testing"

	"kml-smoke/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_ValidateSchedule(t *testing.T) {
	tests := []struct {
		name     string
		schedule string
		wantErr  bool
	}{
		{"Empty", "", false},
		{"Every", "@every 5m", false},
		{"Hourly", "@hourly", false},
		{"Standard", "*/10 * * * *", false},
		{"Garbage", "whenever", true},
		{"TooManyFields", "* * * * * * *", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{Schedule: tt.schedule}
			err := c.ValidateSchedule()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_HasSchedule(t *testing.T) {
	assert.False(t, server.Config{}.HasSchedule())
	assert.True(t, server.Config{Schedule: "@daily"}.HasSchedule())
}
