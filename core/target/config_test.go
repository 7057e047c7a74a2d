package target_test

import (
	"testing"

	"kml-smoke/core/target"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     target.Config
		wantErr string
	}{
		{"Defaults", target.Config{BackendURL: "http://localhost:8000", FrontendURLs: []string{"http://localhost:3000"}}, ""},
		{"NoScheme", target.Config{BackendURL: "localhost:8000", FrontendURLs: []string{"http://localhost:3000"}}, "backend_url"},
		{"NoFrontends", target.Config{BackendURL: "http://localhost:8000"}, "at least one"},
		{"BadFrontend", target.Config{BackendURL: "http://localhost:8000", FrontendURLs: []string{"ftp://host"}}, "frontend_urls"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestConfig_Endpoint(t *testing.T) {
	c := target.Config{BackendURL: "http://localhost:8000/"}
	assert.Equal(t, "http://localhost:8000/api/kml/routes", c.Endpoint("/api/kml/routes"))
	assert.Equal(t, "http://localhost:8000/docs", c.Endpoint("docs"))
}
