package target

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Config describes the application under test.
type Config struct {
	// BackendURL is the base URL of the KML API.
	BackendURL string `mapstructure:"backend_url" default:"http://localhost:8000"`
	// FrontendURLs are probed in order until one answers 200.
	FrontendURLs []string `mapstructure:"frontend_urls" default:"http://localhost:3000,http://192.168.0.72:3000"`
	// BackendTimeout bounds each backend request. Zero means no timeout.
	BackendTimeout time.Duration `mapstructure:"backend_timeout" default:"0s"`
	// FrontendTimeout bounds each frontend probe.
	FrontendTimeout time.Duration `mapstructure:"frontend_timeout" default:"5s"`
}

// Validate checks that every configured URL is absolute.
func (c Config) Validate() error {
	if err := validateBaseURL(c.BackendURL); err != nil {
		return fmt.Errorf("backend_url: %w", err)
	}
	if len(c.FrontendURLs) == 0 {
		return fmt.Errorf("frontend_urls: at least one URL is required")
	}
	for _, u := range c.FrontendURLs {
		if err := validateBaseURL(u); err != nil {
			return fmt.Errorf("frontend_urls: %w", err)
		}
	}
	return nil
}

// Endpoint joins the backend base URL with path.
func (c Config) Endpoint(path string) string {
	return strings.TrimRight(c.BackendURL, "/") + "/" + strings.TrimLeft(path, "/")
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("URL %q must use http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("URL %q has no host", raw)
	}
	return nil
}
