package cmd

import (
	"fmt"
	"io"

	"kml-smoke/core/config"
	"kml-smoke/core/httpclient"
	"kml-smoke/core/logger"
	"kml-smoke/core/sample"
	"kml-smoke/core/storage"
	"kml-smoke/feature/smoke"
	"kml-smoke/feature/smoke/checks"

	"go.uber.org/zap"
)

// app bundles what every command needs.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	service *smoke.Service
}

// bootstrap loads configuration and wires the checkers. Console diagnostics go to out.
func bootstrap(out io.Writer) (*app, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	var store storage.Client
	if cfg.Sample.Source == sample.SourceStorage {
		if store, err = storage.NewClient(cfg.Storage); err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
	}

	src, err := sample.New(cfg.Sample, store, cfg.Storage.Bucket)
	if err != nil {
		return nil, err
	}

	backend := checks.NewBackendChecker(httpclient.NewClient(cfg.Target.BackendTimeout), cfg.Target, src, logg, out)
	frontend := checks.NewFrontendChecker(httpclient.NewClient(cfg.Target.FrontendTimeout), cfg.Target.FrontendURLs, logg, out)

	return &app{
		cfg:     cfg,
		logger:  logg,
		service: smoke.NewService(backend, frontend, logg),
	}, nil
}
