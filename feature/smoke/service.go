package smoke

import (
	"context"
	"sync"
	"time"

	"kml-smoke/core/metrics"
	"kml-smoke/feature/smoke/checks"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BackendCheck is satisfied by checks.BackendChecker.
type BackendCheck interface {
	Check(ctx context.Context) *checks.BackendResult
}

// FrontendCheck is satisfied by checks.FrontendChecker.
type FrontendCheck interface {
	Check(ctx context.Context) *checks.FrontendResult
}

// Service runs smoke checks. Runs never overlap; the last report is kept
// for the HTTP surface.
type Service struct {
	backend  BackendCheck
	frontend FrontendCheck
	logger   *zap.Logger

	runMu sync.Mutex

	mu   sync.RWMutex
	last *Report
}

// NewService creates a new smoke service.
func NewService(backend BackendCheck, frontend FrontendCheck, logger *zap.Logger) *Service {
	return &Service{
		backend:  backend,
		frontend: frontend,
		logger:   logger,
	}
}

// RunAll runs the backend then the frontend checker. The frontend check
// runs regardless of the backend outcome.
func (s *Service) RunAll(ctx context.Context) *Report {
	return s.run(ctx, true, true)
}

// RunBackend runs the backend checker only.
func (s *Service) RunBackend(ctx context.Context) *Report {
	return s.run(ctx, true, false)
}

// RunFrontend runs the frontend checker only.
func (s *Service) RunFrontend(ctx context.Context) *Report {
	return s.run(ctx, false, true)
}

// Last returns the report of the most recent run, if any.
func (s *Service) Last() (*Report, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last, s.last != nil
}

func (s *Service) run(ctx context.Context, backend, frontend bool) *Report {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	report := &Report{
		RunID:     uuid.NewString(),
		StartedAt: time.Now().UTC(),
	}
	l := s.logger.With(zap.String("run_id", report.RunID))
	l.Debug("Smoke run started", zap.Bool("backend", backend), zap.Bool("frontend", frontend))

	if backend {
		report.Backend = s.backend.Check(ctx)
		metrics.ObserveCheck("backend", string(report.Backend.Outcome), report.Backend.Duration.Seconds())
	}
	if frontend {
		report.Frontend = s.frontend.Check(ctx)
		metrics.ObserveCheck("frontend", string(report.Frontend.Outcome), report.Frontend.Duration.Seconds())
	}

	if report.Complete() {
		metrics.SetLastRun(report.OK())
	}
	l.Info("Smoke run finished", zap.Bool("ok", report.OK()))

	s.mu.Lock()
	s.last = report
	s.mu.Unlock()

	return report
}
