package smoke

import (
	"kml-smoke/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for smoke runs.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the smoke routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/smoke")
	group.Get("/", h.HandleRunAll)
	group.Get("/backend", h.HandleRunBackend)
	group.Get("/frontend", h.HandleRunFrontend)
	group.Get("/last", h.HandleLast)
}

// HandleRunAll runs the backend and frontend checks.
// @Summary Run All Smoke Checks
// @Description Runs the backend checks (liveness, route listing, elevation profile) and the frontend probe.
// @Tags smoke
// @Produce json
// @Success 200 {object} Report "All checks passed"
// @Failure 503 {object} Report "At least one check failed"
// @Router /smoke [get]
func (h *Handler) HandleRunAll(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering full smoke run")
	return h.respond(c, h.service.RunAll(c.UserContext()))
}

// HandleRunBackend runs the backend checks only.
// @Summary Run Backend Checks
// @Description Checks backend liveness and, when the sample KML file is available, the routes and elevation endpoints.
// @Tags smoke
// @Produce json
// @Success 200 {object} Report "Backend OK"
// @Failure 503 {object} Report "Backend check failed"
// @Router /smoke/backend [get]
func (h *Handler) HandleRunBackend(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering backend smoke run")
	return h.respond(c, h.service.RunBackend(c.UserContext()))
}

// HandleRunFrontend runs the frontend probe only.
// @Summary Run Frontend Probe
// @Description Probes the candidate frontend URLs in order until one answers 200.
// @Tags smoke
// @Produce json
// @Success 200 {object} Report "Frontend reachable"
// @Failure 503 {object} Report "Frontend not reachable"
// @Router /smoke/frontend [get]
func (h *Handler) HandleRunFrontend(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering frontend smoke run")
	return h.respond(c, h.service.RunFrontend(c.UserContext()))
}

// HandleLast returns the most recent report.
// @Summary Last Report
// @Description Returns the report of the most recent run, whether triggered over HTTP or by the schedule.
// @Tags smoke
// @Produce json
// @Success 200 {object} Report "Last report"
// @Failure 404 {object} map[string]string "No run yet"
// @Router /smoke/last [get]
func (h *Handler) HandleLast(c *fiber.Ctx) error {
	report, ok := h.service.Last()
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no smoke run yet"})
	}
	return c.JSON(report)
}

func (h *Handler) respond(c *fiber.Ctx, report *Report) error {
	if !report.OK() {
		logger.WithRayID(h.service.logger, c).Warn("Smoke run reported issues", zap.String("run_id", report.RunID))
		return c.Status(fiber.StatusServiceUnavailable).JSON(report)
	}
	return c.JSON(report)
}
