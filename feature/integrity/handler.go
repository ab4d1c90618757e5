package integrity

import (
	"ua-capabilities/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/source", h.HandleSourceCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Reports on the loaded dataset (entries, inheritance roots and depth, index buckets, default pattern) and re-checks the dataset source.
// @Tags integrity
// @Produce json
// @Success 200 {object} integrity.Report "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	report := h.service.CheckAll(c.Context())
	if report.Status != "ok" {
		l.Warn("Integrity check reported problems")
	}
	return c.JSON(report)
}

// HandleSourceCheck checks the dataset source.
// @Summary Check Dataset Source
// @Description Verifies that the dataset file exists, the bucket and object exist, or the table has the required columns.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.SourceReport "Source Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/source [get]
func (h *Handler) HandleSourceCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting source check")

	report, err := h.service.CheckSource(c.Context())
	if err != nil {
		l.Error("Source check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(report)
}
