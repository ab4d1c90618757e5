package lookup

import (
	"errors"

	"ua-capabilities/core/classifier"
	"ua-capabilities/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PropertiesResponse lists the dataset's property columns.
type PropertiesResponse struct {
	Properties []string `json:"properties"`
	Count      int      `json:"count"`
}

// Handler handles HTTP requests for lookups.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the lookup routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/lookup")
	group.Get("/", h.HandleLookup)
	group.Get("/properties", h.HandleProperties)
}

// HandleLookup classifies a user agent.
// @Summary Lookup User Agent
// @Description Returns the capabilities of the most specific dataset pattern matching the user agent. When ua is omitted the request's own User-Agent header is classified.
// @Tags lookup
// @Produce json
// @Param ua query string false "User agent to classify"
// @Success 200 {object} map[string]interface{} "Capabilities"
// @Failure 400 {object} map[string]string "Blank user agent"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /lookup [get]
func (h *Handler) HandleLookup(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	ua := c.Query("ua")
	if ua == "" {
		ua = c.Get(fiber.HeaderUserAgent)
	}

	caps, err := h.service.Lookup(ua)
	if err != nil {
		if errors.Is(err, classifier.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	l.Debug("Lookup resolved", zap.String("pattern", caps.Pattern))
	return c.JSON(caps)
}

// HandleProperties lists the property schema.
// @Summary List Properties
// @Description Returns the property columns every lookup result carries, in dataset order.
// @Tags lookup
// @Produce json
// @Success 200 {object} lookup.PropertiesResponse "Property schema"
// @Router /lookup/properties [get]
func (h *Handler) HandleProperties(c *fiber.Ctx) error {
	props := h.service.Properties()
	return c.JSON(PropertiesResponse{Properties: props, Count: len(props)})
}
