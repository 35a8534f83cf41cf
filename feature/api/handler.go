package api

import "github.com/gofiber/fiber/v2"

// Handler serves the placeholder API.
type Handler struct{}

// NewHandler creates a new HTTP handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes registers /api and everything below it, for every method.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.All("/api", h.HandlePlaceholder)
	app.All("/api/*", h.HandlePlaceholder)
}

// HandlePlaceholder answers every API request with a fixed body.
// It never calls Next, so API paths cannot fall through to the pages.
// TODO: replace with the real API router once its endpoints are defined.
func (h *Handler) HandlePlaceholder(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"hola": false})
}
