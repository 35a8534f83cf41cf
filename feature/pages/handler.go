package pages

import "github.com/gofiber/fiber/v2"

// Delegate handles a request on behalf of the pages feature.
// The page renderer in core/render satisfies it.
type Delegate interface {
	Handle(c *fiber.Ctx) error
}

// Handler forwards requests to the delegate.
type Handler struct {
	delegate Delegate
}

// NewHandler creates a new HTTP handler.
func NewHandler(delegate Delegate) *Handler {
	return &Handler{delegate: delegate}
}

// RegisterRoutes registers the catch-all route.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.All("*", h.HandleAll)
}

// HandleAll passes the request context to the delegate unchanged and returns
// whatever it returns.
func (h *Handler) HandleAll(c *fiber.Ctx) error {
	return h.delegate.Handle(c)
}
