package pages

import (
	"context"

	"page-server/core/loader"

	"github.com/gofiber/fiber/v2"
)

// Feature implements the loader.Feature and loader.Preparer interfaces.
type Feature struct {
	delegate Delegate
	handler  *Handler
}

// NewFeature creates a new pages feature.
func NewFeature(delegate Delegate) *Feature {
	return &Feature{delegate: delegate, handler: NewHandler(delegate)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "pages"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Prepare prepares the delegate when it needs it.
func (f *Feature) Prepare(ctx context.Context) error {
	if p, ok := f.delegate.(loader.Preparer); ok {
		return p.Prepare(ctx)
	}
	return nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
