package loader

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Feature is a module that registers routes on the application.
type Feature interface {
	// Name returns the unique name of the feature.
	Name() string
	// IsEnabled reports whether the feature should be loaded.
	IsEnabled() bool
	// Load registers the feature's routes.
	Load(app fiber.Router) error
}

// Preparer is implemented by features that need to finish asynchronous
// setup before any route is registered.
type Preparer interface {
	Prepare(ctx context.Context) error
}

// Manager keeps features in registration order.
type Manager struct {
	features []Feature
}

// NewManager creates an empty feature manager.
func NewManager() *Manager {
	return &Manager{}
}

// Register appends a feature. Routes are registered in the same order.
func (m *Manager) Register(f Feature) {
	m.features = append(m.features, f)
}

// Names returns the names of the enabled features in load order.
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.features))
	for _, f := range m.features {
		if f.IsEnabled() {
			names = append(names, f.Name())
		}
	}
	return names
}

// PrepareAll runs Prepare on every enabled feature that implements Preparer.
// It stops at the first failure.
func (m *Manager) PrepareAll(ctx context.Context) error {
	for _, f := range m.features {
		if !f.IsEnabled() {
			continue
		}
		p, ok := f.(Preparer)
		if !ok {
			continue
		}
		if err := p.Prepare(ctx); err != nil {
			return fmt.Errorf("failed to prepare feature %s: %w", f.Name(), err)
		}
	}
	return nil
}

// LoadAll registers the routes of every enabled feature in registration order.
func (m *Manager) LoadAll(app fiber.Router) error {
	for _, f := range m.features {
		if !f.IsEnabled() {
			continue
		}
		if err := f.Load(app); err != nil {
			return fmt.Errorf("failed to load feature %s: %w", f.Name(), err)
		}
	}
	return nil
}
