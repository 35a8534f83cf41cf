// Package loader provides the plugin-like feature loading system.
//
// It allows the application to register and initialize features (modules).
// Each feature implements the Feature interface, which defines its lifecycle hooks
// and route registration logic.
//
// # Feature Interface
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// Features that must finish setup before serving (such as the page renderer)
// also implement Preparer.
//
// # Manager
//
// The Manager struct holds the registry of available features. It handles:
//   - Registration of features via Register()
//   - Preparation of enabled features via PrepareAll()
//   - Route registration of enabled features via LoadAll()
//
// Registration order is significant: Fiber matches routes in the order they
// were added, so a prefix feature such as 'api' must be registered before a
// catch-all feature such as 'pages'.
package loader
