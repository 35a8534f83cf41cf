package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// LocalsKey is the Fiber locals key holding the request's RayID.
const LocalsKey = "ray_id"

// Config defines the middleware configuration.
type Config struct {
	// Header is the request header an upstream proxy may use to pass a RayID.
	Header string
}

// ConfigDefault is the default configuration.
var ConfigDefault = Config{
	Header: "X-Ray-ID",
}

// New creates a middleware that stores a RayID in the request locals.
// An incoming header value is reused, otherwise a new UUID is generated.
// The response is left untouched.
func New(config ...Config) fiber.Handler {
	cfg := ConfigDefault
	if len(config) > 0 {
		cfg = config[0]
		if cfg.Header == "" {
			cfg.Header = ConfigDefault.Header
		}
	}

	return func(c *fiber.Ctx) error {
		rid := c.Get(cfg.Header)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(LocalsKey, rid)
		return c.Next()
	}
}
