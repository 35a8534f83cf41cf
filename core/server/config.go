package server

import "fmt"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port int `mapstructure:"port" default:"3000"`
}

// Addr returns the listen address for Port on every interface.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
