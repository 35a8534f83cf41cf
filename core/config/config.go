package config

import (
	"errors"
	"reflect"
	"strings"

	"page-server/core/logger"
	"page-server/core/render"
	"page-server/core/server"
	"page-server/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvProduction is the only environment that disables development behaviour.
const EnvProduction = "production"

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Env is the application environment (development, production, ...).
	Env string `mapstructure:"app_env" default:"development"`
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Render holds configuration for the page renderer.
	Render render.Config `mapstructure:"render"`
	// Storage holds configuration for the object storage used for remote assets.
	Storage storage.Config `mapstructure:"storage"`
}

// IsDevelopment reports whether the application runs outside production.
// It gates console logging and the renderer's development mode.
func (c Config) IsDevelopment() bool {
	return c.Env != EnvProduction
}

// LoadConfig loads configuration from the .env file, an optional config.yaml
// and environment variables, in increasing order of precedence.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	// Map environment variables to nested keys (e.g. SERVER_PORT -> server.port)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// PORT is the conventional variable set by hosting platforms.
	if err := v.BindEnv("server.port", "SERVER_PORT", "PORT"); err != nil {
		return nil, err
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
