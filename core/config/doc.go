// Package config provides configuration management for the page server.
//
// It utilizes Viper for loading configuration from a .env file, an optional
// config.yaml and environment variables. Configuration is resolved once at
// start and never changes afterwards.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Env: application environment (APP_ENV); anything but "production" is development
//   - Server: HTTP port (SERVER_PORT or PORT, default 3000)
//   - Log: level, format, directory and file layout
//   - Render: rendering root and asset source
//   - Storage: S3/MinIO credentials for remote assets
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
