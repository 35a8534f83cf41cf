package logger

import "path/filepath"

// Config holds configuration for the logger.
type Config struct {
	// Level is the baseline level of the combined file and the console (debug, info, warn, error).
	Level string `mapstructure:"level" default:"info"`
	// Format is the encoding of the file destinations (text, json).
	Format string `mapstructure:"format" default:"text"`
	// Dir is the directory holding the log files. Empty disables file output.
	Dir string `mapstructure:"dir" default:"logs"`
	// Layout selects flat files (error.log, info.log) or nested ones (errors/error.log, info/info.log).
	Layout string `mapstructure:"layout" default:"flat"`
}

const (
	FormatText = "text"
	FormatJSON = "json"

	LayoutFlat   = "flat"
	LayoutNested = "nested"
)

// ErrorFile returns the path of the error-only destination.
func (c Config) ErrorFile() string {
	if c.Layout == LayoutNested {
		return filepath.Join(c.Dir, "errors", "error.log")
	}
	return filepath.Join(c.Dir, "error.log")
}

// InfoFile returns the path of the combined destination.
func (c Config) InfoFile() string {
	if c.Layout == LayoutNested {
		return filepath.Join(c.Dir, "info", "info.log")
	}
	return filepath.Join(c.Dir, "info.log")
}
