// Package logger holds the process-wide structured logger.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the global logger. It is usable before Init, writing text at info level to stderr.
var Log = logrus.New()

// Config controls logger behaviour.
type Config struct {
	Level  string // debug, info, warn, error
	Format string // json or text
	Output io.Writer
}

// ConfigFromEnv reads LOG_LEVEL and LOG_FORMAT, defaulting to info and text.
func ConfigFromEnv() Config {
	level, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		level = "info"
	}
	return Config{
		Level:  level,
		Format: os.Getenv("LOG_FORMAT"),
	}
}

// Init configures the global logger. Call once from main before the game starts.
func Init(cfg Config) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(cfg.Format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: true,
		})
	}

	if cfg.Output != nil {
		Log.SetOutput(cfg.Output)
	}
}

// Component returns an entry tagged with the component name.
func Component(name string) *logrus.Entry {
	return Log.WithField("component", name)
}
