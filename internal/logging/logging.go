package logging

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// base is the process-wide logger every component entry is derived from.
// Level changes made through Setup propagate to entries created earlier.
var base = logrus.New()

func init() {
	base.SetFormatter(&logrus.JSONFormatter{})
	base.SetLevel(levelForEnvironment(os.Getenv("APP_ENV")))
}

// Setup configures the shared logger from the environment profile and an optional explicit level.
// An explicit level that logrus cannot parse is ignored and the profile level is kept.
func Setup(environment, level string) {
	base.SetLevel(levelForEnvironment(environment))
	if level == "" {
		return
	}
	parsed, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		base.WithField("log_level", level).Warn("Unknown log level, keeping environment default")
		return
	}
	base.SetLevel(parsed)
}

// For returns a logger entry tagged with the given component name
func For(component string) *logrus.Entry {
	return base.WithField("component", component)
}

// Logger exposes the shared logger, mostly for wiring third-party hooks and tests
func Logger() *logrus.Logger {
	return base
}

func levelForEnvironment(environment string) logrus.Level {
	switch environment {
	case "", "development":
		return logrus.DebugLevel
	case "production":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
