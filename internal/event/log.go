package event

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the shared logger used by all packages.
var Log *logrus.Logger

func init() {
	Log = logrus.StandardLogger()
	Log.SetLevel(logrus.InfoLevel)
	Log.SetFormatter(&logrus.TextFormatter{
		DisableColors: false,
		FullTimestamp: true,
	})
}

// SetLevel sets the log level by name and returns the level that was applied.
// Unknown names fall back to info.
func SetLevel(name string) logrus.Level {
	level, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(name)))

	if err != nil {
		level = logrus.InfoLevel
	}

	Log.SetLevel(level)

	return level
}
