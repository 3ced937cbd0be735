package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the global application logger, ready after Init.
var Log *logrus.Logger

// Init configures the global logger with a JSON formatter so that log
// aggregation tools can parse structured fields.
func Init() {
	Log = logrus.New()
	Log.SetOutput(os.Stdout)
	Log.SetFormatter(&logrus.JSONFormatter{})
	Log.SetLevel(logrus.InfoLevel)
}
