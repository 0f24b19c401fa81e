package logger

import (
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Logger struct {
	*logrus.Entry
}

var (
	environment = os.Getenv("ENVIRONMENT")
	level       = os.Getenv("LOG_LEVEL")
)

var output io.Writer = os.Stderr

// Setup sets the environment, level and sink used by every later New call.
// Stdout belongs to the report, so logs default to stderr.
func Setup(env, lvl string, out io.Writer) {
	environment = env
	level = lvl
	if out == nil {
		out = os.Stderr
	}
	output = out
}

func New() *Logger {
	base := logrus.New()

	// Local env = pretty console; others = JSON
	if environment == "" || environment == "local" {
		base.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339Nano,
		})
	} else {
		base.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
		})
	}

	base.SetOutput(output)

	switch level {
	case "debug":
		base.SetLevel(logrus.DebugLevel)
	case "warn":
		base.SetLevel(logrus.WarnLevel)
	case "error":
		base.SetLevel(logrus.ErrorLevel)
	default:
		base.SetLevel(logrus.InfoLevel)
	}

	return &Logger{Entry: logrus.NewEntry(base)}
}

// WithRun tags the logger with a run id, generating one when runID is empty.
func (l *Logger) WithRun(runID string) *Logger {
	if runID == "" {
		runID = uuid.New().String()
	}
	return &Logger{Entry: l.Entry.WithField("run_id", runID)}
}

// WithError standardizes error logging
func (l *Logger) WithError(err error) *logrus.Entry {
	if err == nil {
		return l.Entry
	}
	return l.Entry.WithField("error", err.Error())
}
