package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger wraps logrus with the project defaults.
type Logger struct {
	*logrus.Logger
}

// New creates a logger tagged with the component name. Output goes to stderr
// so CLI output on stdout stays clean; level comes from LOG_LEVEL.
func New(component string) *Logger {
	log := logrus.New()

	log.SetFormatter(&logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})
	log.SetOutput(os.Stderr)
	log.SetLevel(parseLevel(os.Getenv("LOG_LEVEL")))

	log.AddHook(&componentHook{component: component})
	return &Logger{Logger: log}
}

func parseLevel(level string) logrus.Level {
	switch level {
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn", "":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.WarnLevel
	}
}

// WithUserID tags an entry with the acting user.
func (l *Logger) WithUserID(userID string) *logrus.Entry {
	return l.WithField("user_id", userID)
}

type componentHook struct {
	component string
}

func (h *componentHook) Levels() []logrus.Level { return logrus.AllLevels }

func (h *componentHook) Fire(e *logrus.Entry) error {
	e.Data["component"] = h.component
	return nil
}
