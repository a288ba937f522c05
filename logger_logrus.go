package gate

import (
	"github.com/sirupsen/logrus"
)

// LogrusLogger adapts a logrus entry to the package Logger interface.
type LogrusLogger struct {
	entry *logrus.Entry
}

// NewLogrusLogger wraps the given logrus logger; a nil logger uses the
// logrus standard logger.
func NewLogrusLogger(logger *logrus.Logger) *LogrusLogger {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LogrusLogger{entry: logrus.NewEntry(logger)}
}

// WithField returns a logger annotated with a fixed field.
func (l *LogrusLogger) WithField(key string, value any) *LogrusLogger {
	return &LogrusLogger{entry: l.entry.WithField(key, value)}
}

func (l *LogrusLogger) Debug(format string, args ...any) {
	l.withArgs(args).Debug(format)
}

func (l *LogrusLogger) Info(format string, args ...any) {
	l.withArgs(args).Info(format)
}

func (l *LogrusLogger) Error(format string, args ...any) {
	l.withArgs(args).Error(format)
}

// withArgs folds the alternating key/value argument convention used by
// the Logger interface into logrus fields.
func (l *LogrusLogger) withArgs(args []any) *logrus.Entry {
	entry := l.entry
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}
		entry = entry.WithField(key, args[i+1])
	}
	return entry
}
