package logs

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	// FormatText renders entries as key=value pairs
	FormatText = "text"

	// FormatJSON renders entries as one json object per line
	FormatJSON = "json"
)

// LogrusLoggerProperties configure a LogrusLogger
type LogrusLoggerProperties struct {
	// Level is the minimum level of the entries that are written
	Level logrus.Level

	// Output is where entries are written, os.Stderr if not set
	Output io.Writer

	// Format is either FormatText or FormatJSON. FormatText is
	// used if not set
	Format string
}

// LogrusLogger is a Logger backed by logrus
type LogrusLogger struct {
	logger *logrus.Logger
}

// NewLogrus creates a new Logger that writes its entries
// with logrus
func NewLogrus(props LogrusLoggerProperties) *LogrusLogger {
	logger := logrus.New()
	logger.SetLevel(props.Level)

	if props.Output != nil {
		logger.SetOutput(props.Output)
	} else {
		logger.SetOutput(os.Stderr)
	}

	if props.Format == FormatJSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}

	return &LogrusLogger{logger: logger}
}

// ParseLevel converts a level name such as "debug" or "warn"
// into a logrus level
func ParseLevel(level string) (logrus.Level, error) {
	l, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.InfoLevel, errors.Wrapf(err, "invalid log level %q", level)
	}

	return l, nil
}

func (l *LogrusLogger) entry(ctx context.Context, loggable Loggable) *logrus.Entry {
	fields := MapFields{}
	if traceID := GetTraceID(ctx); traceID != 0 {
		fields.Add("trace_id", traceID)
	}

	if loggable != nil {
		loggable.Log(fields)
	}

	return l.logger.WithFields(logrus.Fields(fields))
}

// Debug implementation of Logger for LogrusLogger
func (l *LogrusLogger) Debug(ctx context.Context, msg string, loggable Loggable) {
	l.entry(ctx, loggable).Debug(msg)
}

// Info implementation of Logger for LogrusLogger
func (l *LogrusLogger) Info(ctx context.Context, msg string, loggable Loggable) {
	l.entry(ctx, loggable).Info(msg)
}

// Warn implementation of Logger for LogrusLogger
func (l *LogrusLogger) Warn(ctx context.Context, msg string, loggable Loggable) {
	l.entry(ctx, loggable).Warn(msg)
}

// Error implementation of Logger for LogrusLogger
func (l *LogrusLogger) Error(ctx context.Context, msg string, loggable Loggable) {
	l.entry(ctx, loggable).Error(msg)
}
