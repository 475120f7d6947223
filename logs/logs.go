package logs

import (
	"context"
)

type contextKey int

// ContextKeyTraceID is the context key under which the trace id
// of an operation is stored
const ContextKeyTraceID contextKey = iota

// Fields collects the key value pairs attached to a log entry
type Fields interface {
	Add(key string, value interface{})
}

// Loggable is implemented by types that know how to describe
// themselves in a log entry
type Loggable interface {
	Log(fields Fields)
}

// MapFields is a set of fields that is also Loggable, so it
// can be passed directly to a Logger
type MapFields map[string]interface{}

// Add implementation of Fields for MapFields
func (f MapFields) Add(key string, value interface{}) {
	f[key] = value
}

// Log implementation of Loggable for MapFields
func (f MapFields) Log(fields Fields) {
	for k, v := range f {
		fields.Add(k, v)
	}
}

// Logger is the logging interface used across the module
type Logger interface {
	Debug(ctx context.Context, msg string, loggable Loggable)
	Info(ctx context.Context, msg string, loggable Loggable)
	Warn(ctx context.Context, msg string, loggable Loggable)
	Error(ctx context.Context, msg string, loggable Loggable)
}

// GetTraceID returns the trace id stored in the context, or 0
// if there is none
func GetTraceID(ctx context.Context) int64 {
	if ctx == nil {
		return 0
	}

	traceID, ok := ctx.Value(ContextKeyTraceID).(int64)
	if !ok {
		return 0
	}

	return traceID
}

// WithTraceID returns a copy of ctx that carries traceID
func WithTraceID(ctx context.Context, traceID int64) context.Context {
	return context.WithValue(ctx, ContextKeyTraceID, traceID)
}
