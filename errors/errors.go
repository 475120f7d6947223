package errors

import "github.com/eaugeas/arbor/logs"

const (
	// CodeConfig is returned when the options cannot be parsed
	CodeConfig = 2

	// CodeScript is returned when a script cannot be read or applied
	CodeScript = 3

	// CodeInvalidTree is returned when a tree fails validation
	CodeInvalidTree = 4
)

// Error is returned by the arbor command when it fails. ErrorCode
// is used as the exit status of the process
type Error struct {
	// ErrorCode is a unique identifier for the error that can be used to identify
	// the particular type of error encountered
	ErrorCode int

	// Description is a human-readable description of the error
	Description string

	// Cause is the error that triggered this one, if any
	Cause error
}

// New creates an Error with code that wraps cause
func New(code int, description string, cause error) *Error {
	return &Error{ErrorCode: code, Description: description, Cause: cause}
}

// Error is the implementation of go's error interface for Error
func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Description
	}

	return e.Description + ": " + e.Cause.Error()
}

// Unwrap returns the cause of the error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Log implementation of logs.Loggable for Error
func (e *Error) Log(fields logs.Fields) {
	fields.Add("error_code", e.ErrorCode)
	fields.Add("description", e.Description)

	if e.Cause != nil {
		fields.Add("cause", e.Cause.Error())
	}
}
