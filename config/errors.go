package config

import "fmt"

// ErrAlreadyParsed is returned when Parse is called more than
// once on the same Parser
var ErrAlreadyParsed = errAlreadyParsed{}

type errAlreadyParsed struct{}

func (errAlreadyParsed) Error() string {
	return "flags have already been parsed"
}

// ErrParseFlags is returned when the command line arguments
// cannot be parsed
type ErrParseFlags struct {
	Cause error
}

func (e ErrParseFlags) Error() string {
	return fmt.Sprintf("failed to parse flags: %s", e.Cause.Error())
}

// Unwrap returns the underlying parse error
func (e ErrParseFlags) Unwrap() error {
	return e.Cause
}
