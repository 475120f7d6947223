package script

import "fmt"

// ErrUnknownKind is returned when asked for a kind of tree
// that does not exist
type ErrUnknownKind struct {
	Kind string
}

func (e ErrUnknownKind) Error() string {
	return fmt.Sprintf("unknown tree kind %q, expected one of %s or %s", e.Kind, KindBST, KindAVL)
}

// ErrEmptyStep is returned when a script has a step without
// any operation
type ErrEmptyStep struct {
	Index int
}

func (e ErrEmptyStep) Error() string {
	return fmt.Sprintf("step %d has no operations", e.Index)
}

// ErrInvalidTree is returned when a tree fails validation
// after a step is applied
type ErrInvalidTree struct {
	Index int
	Cause error
}

func (e ErrInvalidTree) Error() string {
	return fmt.Sprintf("tree is invalid after step %d: %s", e.Index, e.Cause.Error())
}

// Unwrap returns the validation error
func (e ErrInvalidTree) Unwrap() error {
	return e.Cause
}
