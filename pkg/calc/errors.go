package calc

import (
	"errors"
	"fmt"
)

// Error definitions
var (
	ErrUnsetVariable = errors.New("variable not set")
	ErrFieldCount    = errors.New("too few fields")
	ErrInvalidNumber = errors.New("invalid number")
)

// ParseError reports text that could not be turned into a number or a
// record: the entry buffer, a variable slot, or the persisted file.
type ParseError struct {
	Source string // "entry", "variable A", "state field 3", ...
	Input  string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("parsing %s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("parsing %s %q: %v", e.Source, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IOError reports a failed load or save of the persisted state.
type IOError struct {
	Op  string // "load" or "save"
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s state: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
