package common

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by the Index adapters when a lookup misses.
// Structures themselves report a miss with the empty record.
var ErrNotFound = errors.New("record not found")

// KeyFormatError - Custom error to inform that an identifier could not be turned into a numeric hash key
type KeyFormatError struct {
	ID  string
	Err error
}

// Error - Used to notify that an identifier is not a non-negative integer
func (E KeyFormatError) Error() string {
	if E.ID == "" && E.Err == nil {
		return "identifier is not a non-negative integer"
	}
	return fmt.Sprintf("identifier %q is not a non-negative integer", E.ID)
}

// Unwrap - Returns the underlying parse error, if any
func (E KeyFormatError) Unwrap() error {
	return E.Err
}

// Is - Matches any KeyFormatError so errors.Is(err, KeyFormatError{}) works regardless of ID
func (E KeyFormatError) Is(target error) bool {
	_, ok := target.(KeyFormatError)
	return ok
}

// LoadError - Custom error to inform that a tabular source could not be read, or one of its rows was malformed.
//   - Row is 0 when the whole source failed, otherwise the 1-based data row number (header excluded)
type LoadError struct {
	Path string
	Row  int
	Err  error
}

// Error - Used to notify a load failure
func (E LoadError) Error() string {
	switch {
	case E.Row > 0 && E.Err != nil:
		return fmt.Sprintf("load %s: row %d: %v", E.Path, E.Row, E.Err)
	case E.Row > 0:
		return fmt.Sprintf("load %s: row %d malformed", E.Path, E.Row)
	case E.Err != nil:
		return fmt.Sprintf("load %s: %v", E.Path, E.Err)
	}
	return "load failed"
}

// Unwrap - Returns the underlying cause, if any
func (E LoadError) Unwrap() error {
	return E.Err
}

// Is - Matches any LoadError
func (E LoadError) Is(target error) bool {
	_, ok := target.(LoadError)
	return ok
}
