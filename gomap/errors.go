package gomap

import (
	"errors"
	"fmt"
)

// ErrStructure is wrapped by every decode error: the input as a whole did not
// have the structure the target requires.
var ErrStructure = errors.New("structural decode failure")

// UnmarshalError represents a structural failure of a single decode call.
type UnmarshalError struct {
	Type    string // target type name
	Path    string // location in the input, e.g. "$"
	Message string
	Err     error
}

func (e *UnmarshalError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("unmarshal error for %s at %s: %s", e.Type, e.Path, e.Message)
	}
	return fmt.Sprintf("unmarshal error for %s: %s", e.Type, e.Message)
}

func (e *UnmarshalError) Unwrap() error {
	return e.Err
}
