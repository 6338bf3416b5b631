package resolver

import (
	"errors"
	"fmt"
)

// ErrNoCandidateFound is returned when every strategy came up empty.
var ErrNoCandidateFound = errors.New("no playable stream url found")

// TransportError wraps a failed fetch.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
