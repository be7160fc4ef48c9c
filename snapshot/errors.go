package snapshot

import "fmt"

// MalformedError indicates that input could not be read as a snapshot.
type MalformedError struct {
	// Reason describes what is wrong with the input
	Reason string

	// Err is the underlying decoder error, if any
	Err error
}

func (e *MalformedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed snapshot: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed snapshot: %s", e.Reason)
}

func (e *MalformedError) Unwrap() error {
	return e.Err
}
