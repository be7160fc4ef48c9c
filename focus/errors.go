package focus

import (
	"fmt"
)

// IOError reports a transport failure during a request or reply.
type IOError struct {
	// Op is the step that failed: "dtr", "write", "poll" or "read"
	Op string

	// Err is the underlying transport error
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
