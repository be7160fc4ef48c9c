package focus

import (
	"errors"
	"strings"
	"testing"
)

func TestIOError(t *testing.T) {
	cause := errors.New("input/output error")
	err := &IOError{Op: "read", Err: cause}

	errMsg := err.Error()
	if !strings.Contains(errMsg, "read") {
		t.Errorf("error message should contain the operation, got: %s", errMsg)
	}
	if !strings.Contains(errMsg, "input/output error") {
		t.Errorf("error message should contain the cause, got: %s", errMsg)
	}
	if !errors.Is(err, cause) {
		t.Error("IOError should unwrap to its cause")
	}
}

func TestErrorTypes(t *testing.T) {
	var _ error = &IOError{}
}
