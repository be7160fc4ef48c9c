package snapshot

import (
	"reflect"
	"strings"
	"testing"
)

func TestAdd(t *testing.T) {
	snap := New()
	snap.Add("a", "1")
	snap.Add("b", "2")
	snap.Add("a", "3")

	if !reflect.DeepEqual(snap.Restore, []string{"a", "b"}) {
		t.Errorf("Restore = %v", snap.Restore)
	}
	if snap.Commands["a"] != "3" {
		t.Errorf("Commands[a] = %q, want 3", snap.Commands["a"])
	}

	var zero Snapshot
	zero.Add("x", "y")
	if zero.Commands["x"] != "y" || len(zero.Restore) != 1 {
		t.Errorf("Add on zero value = %+v", zero)
	}
}

func TestEntries(t *testing.T) {
	snap := &Snapshot{
		Restore:  []string{"c", "missing", "a"},
		Commands: map[string]string{"a": "1", "c": "3", "unlisted": "9"},
	}

	want := []Entry{{Key: "c", Value: "3"}, {Key: "a", Value: "1"}}
	if got := snap.Entries(); !reflect.DeepEqual(got, want) {
		t.Errorf("Entries() = %+v, want %+v", got, want)
	}
	if got := snap.Missing(); !reflect.DeepEqual(got, []string{"missing"}) {
		t.Errorf("Missing() = %v", got)
	}
}

func TestMalformedError(t *testing.T) {
	err := &MalformedError{Reason: "invalid YAML", Err: errIndent}
	if !strings.Contains(err.Error(), "malformed snapshot") || !strings.Contains(err.Error(), "bad indent") {
		t.Errorf("Error() = %q", err.Error())
	}
	if err.Unwrap() != errIndent {
		t.Error("Unwrap() should return the cause")
	}

	plain := &MalformedError{Reason: "invalid JSON"}
	if plain.Error() != "malformed snapshot: invalid JSON" {
		t.Errorf("Error() = %q", plain.Error())
	}
}

type indentError struct{}

func (indentError) Error() string { return "bad indent" }

var errIndent error = indentError{}
