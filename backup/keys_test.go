package backup

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"testing/iotest"
)

func TestFallbackKeys(t *testing.T) {
	keys := FallbackKeys()
	if len(keys) != 35 {
		t.Errorf("got %d fallback keys, want 35", len(keys))
	}

	seen := make(map[string]bool)
	for _, k := range keys {
		if seen[k] {
			t.Errorf("duplicate key %q", k)
		}
		seen[k] = true
	}
	for _, k := range []string{"keymap.custom", "led.brightness", "palette"} {
		if !seen[k] {
			t.Errorf("missing %q", k)
		}
	}

	keys[0] = "changed"
	if FallbackKeys()[0] == "changed" {
		t.Error("FallbackKeys() should return a fresh slice")
	}
}

func TestLoadKeys(t *testing.T) {
	input := "# header\n\nkeymap.custom\n  led.brightness  \n#palette\n"

	keys, err := LoadKeys(strings.NewReader(input))
	if err != nil {
		t.Fatalf("LoadKeys() error = %v", err)
	}
	if want := []string{"keymap.custom", "led.brightness"}; !reflect.DeepEqual(keys, want) {
		t.Errorf("LoadKeys() = %q, want %q", keys, want)
	}
}

func TestLoadKeysError(t *testing.T) {
	readErr := errors.New("disk error")
	_, err := LoadKeys(iotest.ErrReader(readErr))
	if !errors.Is(err, readErr) {
		t.Errorf("LoadKeys() error = %v, want %v", err, readErr)
	}
}
