package logging

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/moffa90/go-focus/focus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var _ focus.Logger = (*Adapter)(nil)

func TestOutput(t *testing.T) {
	if w := Output("", os.Stderr); w != os.Stderr {
		t.Errorf("Output(\"\") = %v, want os.Stderr", w)
	}

	w := Output("/tmp/focus.log", os.Stderr)
	lj, ok := w.(*lumberjack.Logger)
	if !ok {
		t.Fatalf("Output(file) = %T, want *lumberjack.Logger", w)
	}
	if lj.Filename != "/tmp/focus.log" {
		t.Errorf("Filename = %q", lj.Filename)
	}
	if lj.MaxSize != MaxSize || lj.MaxBackups != MaxBackups {
		t.Errorf("MaxSize = %d, MaxBackups = %d", lj.MaxSize, lj.MaxBackups)
	}
}

func TestLevels(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		wantDebug bool
	}{
		{"default", false, false},
		{"verbose", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewAdapter(New(&buf, tt.verbose))

			log.Debug("sent request", "command", "version")
			log.Info("backup complete", "saved", 3)
			log.Error("restore failed", "key", "palette")

			out := buf.String()
			if got := strings.Contains(out, "sent request"); got != tt.wantDebug {
				t.Errorf("debug written = %v, want %v\n%s", got, tt.wantDebug, out)
			}
			for _, want := range []string{"backup complete", "saved", "restore failed", "palette"} {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q\n%s", want, out)
				}
			}
		})
	}
}

func TestAdapterFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewAdapter(New(&buf, true))

	log.Debug("received reply", "bytes", 42, "lines", 2)

	out := buf.String()
	for _, want := range []string{"DEBUG", "received reply", "bytes", "42", "lines"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}
