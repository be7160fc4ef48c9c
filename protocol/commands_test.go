package protocol

import (
	"bytes"
	"testing"
)

func TestBuildRequest(t *testing.T) {
	tests := []struct {
		name    string
		command string
		args    []string
		want    string
	}{
		{
			name:    "command without arguments",
			command: "version",
			want:    "version\n",
		},
		{
			name:    "command with one argument",
			command: "led.brightness",
			args:    []string{"128"},
			want:    "led.brightness 128\n",
		},
		{
			name:    "command with several arguments",
			command: "keymap.custom",
			args:    []string{"0", "1", "2"},
			want:    "keymap.custom 0 1 2\n",
		},
		{
			name:    "argument containing spaces is not escaped",
			command: "keymap.custom",
			args:    []string{"0 1 2"},
			want:    "keymap.custom 0 1 2\n",
		},
		{
			name:    "noop command",
			command: CmdNoop,
			want:    " \n",
		},
		{
			name:    "empty argument keeps its separator",
			command: "palette",
			args:    []string{""},
			want:    "palette \n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildRequest(tt.command, tt.args...)
			if string(got) != tt.want {
				t.Errorf("BuildRequest() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildRequestCapacity(t *testing.T) {
	req := BuildRequest("keymap.custom", "0", "1")

	if len(req) != cap(req) {
		t.Errorf("request length %d != capacity %d", len(req), cap(req))
	}
	if req[len(req)-1] != Terminator {
		t.Errorf("request does not end with terminator: %q", req)
	}
}

func TestBuildRequestIndependentSlices(t *testing.T) {
	a := BuildRequest("a")
	b := BuildRequest("a")
	a[0] = 'x'

	if !bytes.Equal(b, []byte("a\n")) {
		t.Errorf("requests share memory: %q", b)
	}
}
