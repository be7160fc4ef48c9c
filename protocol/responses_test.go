package protocol

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseReply(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
		want string
	}{
		{
			name: "empty reply",
			raw:  nil,
			want: "",
		},
		{
			name: "value with sentinel",
			raw:  []byte("1 \n.\n"),
			want: "1 ",
		},
		{
			name: "value with crlf and sentinel",
			raw:  []byte("1 \r\n.\r\n"),
			want: "1 ",
		},
		{
			name: "multiline reply",
			raw:  []byte("keymap.custom\nled.brightness\n"),
			want: "keymap.custom\nled.brightness",
		},
		{
			name: "interleaved blank and sentinel lines",
			raw:  []byte("\n.\na\n\n.\nb\n.\n\n"),
			want: "a\nb",
		},
		{
			name: "only sentinel",
			raw:  []byte(".\n"),
			want: "",
		},
		{
			name: "dots inside a line are kept",
			raw:  []byte("..\n. \nfoo.bar\n"),
			want: "..\n. \nfoo.bar",
		},
		{
			name: "no trailing newline",
			raw:  []byte("0 1 2"),
			want: "0 1 2",
		},
		{
			name: "invalid utf-8 is replaced",
			raw:  []byte{'a', 0xff, 'b', '\n'},
			want: "a�b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseReply(tt.raw)
			if got != tt.want {
				t.Errorf("ParseReply() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseReplyIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"1 \n.\n",
		"\r\n\r\n.\r\nvalue\r\n",
		"a\n\n\nb\n.\n.\nc",
		"x\r\r\ny",
		"\xfe\xff\n.\n",
	}

	for _, in := range inputs {
		once := ParseReply([]byte(in))
		twice := ParseReply([]byte(once))
		if once != twice {
			t.Errorf("ParseReply not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestParseReplyDropsSentinels(t *testing.T) {
	raw := "first\n\n.\nsecond\n.\n\n\n.\nthird\n"
	got := ParseReply([]byte(raw))

	for _, line := range strings.Split(got, "\n") {
		if line == "" || line == EndOfReply {
			t.Errorf("parsed reply still contains %q line: %q", line, got)
		}
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  []string
	}{
		{name: "empty", reply: "", want: nil},
		{name: "single", reply: "palette", want: []string{"palette"}},
		{name: "several", reply: "a\nb\nc", want: []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitLines(tt.reply)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitLines() = %q, want %q", got, tt.want)
			}
		})
	}
}
