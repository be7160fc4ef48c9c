package protocol

import (
	"strings"
	"unicode/utf8"
)

// ParseReply converts the raw bytes of a reply into its text.
//
// Invalid UTF-8 is replaced with U+FFFD rather than rejected. The text is
// split into lines, trailing carriage returns are removed, and lines that are
// empty or equal to EndOfReply are dropped. The remaining lines are joined
// with "\n". An empty result is a valid reply: the command produced no output
// or is unknown to the firmware.
//
// ParseReply is idempotent: parsing an already parsed reply returns it
// unchanged.
func ParseReply(raw []byte) string {
	text := string(raw)
	if !utf8.ValidString(text) {
		text = strings.ToValidUTF8(text, string(utf8.RuneError))
	}

	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		if line == "" || line == EndOfReply {
			continue
		}
		kept = append(kept, line)
	}

	return strings.Join(kept, "\n")
}

// SplitLines splits a parsed reply into its lines.
// An empty reply has no lines.
func SplitLines(reply string) []string {
	if reply == "" {
		return nil
	}
	return strings.Split(reply, "\n")
}
