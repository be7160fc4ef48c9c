package backup

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"strings"
)

//go:embed fallback_keys.txt
var fallbackKeys string

// FallbackKeys returns the commands backed up when the firmware cannot list
// them itself.
func FallbackKeys() []string {
	keys, err := LoadKeys(strings.NewReader(fallbackKeys))
	if err != nil {
		panic(fmt.Sprintf("embedded fallback keys: %v", err))
	}
	return keys
}

// LoadKeys reads a key list: one command per line, with blank lines and
// lines starting with '#' ignored.
func LoadKeys(r io.Reader) ([]string, error) {
	var keys []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		keys = append(keys, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read keys: %w", err)
	}
	return keys, nil
}
