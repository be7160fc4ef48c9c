package snapshot

import (
	"fmt"
	"io"
	"os"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v2"
)

// Parse reads a snapshot from the file at path. Files ending in .yaml or
// .yml are read as YAML, anything else as JSON.
//
// Example:
//
//	snap, err := snapshot.Parse("model100.json")
func Parse(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return Unmarshal(data, FormatFromPath(path))
}

// Decode reads a complete snapshot from r.
func Decode(r io.Reader, format Format) (*Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return Unmarshal(data, format)
}

// Unmarshal parses data as a snapshot in the given format.
func Unmarshal(data []byte, format Format) (*Snapshot, error) {
	switch format {
	case FormatJSON, "":
		return parseJSON(data)
	case FormatYAML:
		return parseYAML(data)
	default:
		return nil, fmt.Errorf("unknown snapshot format %q", format)
	}
}

func parseJSON(data []byte) (*Snapshot, error) {
	if !gjson.ValidBytes(data) {
		return nil, &MalformedError{Reason: "invalid JSON"}
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, &MalformedError{Reason: "top level is not an object"}
	}

	restore := root.Get("restore")
	if !restore.Exists() {
		return nil, &MalformedError{Reason: `missing "restore" field`}
	}
	if !restore.IsArray() {
		return nil, &MalformedError{Reason: `"restore" is not a list`}
	}

	commands := root.Get("commands")
	if !commands.Exists() {
		return nil, &MalformedError{Reason: `missing "commands" field`}
	}
	if !commands.IsObject() {
		return nil, &MalformedError{Reason: `"commands" is not an object`}
	}

	snap := New()
	for i, key := range restore.Array() {
		if key.Type != gjson.String {
			return nil, &MalformedError{Reason: fmt.Sprintf("restore[%d] is not a string", i)}
		}
		snap.Restore = append(snap.Restore, key.String())
	}

	var bad *gjson.Result
	commands.ForEach(func(key, value gjson.Result) bool {
		if value.Type != gjson.String {
			bad = &key
			return false
		}
		snap.Commands[key.String()] = value.String()
		return true
	})
	if bad != nil {
		return nil, &MalformedError{Reason: fmt.Sprintf("value of %q is not a string", bad.String())}
	}

	return snap, nil
}

func parseYAML(data []byte) (*Snapshot, error) {
	var doc struct {
		Restore  *[]string          `yaml:"restore"`
		Commands *map[string]string `yaml:"commands"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &MalformedError{Reason: "invalid YAML", Err: err}
	}

	if doc.Restore == nil {
		return nil, &MalformedError{Reason: `missing "restore" field`}
	}
	if doc.Commands == nil {
		return nil, &MalformedError{Reason: `missing "commands" field`}
	}

	snap := New()
	snap.Restore = append(snap.Restore, *doc.Restore...)
	for key, value := range *doc.Commands {
		snap.Commands[key] = value
	}
	return snap, nil
}
