package snapshot

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v2"
)

// Marshal serializes snap in the given format. JSON output is a single line
// followed by a newline.
func Marshal(snap *Snapshot, format Format) ([]byte, error) {
	out := Snapshot{
		Restore:  snap.Restore,
		Commands: snap.Commands,
	}
	if out.Restore == nil {
		out.Restore = []string{}
	}
	if out.Commands == nil {
		out.Commands = map[string]string{}
	}

	switch format {
	case FormatJSON, "":
		data, err := json.Marshal(&out)
		if err != nil {
			return nil, fmt.Errorf("encode snapshot: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		data, err := yaml.Marshal(&out)
		if err != nil {
			return nil, fmt.Errorf("encode snapshot: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unknown snapshot format %q", format)
	}
}

// Encode writes snap to w in the given format.
func Encode(w io.Writer, snap *Snapshot, format Format) error {
	data, err := Marshal(snap, format)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
