// Package snapshot stores keyboard configuration backups.
//
// # Snapshot Format
//
// A snapshot has two fields:
//
//	restore   ordered list of command names, the replay order
//	commands  map from command name to the value captured from the keyboard
//
// Only keys listed in restore are replayed. A key in restore without an
// entry in commands is skipped.
//
// Example (JSON, the default):
//
//	{"restore":["keymap.custom","led.brightness"],
//	 "commands":{"keymap.custom":"0 1 2","led.brightness":"128"}}
//
// The same snapshot as YAML:
//
//	restore:
//	- keymap.custom
//	- led.brightness
//	commands:
//	  keymap.custom: 0 1 2
//	  led.brightness: "128"
//
// # Usage
//
// Read a snapshot from disk, the format chosen by file extension:
//
//	snap, err := snapshot.Parse("backup.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Read from any io.Reader:
//
//	snap, err := snapshot.Decode(os.Stdin, snapshot.FormatJSON)
//
// Write:
//
//	err := snapshot.Encode(os.Stdout, snap, snapshot.FormatYAML)
//
// # Error Handling
//
// Input that is not a well-formed snapshot returns a *MalformedError:
//   - Invalid JSON or YAML
//   - Missing restore or commands field
//   - restore not a list of strings
//   - commands not a map of strings
//
// Decode fully validates its input, so a restore never starts from a
// partially understood snapshot.
package snapshot
