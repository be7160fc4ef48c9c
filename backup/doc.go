// Package backup saves and restores the configuration of a Focus keyboard.
//
// # Overview
//
// Backup asks the keyboard which commands hold its configuration (the
// "backup" command), reads each one, and returns a snapshot.Snapshot.
// Restore replays a snapshot by sending every command with its saved value.
//
//	port, _ := transport.Open("/dev/ttyACM0")
//	s := focus.New(port)
//
//	snap, err := backup.Backup(ctx, s)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = snapshot.Encode(os.Stdout, snap, snapshot.FormatJSON)
//
// # Older Firmware
//
// Firmware without the "backup" command answers it with nothing. Backup then
// falls back to a fixed list of known configuration commands, shipped as
// fallback_keys.txt and returned by FallbackKeys. Commands the firmware does
// not know reply with nothing and are left out of the snapshot.
//
// Supply a newer list without rebuilding:
//
//	keys, _ := backup.LoadKeys(f)
//	snap, err := backup.Backup(ctx, s, backup.WithFallbackKeys(keys))
//
// # Progress Tracking
//
//	snap, err := backup.Backup(ctx, s,
//	    backup.WithProgressCallback(func(p backup.Progress) {
//	        fmt.Printf("%s %d/%d %s\n", p.Phase, p.Current, p.Total, p.Key)
//	    }),
//	)
//
// # Restore Semantics
//
// Restore sends keys in snapshot order and skips keys with no saved value.
// There is no rollback: if a request fails halfway, the keyboard keeps the
// values already sent.
package backup
