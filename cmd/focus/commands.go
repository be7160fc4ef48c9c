package main

import (
	"context"
	"fmt"
	"os"

	"github.com/moffa90/go-focus/backup"
	"github.com/moffa90/go-focus/snapshot"
)

func (a *app) listPorts(args []string) error {
	fs := newFlagSet("list-ports", a.stderr)
	if err := parse(fs, args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return usageErrorf("list-ports: unexpected argument %q", fs.Arg(0))
	}

	ports, err := a.discover()
	if err != nil {
		return err
	}
	for _, p := range ports {
		a.log.Debug("found device",
			"path", p.Path,
			"model", p.Model,
			"serial", p.SerialNumber,
		)
		fmt.Fprintln(a.stdout, p.Path)
	}
	return nil
}

func (a *app) send(ctx context.Context, args []string) error {
	fs := newFlagSet("send", a.stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: focus send <command> [args...]")
	}
	if err := parse(fs, args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return usageErrorf("send: missing command")
	}
	command, cmdArgs := fs.Arg(0), fs.Args()[1:]

	s, err := a.connect()
	if err != nil {
		return err
	}
	defer s.Close()

	sp := a.progress("sending: ", command)
	if sp != nil {
		s.SetObserver(sp)
		defer sp.Finish()
	}

	if err := s.Flush(ctx); err != nil {
		return err
	}
	reply, err := s.Request(ctx, command, cmdArgs...)
	if sp != nil {
		sp.Finish()
	}
	if err != nil {
		return err
	}

	if reply != "" {
		fmt.Fprintln(a.stdout, reply)
	}
	return nil
}

func (a *app) backup(ctx context.Context, args []string) error {
	var output, format, fallback string

	fs := newFlagSet("backup", a.stderr)
	fs.StringVar(&output, "o", "", "Write the snapshot to a file instead of stdout")
	fs.StringVar(&output, "output", "", "Write the snapshot to a file instead of stdout")
	fs.StringVar(&format, "format", "", "Snapshot format: json or yaml (default from file extension, else json)")
	fs.StringVar(&fallback, "fallback-keys", "", "File listing the commands to save when the firmware cannot list them")
	if err := parse(fs, args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return usageErrorf("backup: unexpected argument %q", fs.Arg(0))
	}

	f, err := resolveFormat(format, output)
	if err != nil {
		return err
	}

	opts := []backup.Option{backup.WithLogger(a.log)}
	if fallback != "" {
		keys, err := loadKeys(fallback)
		if err != nil {
			return err
		}
		opts = append(opts, backup.WithFallbackKeys(keys))
	}

	s, err := a.connect()
	if err != nil {
		return err
	}
	defer s.Close()

	sp := a.progress("", "")
	if sp != nil {
		s.SetObserver(sp)
		defer sp.Finish()
		opts = append(opts, backup.WithProgressCallback(sp.Step))
	}

	snap, err := backup.Backup(ctx, s, opts...)
	if sp != nil {
		sp.Finish()
	}
	if err != nil {
		return err
	}

	if output == "" {
		return snapshot.Encode(a.stdout, snap, f)
	}

	data, err := snapshot.Marshal(snap, f)
	if err != nil {
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	a.log.Info("wrote snapshot",
		"path", output,
		"commands", len(snap.Restore),
	)
	return nil
}

func (a *app) restore(ctx context.Context, args []string) error {
	var input, format string

	fs := newFlagSet("restore", a.stderr)
	fs.StringVar(&input, "f", "", "Read the snapshot from a file instead of stdin")
	fs.StringVar(&input, "file", "", "Read the snapshot from a file instead of stdin")
	fs.StringVar(&format, "format", "", "Snapshot format: json or yaml (default from file extension, else json)")
	if err := parse(fs, args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return usageErrorf("restore: unexpected argument %q", fs.Arg(0))
	}

	// The snapshot is read in full before touching the keyboard.
	snap, err := a.readSnapshot(input, format)
	if err != nil {
		return err
	}
	if missing := snap.Missing(); len(missing) > 0 {
		a.log.Info("snapshot lists commands without values",
			"commands", missing,
		)
	}

	s, err := a.connect()
	if err != nil {
		return err
	}
	defer s.Close()

	opts := []backup.Option{backup.WithLogger(a.log)}
	sp := a.progress("", "")
	if sp != nil {
		s.SetObserver(sp)
		defer sp.Finish()
		opts = append(opts, backup.WithProgressCallback(sp.Step))
	}

	err = backup.Restore(ctx, s, snap, opts...)
	if sp != nil {
		sp.Finish()
	}
	return err
}

func (a *app) readSnapshot(path, formatName string) (*snapshot.Snapshot, error) {
	if path != "" && formatName == "" {
		return snapshot.Parse(path)
	}

	format, err := resolveFormat(formatName, path)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return snapshot.Decode(a.stdin, format)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer file.Close()

	return snapshot.Decode(file, format)
}

func loadKeys(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fallback keys: %w", err)
	}
	defer file.Close()

	keys, err := backup.LoadKeys(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return keys, nil
}
