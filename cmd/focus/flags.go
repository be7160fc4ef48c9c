package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/moffa90/go-focus/protocol"
	"github.com/moffa90/go-focus/snapshot"
)

const usageText = `Usage: focus [flags] <command> [args]

Commands:
  list-ports                 list attached Focus keyboards
  send <command> [args...]   send a request and print the reply
  backup                     save the keyboard configuration
  restore                    load a saved configuration

Flags:
`

// options are the flags shared by every command.
type options struct {
	device      string
	chunkSize   int
	interval    time.Duration
	readTimeout time.Duration
	quiet       bool
	verbose     bool
	logFile     string
	timeout     time.Duration
}

// usageError is a command line mistake. It exits with status 2.
type usageError struct {
	err error

	// printed is set when the flag package already reported the error
	printed bool
}

func (e *usageError) Error() string {
	return e.err.Error()
}

func (e *usageError) Unwrap() error {
	return e.err
}

func usageErrorf(format string, args ...interface{}) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

// parse runs fs.Parse, marking failures as usage errors.
func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return &usageError{err: err, printed: true}
	}
	return nil
}

// parseGlobal parses the flags before the command name and returns the
// remaining arguments.
func parseGlobal(args []string, getenv func(string) string, stderr io.Writer) (*options, []string, error) {
	opts := &options{}

	fs := newFlagSet("focus", stderr)
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usageText)
		fs.PrintDefaults()
	}

	device := getenv("DEVICE")
	fs.StringVar(&opts.device, "d", device, "The device to connect to (env DEVICE)")
	fs.StringVar(&opts.device, "device", device, "The device to connect to (env DEVICE)")
	fs.IntVar(&opts.chunkSize, "c", protocol.DefaultChunkSize, "Size of each write; 0 writes requests all at once")
	fs.IntVar(&opts.chunkSize, "chunk-size", protocol.DefaultChunkSize, "Size of each write; 0 writes requests all at once")
	fs.DurationVar(&opts.interval, "i", protocol.DefaultInterval, "Pause after each write and between reads")
	fs.DurationVar(&opts.interval, "interval", protocol.DefaultInterval, "Pause after each write and between reads")
	fs.DurationVar(&opts.readTimeout, "read-timeout", protocol.DefaultReadTimeout, "Silence that ends a reply")
	fs.BoolVar(&opts.quiet, "q", false, "Operate quietly")
	fs.BoolVar(&opts.quiet, "quiet", false, "Operate quietly")
	fs.BoolVar(&opts.verbose, "v", false, "Log protocol traffic")
	fs.BoolVar(&opts.verbose, "verbose", false, "Log protocol traffic")
	fs.StringVar(&opts.logFile, "l", "", "Log into a file, rotating after 20MB")
	fs.StringVar(&opts.logFile, "log", "", "Log into a file, rotating after 20MB")
	fs.DurationVar(&opts.timeout, "timeout", 0, "Give up after this long; 0 waits forever")

	if err := parse(fs, args); err != nil {
		return nil, nil, err
	}

	switch {
	case opts.chunkSize < 0:
		return nil, nil, usageErrorf("chunk size must not be negative: %d", opts.chunkSize)
	case opts.interval < 0:
		return nil, nil, usageErrorf("interval must not be negative: %s", opts.interval)
	case opts.readTimeout <= 0:
		return nil, nil, usageErrorf("read timeout must be positive: %s", opts.readTimeout)
	case opts.timeout < 0:
		return nil, nil, usageErrorf("timeout must not be negative: %s", opts.timeout)
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return nil, nil, &usageError{err: errors.New("missing command"), printed: true}
	}

	return opts, fs.Args(), nil
}

// resolveFormat picks the snapshot format from --format, falling back to
// the file extension and then JSON.
func resolveFormat(name, path string) (snapshot.Format, error) {
	if name != "" {
		f, err := snapshot.ParseFormat(name)
		if err != nil {
			return "", &usageError{err: err}
		}
		return f, nil
	}
	if path != "" {
		return snapshot.FormatFromPath(path), nil
	}
	return snapshot.FormatJSON, nil
}
