// Command focus talks to Kaleidoscope keyboards over the Focus serial
// protocol.
//
// Usage:
//
//	focus list-ports
//	focus send version
//	focus -d /dev/ttyACM0 send led.brightness 128
//	focus backup -o keyboard.json
//	focus restore -f keyboard.json
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/moffa90/go-focus/device"
	"github.com/moffa90/go-focus/focus"
	"github.com/moffa90/go-focus/internal/logging"
	"github.com/moffa90/go-focus/transport"
	"go.uber.org/zap"
)

// Exit statuses.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// app holds the process environment so commands can run against a
// simulated keyboard.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	getenv   func(string) string
	discover func() ([]device.Port, error)
	open     func(path string, readTimeout time.Duration) (transport.Transport, error)

	opts *options
	log  focus.Logger
}

func main() {
	a := &app{
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		getenv:   os.Getenv,
		discover: device.Discover,
		open:     openSerial,
	}
	os.Exit(a.run(os.Args[1:]))
}

func openSerial(path string, readTimeout time.Duration) (transport.Transport, error) {
	port, err := transport.Open(path, transport.WithReadTimeout(readTimeout))
	if err != nil {
		return nil, err
	}
	return port, nil
}

func (a *app) run(args []string) int {
	opts, rest, err := parseGlobal(args, a.getenv, a.stderr)
	if err != nil {
		return a.exit(err)
	}
	a.opts = opts

	out := logging.Output(opts.logFile, a.stderr)
	if c, ok := out.(io.Closer); ok && opts.logFile != "" {
		defer c.Close()
	}

	logger := logging.New(out, opts.verbose)
	if opts.quiet && !opts.verbose && opts.logFile == "" {
		logger = zap.NewNop()
	}
	adapter := logging.NewAdapter(logger)
	defer adapter.Sync()
	a.log = adapter

	ctx := context.Background()
	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	command, cmdArgs := rest[0], rest[1:]
	switch command {
	case "list-ports":
		err = a.listPorts(cmdArgs)
	case "send":
		err = a.send(ctx, cmdArgs)
	case "backup":
		err = a.backup(ctx, cmdArgs)
	case "restore":
		err = a.restore(ctx, cmdArgs)
	default:
		err = usageErrorf("unknown command %q", command)
	}

	if err != nil && opts.logFile != "" {
		a.log.Error("command failed", "command", command, "error", err)
	}
	return a.exit(err)
}

// exit reports err and returns the process exit status.
func (a *app) exit(err error) int {
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return exitOK
	}

	var ue *usageError
	if errors.As(err, &ue) {
		if !ue.printed {
			fmt.Fprintf(a.stderr, "focus: %v\n", ue.err)
			fmt.Fprintln(a.stderr, "Run 'focus -h' for usage.")
		}
		return exitUsage
	}

	fmt.Fprintf(a.stderr, "focus: %s\n", describe(err))
	return exitFailure
}

func describe(err error) string {
	switch {
	case errors.Is(err, device.ErrNotFound):
		return "No supported device found"
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Sprintf("gave up waiting for the keyboard: %v", err)
	default:
		return err.Error()
	}
}

// connect opens the keyboard named by --device, or the first supported one
// attached.
func (a *app) connect() (*focus.Session, error) {
	path := a.opts.device
	if path == "" {
		ports, err := a.discover()
		if err != nil {
			return nil, err
		}
		path = ports[0].Path
		a.log.Debug("using discovered device",
			"path", path,
			"model", ports[0].Model,
		)
	}

	t, err := a.open(path, a.opts.readTimeout)
	if err != nil {
		return nil, err
	}

	return focus.New(t,
		focus.WithChunkSize(a.opts.chunkSize),
		focus.WithInterval(a.opts.interval),
		focus.WithLogger(a.log),
	), nil
}

// progress returns the status line for a command, or nil when quiet.
func (a *app) progress(prefix, msg string) *spinner {
	if a.opts.quiet {
		return nil
	}
	return newSpinner(a.stderr, prefix, msg)
}
