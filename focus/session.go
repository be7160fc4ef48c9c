package focus

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/moffa90/go-focus/protocol"
	"github.com/moffa90/go-focus/transport"
)

// Session drives the Focus protocol over a single transport.
// It owns the transport exclusively and is not safe for concurrent use.
type Session struct {
	transport transport.Transport
	config    Config
}

// New creates a Session on an open transport.
//
// Example:
//
//	port, _ := transport.Open("/dev/ttyACM0")
//	s := focus.New(port,
//	    focus.WithChunkSize(32),
//	    focus.WithInterval(50*time.Millisecond),
//	)
func New(t transport.Transport, opts ...Option) *Session {
	if t == nil {
		panic("transport cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Session{
		transport: t,
		config:    cfg,
	}
}

// SetObserver replaces the progress observer. A nil observer disables
// progress reporting.
func (s *Session) SetObserver(o Observer) {
	WithObserver(o)(&s.config)
}

// Request sends command with args and returns the reply.
//
// Example:
//
//	reply, err := s.Request(ctx, "led.brightness", "128")
func (s *Session) Request(ctx context.Context, command string, args ...string) (string, error) {
	if err := s.Send(ctx, command, args...); err != nil {
		return "", err
	}
	return s.Receive(ctx)
}

// Command sends command without arguments and returns the reply.
func (s *Session) Command(ctx context.Context, command string) (string, error) {
	return s.Request(ctx, command)
}

// Flush sends the empty command and discards the reply, clearing any output
// the keyboard produced before this session took over.
func (s *Session) Flush(ctx context.Context) error {
	reply, err := s.Command(ctx, protocol.CmdNoop)
	if err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	if reply != "" {
		s.logDebug("discarded pending output", "bytes", len(reply))
	}
	return nil
}

// Send writes a request without waiting for the reply.
// Every Send must be followed by a Receive before the next request.
//
// When chunking is enabled the request is written in runs of at most
// ChunkSize bytes, each followed by a pause of Interval. The bytes written
// are the same either way. Cancelling ctx stops a chunked write between
// chunks.
func (s *Session) Send(ctx context.Context, command string, args ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	req := protocol.BuildRequest(command, args...)

	if lc, ok := s.transport.(transport.LineController); ok {
		if err := lc.SetDTR(true); err != nil {
			return &IOError{Op: "dtr", Err: err}
		}
	}

	observer := s.config.Observer
	observer.Reset(len(req))

	chunkSize := s.config.ChunkSize
	if chunkSize == 0 {
		if err := s.write(req); err != nil {
			return err
		}
		observer.Progress(len(req))
	} else {
		for start := 0; start < len(req); start += chunkSize {
			end := start + chunkSize
			if end > len(req) {
				end = len(req)
			}
			if err := s.write(req[start:end]); err != nil {
				return err
			}
			if err := s.pause(ctx); err != nil {
				return fmt.Errorf("write request: %w", err)
			}
			observer.Progress(end - start)
		}
	}

	s.logDebug("sent request",
		"command", command,
		"args", len(args),
		"bytes", len(req),
	)

	return nil
}

// Receive reads the reply to the last request.
//
// It first waits, without a timeout, until the keyboard has sent at least
// one byte, then reads until the port stays quiet for one read timeout or
// reaches end of stream. The reply is normalized with protocol.ParseReply;
// an empty reply is not an error.
func (s *Session) Receive(ctx context.Context) (string, error) {
	s.logModemStatus()

	if err := s.waitForData(ctx); err != nil {
		return "", err
	}

	observer := s.config.Observer
	observer.Reset(0)

	buf := make([]byte, protocol.ReadBufferSize)
	var raw []byte

	for {
		n, err := s.transport.Read(buf)
		if n > 0 {
			raw = append(raw, buf[:n]...)
			observer.Progress(n)
		}

		switch {
		case errors.Is(err, transport.ErrTimeout), errors.Is(err, io.EOF):
			return s.reply(raw), nil
		case err != nil:
			return "", &IOError{Op: "read", Err: err}
		case n == 0:
			return s.reply(raw), nil
		}

		if err := s.pause(ctx); err != nil {
			return "", fmt.Errorf("read reply: %w", err)
		}
	}
}

// Close closes the underlying transport.
func (s *Session) Close() error {
	return s.transport.Close()
}

func (s *Session) reply(raw []byte) string {
	reply := protocol.ParseReply(raw)
	s.logDebug("received reply",
		"bytes", len(raw),
		"lines", len(protocol.SplitLines(reply)),
	)
	return reply
}

// write sends one run of bytes in full.
func (s *Session) write(p []byte) error {
	if err := transport.WriteAll(s.transport, p); err != nil {
		return &IOError{Op: "write", Err: err}
	}
	return nil
}

// waitForData polls until the keyboard has started answering.
func (s *Session) waitForData(ctx context.Context) error {
	for {
		n, err := s.transport.Buffered()
		if err != nil {
			return &IOError{Op: "poll", Err: err}
		}
		if n > 0 {
			return nil
		}
		if err := s.pause(ctx); err != nil {
			return fmt.Errorf("wait for reply: %w", err)
		}
	}
}

// pause sleeps for one interval, returning early if ctx is done.
func (s *Session) pause(ctx context.Context) error {
	if s.config.Interval <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(s.config.Interval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *Session) logModemStatus() {
	if s.config.Logger == nil {
		return
	}
	ms, ok := s.transport.(transport.ModemStatus)
	if !ok {
		return
	}
	dsr, err := ms.DSR()
	if err != nil {
		s.logDebug("read DSR failed", "error", err)
		return
	}
	s.logDebug("modem status", "dsr", dsr)
}

// logDebug logs a debug message if a logger is configured.
func (s *Session) logDebug(msg string, keysAndValues ...interface{}) {
	if s.config.Logger != nil {
		s.config.Logger.Debug(msg, keysAndValues...)
	}
}
