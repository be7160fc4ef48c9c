package transport

import (
	"fmt"
	"time"

	"go.bug.st/serial"

	"github.com/moffa90/go-focus/protocol"
)

// Serial is a Transport over a serial port.
//
// go.bug.st/serial has no "bytes available" query, so Buffered performs a
// bounded read and keeps whatever arrived for the next Read.
type Serial struct {
	port    serial.Port
	path    string
	config  Config
	pending []byte
}

// Open opens the serial port at path with the Focus line parameters.
// On failure the returned error is an *OpenError.
func Open(path string, opts ...Option) (*Serial, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	mode := &serial.Mode{
		BaudRate: cfg.BaudRate,
		DataBits: protocol.DataBits,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(path, mode)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}

	if err := port.SetReadTimeout(cfg.ReadTimeout); err != nil {
		_ = port.Close()
		return nil, &OpenError{Path: path, Err: fmt.Errorf("set read timeout: %w", err)}
	}

	return newSerial(port, path, cfg), nil
}

func newSerial(port serial.Port, path string, cfg Config) *Serial {
	return &Serial{
		port:   port,
		path:   path,
		config: cfg,
	}
}

// Path returns the endpoint the port was opened from.
func (s *Serial) Path() string {
	return s.path
}

// ReadTimeout returns the configured read timeout.
func (s *Serial) ReadTimeout() time.Duration {
	return s.config.ReadTimeout
}

// Write writes p in full.
func (s *Serial) Write(p []byte) (int, error) {
	if err := WriteAll(s.port, p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Read returns buffered bytes first, then reads from the port.
// A read that times out with no data returns ErrTimeout.
func (s *Serial) Read(p []byte) (int, error) {
	if len(s.pending) > 0 {
		n := copy(p, s.pending)
		s.pending = s.pending[n:]
		return n, nil
	}

	n, err := s.port.Read(p)
	if err != nil {
		return n, err
	}
	// go.bug.st/serial reports a timeout as a zero-length read.
	if n == 0 {
		return 0, ErrTimeout
	}
	return n, nil
}

// Buffered reports the number of bytes ready to be read. When nothing is
// pending it waits up to one read timeout for data to arrive.
func (s *Serial) Buffered() (int, error) {
	if len(s.pending) > 0 {
		return len(s.pending), nil
	}

	buf := make([]byte, protocol.ReadBufferSize)
	n, err := s.port.Read(buf)
	if err != nil {
		return 0, err
	}
	s.pending = append(s.pending, buf[:n]...)
	return len(s.pending), nil
}

// SetDTR sets the Data Terminal Ready line.
func (s *Serial) SetDTR(dtr bool) error {
	return s.port.SetDTR(dtr)
}

// DSR reports the Data Set Ready line.
func (s *Serial) DSR() (bool, error) {
	bits, err := s.port.GetModemStatusBits()
	if err != nil {
		return false, err
	}
	return bits.DSR, nil
}

// Close closes the port. It may be called from another goroutine to
// cancel a blocked Read or Buffered, which then returns the port error.
// Bytes already pending are left for the reader.
func (s *Serial) Close() error {
	return s.port.Close()
}
