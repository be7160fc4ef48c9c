package transport

import (
	"errors"
	"fmt"
	"io"
)

// ErrTimeout is returned by Read when no data arrived within the read
// timeout. During reply accumulation it marks the end of the reply.
var ErrTimeout = errors.New("read timeout")

// Transport is an open, exclusively owned byte-stream connection.
type Transport interface {
	// Write writes p in full or returns an error.
	Write(p []byte) (int, error)

	// Read blocks for at most the read timeout. It returns the bytes that
	// arrived, ErrTimeout if none did, or (0, nil) / io.EOF at end of stream.
	Read(p []byte) (int, error)

	// Buffered reports how many bytes can be read without waiting.
	Buffered() (int, error)

	// Close releases the connection.
	Close() error
}

// LineController is implemented by transports with modem control lines.
type LineController interface {
	// SetDTR sets the Data Terminal Ready line, telling the device a host
	// is present.
	SetDTR(dtr bool) error
}

// ModemStatus is implemented by transports that can report modem status.
type ModemStatus interface {
	// DSR reports the Data Set Ready line.
	DSR() (bool, error)
}

// OpenError reports a failure to open an endpoint.
type OpenError struct {
	// Path is the endpoint that could not be opened
	Path string

	// Err is the underlying error
	Err error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("failed to open %q: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// WriteAll writes p to w, retrying short writes until every byte is
// accepted or w returns an error.
func WriteAll(w io.Writer, p []byte) error {
	for len(p) > 0 {
		n, err := w.Write(p)
		if err != nil {
			return err
		}
		if n == 0 {
			return io.ErrShortWrite
		}
		p = p[n:]
	}
	return nil
}
