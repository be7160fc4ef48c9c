package transport

import (
	"time"

	"github.com/moffa90/go-focus/protocol"
)

// Config holds the serial port configuration.
type Config struct {
	// BaudRate is the line speed. Focus devices always use protocol.BaudRate.
	BaudRate int

	// ReadTimeout bounds every Read. A quiet period of this length ends a
	// reply.
	ReadTimeout time.Duration
}

func defaultConfig() Config {
	return Config{
		BaudRate:    protocol.BaudRate,
		ReadTimeout: protocol.DefaultReadTimeout,
	}
}

// Option is a functional option for configuring a serial transport.
type Option func(*Config)

// WithReadTimeout sets the read timeout.
//
// Example:
//
//	port, err := transport.Open(path, transport.WithReadTimeout(100*time.Millisecond))
func WithReadTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		if timeout > 0 {
			c.ReadTimeout = timeout
		}
	}
}
