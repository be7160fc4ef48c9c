package focus

import (
	"time"

	"github.com/moffa90/go-focus/protocol"
)

// Config holds the session configuration.
type Config struct {
	// Observer is notified of send and receive progress
	Observer Observer

	// Logger is used for logging operations (optional)
	Logger Logger

	// ChunkSize is the maximum number of bytes per write.
	// Zero writes each request in one piece.
	ChunkSize int

	// Interval is the pause after each chunk, between polls while waiting
	// for a reply, and between reads of a reply
	Interval time.Duration
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Observer:  NopObserver{},
		ChunkSize: protocol.DefaultChunkSize,
		Interval:  protocol.DefaultInterval,
	}
}

// Option is a functional option for configuring a Session.
type Option func(*Config)

// WithObserver sets the progress observer. A nil observer disables progress
// reporting.
//
// Example:
//
//	s := focus.New(port, focus.WithObserver(bar))
func WithObserver(o Observer) Option {
	return func(c *Config) {
		if o == nil {
			o = NopObserver{}
		}
		c.Observer = o
	}
}

// WithLogger sets a logger for session operations.
//
// Example:
//
//	s := focus.New(port, focus.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithChunkSize sets the maximum number of bytes per write.
// Zero disables chunking; negative values are ignored.
//
// Example:
//
//	s := focus.New(port, focus.WithChunkSize(0))
func WithChunkSize(size int) Option {
	return func(c *Config) {
		if size >= 0 {
			c.ChunkSize = size
		}
	}
}

// WithInterval sets the pause between chunks, polls and reads.
// Negative values are ignored.
//
// Example:
//
//	s := focus.New(port, focus.WithInterval(100*time.Millisecond))
func WithInterval(interval time.Duration) Option {
	return func(c *Config) {
		if interval >= 0 {
			c.Interval = interval
		}
	}
}
