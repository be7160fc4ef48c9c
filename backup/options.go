package backup

import "github.com/moffa90/go-focus/focus"

// Config holds the backup and restore configuration.
type Config struct {
	// ProgressCallback is called once per command (optional)
	ProgressCallback ProgressCallback

	// Logger is used for logging operations (optional)
	Logger focus.Logger

	// FallbackKeys replaces the built-in key list for firmware without the
	// "backup" command. Nil uses FallbackKeys().
	FallbackKeys []string

	// SkipFlush disables the flush before the first request
	SkipFlush bool
}

func defaultConfig() Config {
	return Config{}
}

// Option is a functional option for Backup and Restore.
type Option func(*Config)

// WithProgressCallback sets a callback to track progress.
func WithProgressCallback(callback ProgressCallback) Option {
	return func(c *Config) {
		c.ProgressCallback = callback
	}
}

// WithLogger sets a logger.
func WithLogger(logger focus.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithFallbackKeys sets the key list used when the firmware cannot list its
// backup commands.
//
// Example:
//
//	backup.Backup(ctx, s, backup.WithFallbackKeys([]string{"keymap.custom", "palette"}))
func WithFallbackKeys(keys []string) Option {
	return func(c *Config) {
		c.FallbackKeys = append([]string(nil), keys...)
	}
}

// WithoutFlush skips the flush before the first request, for callers that
// have already flushed the session.
func WithoutFlush() Option {
	return func(c *Config) {
		c.SkipFlush = true
	}
}
