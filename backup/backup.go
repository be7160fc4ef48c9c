package backup

import (
	"context"
	"fmt"
	"strings"

	"github.com/moffa90/go-focus/protocol"
	"github.com/moffa90/go-focus/snapshot"
)

// Requester sends Focus requests. *focus.Session implements it.
type Requester interface {
	Flush(ctx context.Context) error
	Request(ctx context.Context, command string, args ...string) (string, error)
}

// Backup reads the keyboard configuration:
//  1. Flush pending output
//  2. Ask for the list of backup commands
//  3. Fall back to the known key list if the firmware returns none
//  4. Read every command, keeping those with a non-empty value
//
// Commands that reply with nothing are dropped from the snapshot without
// error. A command listed twice is saved once.
//
// Example:
//
//	snap, err := backup.Backup(ctx, s)
func Backup(ctx context.Context, r Requester, opts ...Option) (*snapshot.Snapshot, error) {
	cfg := newConfig(opts)

	if !cfg.SkipFlush {
		if err := r.Flush(ctx); err != nil {
			return nil, err
		}
	}

	cfg.report(Progress{Phase: PhaseListing, Key: protocol.CmdBackup})

	reply, err := r.Request(ctx, protocol.CmdBackup)
	if err != nil {
		return nil, fmt.Errorf("list backup commands: %w", err)
	}

	keys := parseKeys(reply)
	if len(keys) == 0 {
		keys = cfg.FallbackKeys
		if keys == nil {
			keys = FallbackKeys()
		}
		cfg.logInfo("firmware cannot list backup commands, using fallback list",
			"keys", len(keys),
		)
	}

	snap := snapshot.New()
	for i, key := range keys {
		value, err := r.Request(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("back up %s: %w", key, err)
		}

		if value != "" {
			snap.Add(key, value)
		} else {
			cfg.logDebug("skipping command with empty value", "key", key)
		}

		cfg.report(Progress{
			Phase:   PhaseBackingUp,
			Key:     key,
			Current: i + 1,
			Total:   len(keys),
		})
	}

	cfg.report(Progress{Phase: PhaseComplete, Current: len(keys), Total: len(keys)})
	cfg.logInfo("backup complete",
		"listed", len(keys),
		"saved", len(snap.Restore),
	)

	return snap, nil
}

// parseKeys extracts command names from the reply to "backup".
func parseKeys(reply string) []string {
	var keys []string
	for _, line := range protocol.SplitLines(reply) {
		if key := strings.TrimSpace(line); key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}

func newConfig(opts []Option) Config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// report calls the progress callback if configured.
func (c *Config) report(p Progress) {
	if c.ProgressCallback != nil {
		c.ProgressCallback(p)
	}
}

// logDebug logs a debug message if a logger is configured.
func (c *Config) logDebug(msg string, keysAndValues ...interface{}) {
	if c.Logger != nil {
		c.Logger.Debug(msg, keysAndValues...)
	}
}

// logInfo logs an info message if a logger is configured.
func (c *Config) logInfo(msg string, keysAndValues ...interface{}) {
	if c.Logger != nil {
		c.Logger.Info(msg, keysAndValues...)
	}
}
