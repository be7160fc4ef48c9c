package backup

import (
	"context"
	"errors"
	"fmt"

	"github.com/moffa90/go-focus/snapshot"
)

// Restore replays snap onto the keyboard. Each key in snap.Restore is sent
// with its saved value as the only argument, in order; keys without a value
// are skipped. The reply to each request is read and discarded so requests
// and replies stay paired.
//
// Unless WithoutFlush is given, the empty command " " is sent first and its
// reply discarded, so output left over from before the restore is not
// taken as the reply to the first key.
//
// A failure stops the restore and leaves the values sent so far in place.
func Restore(ctx context.Context, r Requester, snap *snapshot.Snapshot, opts ...Option) error {
	if snap == nil {
		return errors.New("snapshot cannot be nil")
	}

	cfg := newConfig(opts)

	if !cfg.SkipFlush {
		if err := r.Flush(ctx); err != nil {
			return err
		}
	}

	total := len(snap.Restore)
	sent := 0
	for i, key := range snap.Restore {
		value, ok := snap.Commands[key]
		if ok {
			if _, err := r.Request(ctx, key, value); err != nil {
				return fmt.Errorf("restore %s: %w", key, err)
			}
			sent++
		} else {
			cfg.logDebug("skipping command without value", "key", key)
		}

		cfg.report(Progress{
			Phase:   PhaseRestoring,
			Key:     key,
			Current: i + 1,
			Total:   total,
		})
	}

	cfg.report(Progress{Phase: PhaseComplete, Current: total, Total: total})
	cfg.logInfo("restore complete",
		"listed", total,
		"sent", sent,
	)

	return nil
}
