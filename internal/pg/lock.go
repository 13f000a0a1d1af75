package pg

import (
	"context"
	"fmt"
)

const bundleLockKey = "campuspay:bundle"

// AdvisoryLocker serializes bundles with a transaction-scoped advisory lock.
// The lock is released on commit or rollback.
type AdvisoryLocker struct {
	db Database
}

func NewAdvisoryLocker(db Database) *AdvisoryLocker {
	return &AdvisoryLocker{db: db}
}

func (l *AdvisoryLocker) Lock(ctx context.Context) error {
	if _, err := l.db.Exec(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", bundleLockKey); err != nil {
		return fmt.Errorf("can't take advisory lock: %w", err)
	}
	return nil
}
