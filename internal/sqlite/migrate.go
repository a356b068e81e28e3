package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// migrate applies the schema inside a transaction.
//
// Every statement in schema.sql uses IF NOT EXISTS so that applying the schema
// on every startup is idempotent. Destructive schema changes are handled by
// ad-hoc migration statements added here when needed.
func (db *Database) migrate(ctx context.Context, schema string) error {
	start := time.Now()

	var (
		tx  *sql.Tx
		err error
	)
	if tx, err = db.ReadWrite.BeginTx(ctx, nil); err != nil {
		return fmt.Errorf("start transaction: %w", err)
	}
	defer db.rollback(ctx, tx)

	if _, err = tx.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}

	if _, err = tx.ExecContext(ctx, "PRAGMA foreign_key_check"); err != nil {
		return fmt.Errorf("foreign key check: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	db.logger.LogAttrs(ctx, slog.LevelInfo, "migrated database schema",
		slog.Duration("duration", time.Since(start)))
	return nil
}

// rollback rolls back the transaction and logs failures other than the
// transaction already being committed.
func (db *Database) rollback(ctx context.Context, tx *sql.Tx) {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		db.logger.LogAttrs(ctx, slog.LevelError, "rollback failed", slog.Any("error", err))
	}
}
