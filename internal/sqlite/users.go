package sqlite

import (
	"context"
	"fmt"
)

// CreateAnonymousUser inserts a new user row and returns its id. Users are
// created lazily on first visit and identified through their session cookie.
func (db *Database) CreateAnonymousUser(ctx context.Context) (int64, error) {
	result, err := db.ReadWrite.ExecContext(ctx, `INSERT INTO users DEFAULT VALUES`)
	if err != nil {
		return 0, fmt.Errorf("insert user: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get user id: %w", err)
	}
	return id, nil
}

// UserExists reports whether a user row with the given id exists. Sessions
// can outlive their user row when the database is reset.
func (db *Database) UserExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := db.ReadOnly.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE id = ?)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("query user existence: %w", err)
	}
	return exists, nil
}
