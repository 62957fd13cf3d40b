package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type WipeResult struct {
	Users int64
	Tasks int64
}

// Wipe deletes every task and user in one transaction. The schema is kept.
func Wipe(ctx context.Context, db *sqlx.DB) (WipeResult, error) {
	var result WipeResult

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return result, fmt.Errorf("begin wipe: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	res, err := tx.ExecContext(ctx, `DELETE FROM tasks;`)
	if err != nil {
		return result, fmt.Errorf("delete tasks: %w", err)
	}
	result.Tasks, _ = res.RowsAffected()

	res, err = tx.ExecContext(ctx, `DELETE FROM users;`)
	if err != nil {
		return result, fmt.Errorf("delete users: %w", err)
	}
	result.Users, _ = res.RowsAffected()

	if err := tx.Commit(); err != nil {
		return WipeResult{}, fmt.Errorf("commit wipe: %w", err)
	}
	return result, nil
}
