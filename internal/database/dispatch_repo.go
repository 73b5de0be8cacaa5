package database

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/attendance-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/attendance-reminder-bot/internal/domain/worktime"
)

type dispatchRepo struct {
	db dbConn
}

func newDispatchRepo(db dbConn) contract.DispatchRepo {
	return &dispatchRepo{db: db}
}

// InsertIfAbsent relies on the (user_id, work_date, kind) primary key, so
// concurrent callers racing on the same key see exactly one true.
func (r *dispatchRepo) InsertIfAbsent(ctx context.Context, key worktime.DispatchKey, sentAt time.Time) (bool, error) {
	query := `
		INSERT OR IGNORE INTO dispatch_records (user_id, work_date, kind, sent_at)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		key.UserID,
		key.WorkDate.String(),
		string(key.Kind),
		sentAt.UTC(),
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert dispatch record %s: %w", key, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return affected == 1, nil
}

func (r *dispatchRepo) Exists(ctx context.Context, key worktime.DispatchKey) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM dispatch_records
			WHERE user_id = ? AND work_date = ? AND kind = ?
		)
	`

	var exists bool
	err := r.db.QueryRowContext(ctx, query,
		key.UserID,
		key.WorkDate.String(),
		string(key.Kind),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check dispatch record %s: %w", key, err)
	}

	return exists, nil
}
