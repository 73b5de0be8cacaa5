package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/diegoclair/attendance-reminder-bot/internal/domain"
	"github.com/diegoclair/attendance-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/attendance-reminder-bot/internal/domain/entity"
	"github.com/diegoclair/attendance-reminder-bot/internal/domain/worktime"
	"github.com/mattn/go-sqlite3"
)

type sessionRepo struct {
	db dbConn
}

func newSessionRepo(db dbConn) contract.SessionRepo {
	return &sessionRepo{db: db}
}

// Create stores a new open session. The partial unique index on open sessions
// turns a second open session for the same user into ErrSessionAlreadyOpen.
func (r *sessionRepo) Create(ctx context.Context, session *entity.WorkSession) error {
	query := `
		INSERT INTO work_sessions (user_id, check_in_at, check_out_at, work_date)
		VALUES (?, ?, ?, ?)
	`

	var checkOut sql.NullTime
	if session.CheckOutAt != nil {
		checkOut = sql.NullTime{Time: session.CheckOutAt.UTC(), Valid: true}
	}

	result, err := r.db.ExecContext(ctx, query,
		session.UserID,
		session.CheckInAt.UTC(),
		checkOut,
		session.WorkDate.String(),
	)
	if isUniqueViolation(err) {
		return domain.ErrSessionAlreadyOpen
	}
	if err != nil {
		return fmt.Errorf("failed to create work session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	session.ID = id
	return nil
}

func (r *sessionRepo) GetOpenByUser(ctx context.Context, userID int64) (*entity.WorkSession, error) {
	query := `
		SELECT id, user_id, check_in_at, check_out_at, work_date, created_at
		FROM work_sessions
		WHERE user_id = ? AND check_out_at IS NULL
	`

	session, err := scanSession(r.db.QueryRowContext(ctx, query, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get open work session: %w", err)
	}

	return session, nil
}

func (r *sessionRepo) Close(ctx context.Context, sessionID int64, checkOutAt time.Time) error {
	query := `
		UPDATE work_sessions SET check_out_at = ?
		WHERE id = ? AND check_out_at IS NULL
	`

	result, err := r.db.ExecContext(ctx, query, checkOutAt.UTC(), sessionID)
	if err != nil {
		return fmt.Errorf("failed to close work session: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrNoOpenSession
	}

	return nil
}

func (r *sessionRepo) ListOpenWithRemindersEnabled(ctx context.Context) ([]*entity.ReminderTarget, error) {
	query := `
		SELECT s.id, u.id, u.slack_user_id, u.display_name, s.check_in_at, s.work_date
		FROM work_sessions s
		INNER JOIN users u ON u.id = s.user_id
		WHERE s.check_out_at IS NULL AND u.reminders_enabled = 1
		ORDER BY s.check_in_at ASC, s.id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list open work sessions: %w", err)
	}
	defer rows.Close()

	var targets []*entity.ReminderTarget
	for rows.Next() {
		target := &entity.ReminderTarget{}
		var workDate string
		err := rows.Scan(
			&target.SessionID,
			&target.UserID,
			&target.SlackUserID,
			&target.DisplayName,
			&target.CheckInAt,
			&workDate,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan work session: %w", err)
		}

		target.CheckInAt = target.CheckInAt.UTC()
		if target.WorkDate, err = worktime.ParseDate(workDate); err != nil {
			return nil, fmt.Errorf("failed to parse work date of session %d: %w", target.SessionID, err)
		}
		targets = append(targets, target)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate work sessions: %w", err)
	}

	return targets, nil
}

func scanSession(row *sql.Row) (*entity.WorkSession, error) {
	session := &entity.WorkSession{}
	var (
		checkOut sql.NullTime
		workDate string
	)

	err := row.Scan(
		&session.ID,
		&session.UserID,
		&session.CheckInAt,
		&checkOut,
		&workDate,
		&session.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	session.CheckInAt = session.CheckInAt.UTC()
	if checkOut.Valid {
		t := checkOut.Time.UTC()
		session.CheckOutAt = &t
	}
	if session.WorkDate, err = worktime.ParseDate(workDate); err != nil {
		return nil, err
	}

	return session, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}
