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
)

type userRepo struct {
	db dbConn
}

func newUserRepo(db dbConn) contract.UserRepo {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (slack_user_id, display_name, reminders_enabled)
		VALUES (?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		user.SlackUserID,
		user.DisplayName,
		user.RemindersEnabled,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	user.ID = id
	return nil
}

func (r *userRepo) GetBySlackID(ctx context.Context, slackUserID string) (*entity.User, error) {
	user := &entity.User{}
	query := `
		SELECT id, slack_user_id, display_name, reminders_enabled, created_at, updated_at
		FROM users
		WHERE slack_user_id = ?
	`

	err := r.db.QueryRowContext(ctx, query, slackUserID).Scan(
		&user.ID,
		&user.SlackUserID,
		&user.DisplayName,
		&user.RemindersEnabled,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

func (r *userRepo) SetRemindersEnabled(ctx context.Context, userID int64, enabled bool) error {
	query := `
		UPDATE users SET
			reminders_enabled = ?,
			updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query, enabled, time.Now().UTC(), userID)
	if err != nil {
		return fmt.Errorf("failed to update reminder preference: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}
