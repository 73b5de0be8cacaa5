package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/diegoclair/attendance-reminder-bot/internal/domain"
	"github.com/diegoclair/attendance-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/attendance-reminder-bot/internal/domain/entity"
	"github.com/diegoclair/attendance-reminder-bot/internal/domain/worktime"
)

type holidayRepo struct {
	db dbConn
}

func newHolidayRepo(db dbConn) contract.HolidayRepo {
	return &holidayRepo{db: db}
}

// IsPublicHoliday treats every stored holiday as a day off regardless of kind.
func (r *holidayRepo) IsPublicHoliday(ctx context.Context, date worktime.Date) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM holidays WHERE holiday_date = ?)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, date.String()).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check holiday: %w", err)
	}

	return exists, nil
}

func (r *holidayRepo) GetHolidayInfo(ctx context.Context, date worktime.Date) (*entity.Holiday, error) {
	holiday := &entity.Holiday{Date: date}
	query := `
		SELECT name_local, name_english, kind
		FROM holidays
		WHERE holiday_date = ?
	`

	err := r.db.QueryRowContext(ctx, query, date.String()).Scan(
		&holiday.NameLocal,
		&holiday.NameEnglish,
		&holiday.Kind,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get holiday: %w", err)
	}

	return holiday, nil
}

func (r *holidayRepo) Upsert(ctx context.Context, holiday *entity.Holiday) error {
	if holiday.Date.IsZero() {
		return fmt.Errorf("holiday date is required")
	}

	kind := holiday.Kind
	if kind == "" {
		kind = domain.DefaultHolidayKind
	}

	query := `
		INSERT INTO holidays (holiday_date, name_local, name_english, kind)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (holiday_date) DO UPDATE SET
			name_local = excluded.name_local,
			name_english = excluded.name_english,
			kind = excluded.kind
	`

	_, err := r.db.ExecContext(ctx, query,
		holiday.Date.String(),
		holiday.NameLocal,
		holiday.NameEnglish,
		kind,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert holiday %s: %w", holiday.Date, err)
	}

	return nil
}
