package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/attendance-reminder-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db           *DB
	userRepo     contract.UserRepo
	sessionRepo  contract.SessionRepo
	dispatchRepo contract.DispatchRepo
	holidayRepo  contract.HolidayRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := repoInstancesWithConn(db.conn)
	instance.db = db
	return instance
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		userRepo:     newUserRepo(db),
		sessionRepo:  newSessionRepo(db),
		dispatchRepo: newDispatchRepo(db),
		holidayRepo:  newHolidayRepo(db),
	}
}

// User returns the user repository
func (i *instance) User() contract.UserRepo {
	return i.userRepo
}

// Session returns the work session repository
func (i *instance) Session() contract.SessionRepo {
	return i.sessionRepo
}

// Dispatch returns the dispatch ledger
func (i *instance) Dispatch() contract.DispatchRepo {
	return i.dispatchRepo
}

// Holiday returns the holiday calendar
func (i *instance) Holiday() contract.HolidayRepo {
	return i.holidayRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	if i.db == nil {
		return fmt.Errorf("nested transactions are not supported")
	}

	tx, err := i.db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
