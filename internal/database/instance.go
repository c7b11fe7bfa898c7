package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/birthday-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db       *DB
	userRepo contract.UserRepo
	carRepo  contract.CarRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	i := repoInstancesWithConn(db.conn, db.driver)
	i.db = db
	return i
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(conn dbConn, driver string) *instance {
	bound := newBoundConn(conn, driver)
	return &instance{
		userRepo: newUserRepo(bound),
		carRepo:  newCarRepo(bound),
	}
}

// User returns the user repository
func (i *instance) User() contract.UserRepo {
	return i.userRepo
}

// Car returns the car repository
func (i *instance) Car() contract.CarRepo {
	return i.carRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	if i.db == nil {
		// already inside a transaction
		return fn(i)
	}

	tx, err := i.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	txInstance := repoInstancesWithConn(tx, i.db.driver)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
