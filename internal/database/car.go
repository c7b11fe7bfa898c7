package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/birthday-bot/internal/domain/contract"
	"github.com/diegoclair/birthday-bot/internal/domain/entity"
)

type carRepo struct {
	db dbConn
}

func newCarRepo(db dbConn) contract.CarRepo {
	return &carRepo{db: db}
}

func (r *carRepo) SetHasCar(ctx context.Context, userID string, hasCar bool) error {
	query := `
		INSERT INTO userdata (userid, has_car)
		VALUES (?, ?)
		ON CONFLICT (userid) DO UPDATE SET has_car = excluded.has_car
	`

	if _, err := r.db.ExecContext(ctx, query, userID, hasCar); err != nil {
		return fmt.Errorf("failed to set car ownership: %w", err)
	}

	return nil
}

func (r *carRepo) ClearHasCar(ctx context.Context, userID string) error {
	query := `UPDATE userdata SET has_car = NULL WHERE userid = ?`

	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to clear car ownership: %w", err)
	}

	return nil
}

func (r *carRepo) ListWithCarInfo(ctx context.Context) ([]*entity.UserData, error) {
	query := `SELECT ` + userColumns + ` FROM userdata WHERE has_car IS NOT NULL ORDER BY userid ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list car owners: %w", err)
	}
	defer rows.Close()

	var users []*entity.UserData
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate car owners: %w", err)
	}

	return users, nil
}
