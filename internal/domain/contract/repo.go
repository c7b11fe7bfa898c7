package contract

import (
	"context"

	"github.com/diegoclair/birthday-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	User() UserRepo
	Car() CarRepo
}

// UserRepo defines the contract for the userdata table and its birthday columns
type UserRepo interface {
	// Get returns nil, nil when the user has no row.
	Get(ctx context.Context, userID string) (*entity.UserData, error)
	UpsertBirthday(ctx context.Context, user *entity.UserData) error
	ClearBirthday(ctx context.Context, userID string) error
	ListWithBirthday(ctx context.Context, filter entity.BirthdayFilter) ([]*entity.UserData, error)
}

// CarRepo defines the contract for the car ownership column of userdata
type CarRepo interface {
	SetHasCar(ctx context.Context, userID string, hasCar bool) error
	ClearHasCar(ctx context.Context, userID string) error
	ListWithCarInfo(ctx context.Context) ([]*entity.UserData, error)
}
