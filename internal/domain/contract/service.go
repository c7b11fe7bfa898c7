package contract

import (
	"context"
	"time"

	"github.com/diegoclair/birthday-bot/internal/domain/entity"
)

type BirthdayService interface {
	// Now returns the current time in the configured timezone.
	Now() time.Time
	Get(ctx context.Context, userID string) (*entity.UserData, error)
	// List returns every birthday that has a creator, ordered by month and day.
	List(ctx context.Context) ([]*entity.UserData, error)
	Set(ctx context.Context, subjectID, callerID string, month, day int, year *int) (*entity.UserData, error)
	Remove(ctx context.Context, subjectID, callerID string) error
	Verify(ctx context.Context, subjectID string) error
}

type CarService interface {
	Get(ctx context.Context, userID string) (*entity.UserData, error)
	List(ctx context.Context) ([]*entity.UserData, error)
	Set(ctx context.Context, subjectID string, hasCar bool) error
	// Remove clears car ownership. Only the subject may clear their own.
	Remove(ctx context.Context, subjectID, callerID string) error
}

type AnnouncementService interface {
	// RunFiring runs the monthly digest on the first of the month, then the daily announcements.
	RunFiring(ctx context.Context, now time.Time) error
	SendDaily(ctx context.Context, today time.Time) (int, error)
	SendMonthly(ctx context.Context, today time.Time) (int, error)
}
