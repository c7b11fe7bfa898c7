package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/diegoclair/birthday-bot/internal/domain/contract"
	"github.com/diegoclair/birthday-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intP(i int) *int       { return &i }
func strP(s string) *string { return &s }

func newUser(id string, month, day int, year *int, creator *string) *entity.UserData {
	return &entity.UserData{UserID: id, BirthMonth: intP(month), BirthDay: intP(day), BirthYear: year, CreatorID: creator}
}

func TestUserRepo_GetAndUpsert(t *testing.T) {
	ctx := context.Background()
	db := SetupTestDB(t)
	repo := newUserRepo(newBoundConn(db.conn, db.driver))

	t.Run("should return nil for unknown user", func(t *testing.T) {
		got, err := repo.Get(ctx, "U404")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("should round trip a full record", func(t *testing.T) {
		err := repo.UpsertBirthday(ctx, newUser("U1", 3, 14, intP(1990), strP("U1")))
		require.NoError(t, err)

		got, err := repo.Get(ctx, "U1")
		require.NoError(t, err)
		require.NotNil(t, got)

		assert.Equal(t, "U1", got.UserID)
		assert.Equal(t, 3, *got.BirthMonth)
		assert.Equal(t, 14, *got.BirthDay)
		assert.Equal(t, 1990, *got.BirthYear)
		assert.Equal(t, "U1", *got.CreatorID)
		assert.Nil(t, got.HasCar)
		assert.True(t, got.IsVerified())
	})

	t.Run("should overwrite on second upsert", func(t *testing.T) {
		err := repo.UpsertBirthday(ctx, newUser("U1", 4, 1, nil, strP("U2")))
		require.NoError(t, err)

		got, err := repo.Get(ctx, "U1")
		require.NoError(t, err)
		assert.Equal(t, 4, *got.BirthMonth)
		assert.Equal(t, 1, *got.BirthDay)
		assert.Nil(t, got.BirthYear)
		assert.Equal(t, "U2", got.Creator())
	})
}

func TestUserRepo_ClearBirthday(t *testing.T) {
	ctx := context.Background()
	db := SetupTestDB(t)
	dm := NewInstance(db)

	require.NoError(t, dm.User().UpsertBirthday(ctx, newUser("U1", 3, 14, intP(1990), strP("U2"))))
	require.NoError(t, dm.Car().SetHasCar(ctx, "U1", true))

	require.NoError(t, dm.User().ClearBirthday(ctx, "U1"))

	got, err := dm.User().Get(ctx, "U1")
	require.NoError(t, err)
	require.NotNil(t, got, "row must be kept")
	assert.False(t, got.HasBirthday())
	assert.Nil(t, got.BirthYear)
	assert.Nil(t, got.CreatorID)
	require.NotNil(t, got.HasCar)
	assert.True(t, *got.HasCar)

	t.Run("clearing an unknown user is a no-op", func(t *testing.T) {
		require.NoError(t, dm.User().ClearBirthday(ctx, "U404"))
		got, err := dm.User().Get(ctx, "U404")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestUserRepo_ListWithBirthday(t *testing.T) {
	ctx := context.Background()
	db := SetupTestDB(t)
	repo := newUserRepo(newBoundConn(db.conn, db.driver))

	users := []*entity.UserData{
		newUser("X", 1, 5, nil, strP("X")),
		newUser("Y", 1, 1, nil, strP("Z")),
		newUser("W", 2, 1, nil, nil),
		newUser("V", 12, 25, intP(2000), strP("V")),
		newUser("A", 1, 5, nil, strP("A")),
	}
	for _, u := range users {
		require.NoError(t, repo.UpsertBirthday(ctx, u))
	}
	// a row without a birthday
	require.NoError(t, NewInstance(db).Car().SetHasCar(ctx, "N", false))

	ids := func(list []*entity.UserData) []string {
		var out []string
		for _, u := range list {
			out = append(out, u.UserID)
		}
		return out
	}

	tests := []struct {
		name   string
		filter entity.BirthdayFilter
		want   []string
	}{
		{name: "all birthdays sorted by month and day", filter: entity.BirthdayFilter{}, want: []string{"Y", "A", "X", "W", "V"}},
		{name: "by month", filter: entity.BirthdayFilter{Month: 1}, want: []string{"Y", "A", "X"}},
		{name: "by month and day", filter: entity.BirthdayFilter{Month: 1, Day: 5}, want: []string{"A", "X"}},
		{name: "empty month", filter: entity.BirthdayFilter{Month: 6}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.ListWithBirthday(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestInstance_WithTransaction(t *testing.T) {
	ctx := context.Background()
	db := SetupTestDB(t)
	dm := NewInstance(db)

	t.Run("should commit", func(t *testing.T) {
		err := dm.WithTransaction(ctx, func(tx contract.DataManager) error {
			return tx.User().UpsertBirthday(ctx, newUser("U1", 5, 5, nil, strP("U1")))
		})
		require.NoError(t, err)

		got, err := dm.User().Get(ctx, "U1")
		require.NoError(t, err)
		assert.NotNil(t, got)
	})

	t.Run("should roll back on error", func(t *testing.T) {
		boom := errors.New("boom")
		err := dm.WithTransaction(ctx, func(tx contract.DataManager) error {
			if err := tx.User().UpsertBirthday(ctx, newUser("U2", 6, 6, nil, strP("U2"))); err != nil {
				return err
			}
			return boom
		})
		require.ErrorIs(t, err, boom)

		got, err := dm.User().Get(ctx, "U2")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("should roll back and release the connection on panic", func(t *testing.T) {
		assert.PanicsWithValue(t, "boom", func() {
			_ = dm.WithTransaction(ctx, func(tx contract.DataManager) error {
				if err := tx.User().UpsertBirthday(ctx, newUser("U4", 7, 7, nil, strP("U4"))); err != nil {
					return err
				}
				panic("boom")
			})
		})

		// the single pooled connection would stay checked out by an open transaction
		readCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()

		got, err := dm.User().Get(readCtx, "U4")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("nested transaction reuses the outer one", func(t *testing.T) {
		err := dm.WithTransaction(ctx, func(tx contract.DataManager) error {
			return tx.WithTransaction(ctx, func(inner contract.DataManager) error {
				return inner.Car().SetHasCar(ctx, "U3", true)
			})
		})
		require.NoError(t, err)

		got, err := dm.User().Get(ctx, "U3")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.True(t, *got.HasCar)
	})
}
