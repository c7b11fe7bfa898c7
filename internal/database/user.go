package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/diegoclair/birthday-bot/internal/domain/contract"
	"github.com/diegoclair/birthday-bot/internal/domain/entity"
)

const userColumns = `userid, birth_month, birth_day, birth_year, birthday_creator_id, has_car`

type userRepo struct {
	db dbConn
}

func newUserRepo(db dbConn) contract.UserRepo {
	return &userRepo{db: db}
}

func (r *userRepo) Get(ctx context.Context, userID string) (*entity.UserData, error) {
	query := `SELECT ` + userColumns + ` FROM userdata WHERE userid = ?`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

func (r *userRepo) UpsertBirthday(ctx context.Context, user *entity.UserData) error {
	query := `
		INSERT INTO userdata (userid, birth_month, birth_day, birth_year, birthday_creator_id)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (userid) DO UPDATE SET
			birth_month = excluded.birth_month,
			birth_day = excluded.birth_day,
			birth_year = excluded.birth_year,
			birthday_creator_id = excluded.birthday_creator_id
	`

	_, err := r.db.ExecContext(ctx, query,
		user.UserID,
		nullInt(user.BirthMonth),
		nullInt(user.BirthDay),
		nullInt(user.BirthYear),
		nullString(user.CreatorID),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert birthday: %w", err)
	}

	return nil
}

func (r *userRepo) ClearBirthday(ctx context.Context, userID string) error {
	query := `
		UPDATE userdata
		SET birth_month = NULL, birth_day = NULL, birth_year = NULL, birthday_creator_id = NULL
		WHERE userid = ?
	`

	_, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to clear birthday: %w", err)
	}

	return nil
}

func (r *userRepo) ListWithBirthday(ctx context.Context, filter entity.BirthdayFilter) ([]*entity.UserData, error) {
	conditions := []string{"birth_month IS NOT NULL", "birth_day IS NOT NULL"}
	var args []any

	if filter.Month != 0 {
		conditions = append(conditions, "birth_month = ?")
		args = append(args, filter.Month)
	}
	if filter.Day != 0 {
		conditions = append(conditions, "birth_day = ?")
		args = append(args, filter.Day)
	}

	query := `SELECT ` + userColumns + ` FROM userdata WHERE ` +
		strings.Join(conditions, " AND ") +
		` ORDER BY birth_month ASC, birth_day ASC, userid ASC`

	return r.list(ctx, query, args...)
}

func (r *userRepo) list(ctx context.Context, query string, args ...any) ([]*entity.UserData, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
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
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (*entity.UserData, error) {
	var (
		user      entity.UserData
		month     sql.NullInt64
		day       sql.NullInt64
		year      sql.NullInt64
		creatorID sql.NullString
		hasCar    sql.NullBool
	)

	if err := s.Scan(&user.UserID, &month, &day, &year, &creatorID, &hasCar); err != nil {
		return nil, err
	}

	user.BirthMonth = intPtr(month)
	user.BirthDay = intPtr(day)
	user.BirthYear = intPtr(year)
	if creatorID.Valid {
		user.CreatorID = &creatorID.String
	}
	if hasCar.Valid {
		user.HasCar = &hasCar.Bool
	}

	return &user, nil
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}
