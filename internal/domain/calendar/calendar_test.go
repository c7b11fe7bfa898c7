package calendar

import (
	"testing"
	"time"

	"github.com/diegoclair/birthday-bot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func TestValidate(t *testing.T) {
	now := time.Date(2024, 7, 10, 12, 0, 0, 0, time.UTC)

	type args struct {
		month int
		day   int
		year  *int
	}
	tests := []struct {
		name    string
		args    args
		want    Date
		wantErr bool
	}{
		{name: "valid month day", args: args{month: 3, day: 14}, want: Date{Month: 3, Day: 14}},
		{name: "december 31", args: args{month: 12, day: 31}, want: Date{Month: 12, Day: 31}},
		{name: "feb 29 without year", args: args{month: 2, day: 29}, want: Date{Month: 2, Day: 29}},
		{name: "feb 29 in leap year", args: args{month: 2, day: 29, year: intPtr(2000)}, want: Date{Month: 2, Day: 29, Year: intPtr(2000)}},
		{name: "full date", args: args{month: 3, day: 14, year: intPtr(1990)}, want: Date{Month: 3, Day: 14, Year: intPtr(1990)}},
		{name: "today is not future", args: args{month: 7, day: 10, year: intPtr(2024)}, want: Date{Month: 7, Day: 10, Year: intPtr(2024)}},
		{name: "feb 30", args: args{month: 2, day: 30}, wantErr: true},
		{name: "feb 29 in non leap year", args: args{month: 2, day: 29, year: intPtr(2023)}, wantErr: true},
		{name: "april 31", args: args{month: 4, day: 31}, wantErr: true},
		{name: "month zero", args: args{month: 0, day: 1}, wantErr: true},
		{name: "month 13", args: args{month: 13, day: 1}, wantErr: true},
		{name: "day zero", args: args{month: 1, day: 0}, wantErr: true},
		{name: "future date", args: args{month: 7, day: 11, year: intPtr(2024)}, wantErr: true},
		{name: "year zero", args: args{month: 1, day: 1, year: intPtr(0)}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Validate(tt.args.month, tt.args.day, tt.args.year, now)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrValidation)
				assert.Contains(t, domain.UserMessage(err), "Could not parse date")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("every month day without a year validates", func(t *testing.T) {
		for m := 1; m <= 12; m++ {
			for d := 1; d <= DaysIn(time.Month(m), leapYear); d++ {
				_, err := Validate(m, d, nil, now)
				require.NoError(t, err, "%d/%d", m, d)
			}
		}
	})
}

func TestNextOccurrence(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	tests := []struct {
		name  string
		month int
		day   int
		today time.Time
		want  time.Time
	}{
		{
			name:  "birthday today moves to next year",
			month: 7, day: 10,
			today: time.Date(2024, 7, 10, 9, 0, 0, 0, ny),
			want:  time.Date(2025, 7, 10, 0, 0, 0, 0, ny),
		},
		{
			name:  "birthday tomorrow stays this year",
			month: 7, day: 10,
			today: time.Date(2024, 7, 9, 23, 59, 0, 0, ny),
			want:  time.Date(2024, 7, 10, 0, 0, 0, 0, ny),
		},
		{
			name:  "birthday passed moves to next year",
			month: 1, day: 5,
			today: time.Date(2024, 7, 9, 0, 0, 0, 0, ny),
			want:  time.Date(2025, 1, 5, 0, 0, 0, 0, ny),
		},
		{
			name:  "today is read in the given timezone",
			month: 7, day: 10,
			// 02:00 UTC on the 10th is still the 9th in New York
			today: time.Date(2024, 7, 10, 2, 0, 0, 0, time.UTC),
			want:  time.Date(2024, 7, 10, 0, 0, 0, 0, ny),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextOccurrence(tt.month, tt.day, tt.today, ny)
			assert.True(t, tt.want.Equal(got), "want %v, got %v", tt.want, got)
			assert.True(t, got.After(tt.today))
		})
	}
}

func TestAge(t *testing.T) {
	today := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)

	age, ok := Age(Date{Month: 3, Day: 14, Year: intPtr(1990)}, today)
	assert.True(t, ok)
	assert.Equal(t, 34, age)

	age, ok = Age(Date{Month: 3, Day: 15, Year: intPtr(1990)}, today)
	assert.True(t, ok)
	assert.Equal(t, 33, age)

	_, ok = Age(Date{Month: 3, Day: 15}, today)
	assert.False(t, ok)
}

func TestOrdinal(t *testing.T) {
	cases := map[int]string{
		1: "1st", 2: "2nd", 3: "3rd", 4: "4th", 10: "10th",
		11: "11th", 12: "12th", 13: "13th", 21: "21st", 22: "22nd",
		23: "23rd", 101: "101st", 111: "111th", 112: "112th",
	}
	for n, want := range cases {
		assert.Equal(t, want, Ordinal(n))
	}
}

func TestRelative(t *testing.T) {
	now := time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)

	assert.Equal(t, "today", Relative(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, "tomorrow", Relative(time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, "in 5 days", Relative(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, "in 365 days", Relative(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), now))
}

func TestDateString(t *testing.T) {
	assert.Equal(t, "March 14", Date{Month: 3, Day: 14}.String())
	assert.Equal(t, "March 14, 1990", Date{Month: 3, Day: 14, Year: intPtr(1990)}.String())
}
