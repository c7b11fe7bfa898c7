// Package calendar holds the birthday date rules: validation, next occurrence, age and
// the text helpers used when rendering dates.
package calendar

import (
	"fmt"
	"time"

	"github.com/diegoclair/birthday-bot/internal/domain"
)

// leapYear is used to check month-day pairs given without a year, so Feb 29 is accepted.
const leapYear = 2000

// Date is a validated birthday. Year is nil when unknown.
type Date struct {
	Month int
	Day   int
	Year  *int
}

// Validate checks a month/day pair and the optional year against calendar rules.
// A full date must not be after now.
func Validate(month, day int, year *int, now time.Time) (Date, error) {
	if month < 1 || month > 12 {
		return Date{}, domain.Validation("Could not parse date: month %d is invalid, it must be between 1 and 12.", month)
	}

	checkYear := leapYear
	if year != nil {
		checkYear = *year
	}

	if last := DaysIn(time.Month(month), checkYear); day < 1 || day > last {
		if year != nil {
			return Date{}, domain.Validation("Could not parse date: day %d is invalid for %s %d.", day, time.Month(month), *year)
		}
		return Date{}, domain.Validation("Could not parse date: day %d is invalid for %s.", day, time.Month(month))
	}

	if year != nil {
		if *year < 1 {
			return Date{}, domain.Validation("Could not parse date: year %d is invalid.", *year)
		}
		born := time.Date(*year, time.Month(month), day, 0, 0, 0, 0, now.Location())
		if born.After(now) {
			return Date{}, domain.Validation("Could not parse date: %s is in the future.", born.Format("January 2, 2006"))
		}
		y := *year
		year = &y
	}

	return Date{Month: month, Day: day, Year: year}, nil
}

// DaysIn returns the number of days of month m in year.
func DaysIn(m time.Month, year int) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// String renders "March 14" or "March 14, 1990".
func (d Date) String() string {
	s := fmt.Sprintf("%s %d", time.Month(d.Month), d.Day)
	if d.Year != nil {
		s = fmt.Sprintf("%s, %d", s, *d.Year)
	}
	return s
}

// Age returns the completed years between the birth date and today, or false when the year
// is unknown.
func Age(d Date, today time.Time) (int, bool) {
	if d.Year == nil {
		return 0, false
	}
	age := today.Year() - *d.Year
	if int(today.Month()) < d.Month || (int(today.Month()) == d.Month && today.Day() < d.Day) {
		age--
	}
	return age, true
}
