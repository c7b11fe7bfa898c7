package entity

import "github.com/diegoclair/birthday-bot/internal/domain/calendar"

// UserData is the single persisted row per Slack user.
type UserData struct {
	UserID     string
	BirthMonth *int
	BirthDay   *int
	BirthYear  *int
	CreatorID  *string
	HasCar     *bool
}

// HasBirthday reports whether month and day are both set.
func (u *UserData) HasBirthday() bool {
	return u != nil && u.BirthMonth != nil && u.BirthDay != nil
}

// IsVerified reports whether the subject confirmed the birthday themselves.
func (u *UserData) IsVerified() bool {
	return u != nil && u.CreatorID != nil && *u.CreatorID == u.UserID
}

// Creator returns the creator id or "".
func (u *UserData) Creator() string {
	if u == nil || u.CreatorID == nil {
		return ""
	}
	return *u.CreatorID
}

// Birthday returns the stored date. Only meaningful when HasBirthday is true.
func (u *UserData) Birthday() calendar.Date {
	d := calendar.Date{}
	if u.BirthMonth != nil {
		d.Month = *u.BirthMonth
	}
	if u.BirthDay != nil {
		d.Day = *u.BirthDay
	}
	if u.BirthYear != nil {
		y := *u.BirthYear
		d.Year = &y
	}
	return d
}

// SetBirthday copies d into the record and stamps creatorID.
func (u *UserData) SetBirthday(d calendar.Date, creatorID string) {
	month, day := d.Month, d.Day
	u.BirthMonth = &month
	u.BirthDay = &day
	u.BirthYear = nil
	if d.Year != nil {
		y := *d.Year
		u.BirthYear = &y
	}
	u.CreatorID = &creatorID
}

// BirthdayFilter narrows ListWithBirthday. Zero values mean "any".
type BirthdayFilter struct {
	Month int
	Day   int
}
