// Package opzone performs all calendar arithmetic in the single operating
// timezone of the business. Bookings and availability are local-calendar
// facts; naive UTC midnights would mis-bucket late-evening bookings.
package opzone

import "time"

const DefaultTimezone = "Asia/Dubai"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

// Zone binds the helpers to one configured operating timezone.
type Zone struct {
	loc *time.Location
}

func New(tz string) *Zone {
	return &Zone{loc: Location(tz)}
}

func (z *Zone) Loc() *time.Location {
	return z.loc
}

func (z *Zone) Now() time.Time {
	return time.Now().In(z.loc)
}

// DayStart returns 00:00:00 of t's calendar day in the operating zone.
func (z *Zone) DayStart(t time.Time) time.Time {
	local := t.In(z.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, z.loc)
}

// DayEnd returns 23:59:59.999999999 of t's calendar day in the operating zone.
func (z *Zone) DayEnd(t time.Time) time.Time {
	return z.DayStart(t).Add(24*time.Hour - time.Nanosecond)
}

func (z *Zone) SameDay(a, b time.Time) bool {
	la, lb := a.In(z.loc), b.In(z.loc)
	return la.Year() == lb.Year() && la.Month() == lb.Month() && la.Day() == lb.Day()
}

func (z *Zone) FormatDay(t time.Time) string {
	return t.In(z.loc).Format("Jan 2, 2006")
}

func (z *Zone) DateString(t time.Time) string {
	return t.In(z.loc).Format("2006-01-02")
}

// ParseDate interprets a YYYY-MM-DD string as midnight in the operating zone.
func (z *Zone) ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, z.loc)
}

func (z *Zone) IsPastDay(t time.Time) bool {
	return z.DayStart(t).Before(z.DayStart(z.Now()))
}
