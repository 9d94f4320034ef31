// Package period implements the year-month bucket keys used to scope
// transactions and budget items to a displayed month.
package period

import (
	"errors"
	"fmt"
	"time"
)

// Key identifies a calendar month, formatted "YYYY-MM" (e.g. "2025-03").
type Key string

// ErrInvalidKey is returned when a string is not a valid period key.
var ErrInvalidKey = errors.New("invalid period key")

// KeyOf truncates a date to month granularity using its calendar fields.
func KeyOf(t time.Time) Key {
	return Key(fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month())))
}

// Parse validates a "YYYY-MM" string and returns it as a Key.
func Parse(s string) (Key, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return "", ErrInvalidKey
	}
	return KeyOf(t), nil
}

func (k Key) yearMonth() (int, time.Month) {
	t, err := time.Parse("2006-01", string(k))
	if err != nil {
		return 0, time.January
	}
	return t.Year(), t.Month()
}

// Advance returns the key deltaMonths calendar months away. Negative deltas
// move backwards; year boundaries roll over.
func (k Key) Advance(deltaMonths int) Key {
	year, month := k.yearMonth()
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, deltaMonths, 0)
	return KeyOf(t)
}

// IsCurrent reports whether k is the period containing now.
func (k Key) IsCurrent(now time.Time) bool {
	return k == KeyOf(now)
}

// Contains reports whether t falls inside the month identified by k.
func (k Key) Contains(t time.Time) bool {
	return KeyOf(t) == k
}

// FirstDay returns midnight UTC on the first day of the month.
func (k Key) FirstDay() time.Time {
	year, month := k.yearMonth()
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

// LastDay returns midnight UTC on the last day of the month.
func (k Key) LastDay() time.Time {
	return k.FirstDay().AddDate(0, 1, -1)
}

// DayIn returns the given day-of-month inside k, clamped to the month's last
// day when k's month is shorter (a "31st" due date becomes Feb 28/29).
func (k Key) DayIn(day int) time.Time {
	first := k.FirstDay()
	last := first.AddDate(0, 1, -1).Day()
	if day < 1 {
		day = 1
	}
	if day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}

// AddMonths advances t by n calendar months, clamping the day-of-month to the
// target month's last day. Unlike time.AddDate, Jan 31 + 1 month yields
// Feb 28/29 rather than normalizing into March.
func AddMonths(t time.Time, n int) time.Time {
	target := KeyOf(t).Advance(n)
	return target.DayIn(t.Day())
}
