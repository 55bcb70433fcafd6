// Package dates resolves user-entered due-date strings into calendar dates.
//
// Two mutually exclusive input forms are accepted:
//
//   - absolute: a literal YYYY-MM-DD date (no partial dates, no time part)
//   - relative: "<n> <unit>" where n is a positive integer and unit is one of
//     day/days/week/weeks/month/months (case-insensitive), resolved against
//     the moment of entry
//
// Month arithmetic preserves the day-of-month when possible and clamps to the
// last valid day of the target month otherwise (Jan 31 + 1 month = last day
// of February).
package dates

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidDate = errors.New("invalid date")

// Layout is the wire format for due dates (also the only accepted absolute form).
const Layout = "2006-01-02"

var reAbsolute = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Resolve parses a free-form due-date string, using now as the anchor for
// relative inputs. The result is truncated to a date (midnight UTC).
func Resolve(input string, now time.Time) (time.Time, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return time.Time{}, ErrInvalidDate
	}
	if reAbsolute.MatchString(s) {
		return Parse(s)
	}
	return resolveRelative(s, now)
}

// Parse parses a strict YYYY-MM-DD date. Inputs that match the shape but do
// not exist on the calendar (e.g. 2025-02-30) are rejected.
func Parse(s string) (time.Time, error) {
	if !reAbsolute.MatchString(s) {
		return time.Time{}, ErrInvalidDate
	}
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// Format renders t in the wire format.
func Format(t time.Time) string {
	return t.Format(Layout)
}

func resolveRelative(s string, now time.Time) (time.Time, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return time.Time{}, ErrInvalidDate
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n <= 0 {
		return time.Time{}, ErrInvalidDate
	}
	base := Midnight(now)
	switch strings.ToLower(fields[1]) {
	case "day", "days":
		return base.AddDate(0, 0, n), nil
	case "week", "weeks":
		return base.AddDate(0, 0, 7*n), nil
	case "month", "months":
		return AddMonths(base, n), nil
	}
	return time.Time{}, ErrInvalidDate
}

// Midnight truncates t to its date in UTC.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddMonths adds n calendar months to t, clamping the day-of-month to the
// last valid day of the target month. time.AddDate is unsuitable here: it
// normalizes Jan 31 + 1 month into early March.
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	months := int(m) - 1 + n
	ty := y + months/12
	tm := time.Month(months%12 + 1)
	if months < 0 {
		// Go's integer division truncates toward zero.
		ty = y + (months-11)/12
		tm = time.Month((months%12+12)%12 + 1)
	}
	return time.Date(ty, tm, clampDay(ty, tm, d), 0, 0, 0, 0, t.Location())
}

func daysInMonth(y int, m time.Month) int {
	// Day 0 of next month is last day of this month.
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func clampDay(y int, m time.Month, d int) int {
	if d < 1 {
		return 1
	}
	max := daysInMonth(y, m)
	if d > max {
		return max
	}
	return d
}
