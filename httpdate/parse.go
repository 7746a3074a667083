package httpdate

import (
	"fmt"
	"time"
)

// Parse parses a date in any of the three formats permitted by RFC 7231 section
// 7.1.1.1 and returns the number of seconds since the Unix epoch, in UTC. Two-digit
// years (RFC 850 form) are resolved relative to the current UTC year.
func Parse(s string) (int64, error) {
	return parseAt(s, time.Now().UTC())
}

// parseAt parses s, resolving any two-digit year relative to the year of now
func parseAt(s string, now time.Time) (int64, error) {
	var f fields
	matched := false
	for i := range grammars {
		if f, matched = grammars[i].match(s); matched {
			break
		}
	}
	if !matched {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	year := f.year
	if f.twoDigitYear {
		year = expandTwoDigitYear(year, now.Year())
	}
	if !isValidDate(year, f.month, f.day) || f.hour > 23 || f.min > 59 || f.sec > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidValue, s)
	}
	t := time.Date(year, time.Month(f.month), f.day, f.hour, f.min, f.sec, 0, time.UTC)
	return t.Unix(), nil
}

// expandTwoDigitYear maps yy onto a full year within 50 years of currentYear: years
// that would land more than 50 years in the future are taken to be in the past
// century instead
func expandTwoDigitYear(yy int, currentYear int) int {
	century := currentYear - currentYear%100
	if yy-currentYear%100 > 50 {
		return century - 100 + yy
	}
	return century + yy
}

func isValidDate(year, month, day int) bool {
	if year < 1 || month < 1 || month > 12 || day < 1 {
		return false
	}
	// Day 0 of the following month normalizes to the last day of this month
	daysInMonth := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	return day <= daysInMonth
}
