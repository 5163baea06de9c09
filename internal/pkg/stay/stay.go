// Package stay holds the date arithmetic shared by availability checks and
// price computation. Stays are half-open intervals [checkIn, checkOut):
// a guest checking out on a date does not occupy that night, so back-to-back
// stays sharing a turnover date do not overlap.
package stay

import (
	"errors"
	"math"
	"time"
)

const DateLayout = "2006-01-02"

var ErrBadDate = errors.New("invalid date")

// ParseDate parses a calendar date and pins it to midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrBadDate
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// Nights returns the number of billable nights between checkIn and checkOut,
// rounded up and floored at one.
func Nights(checkIn, checkOut time.Time) int {
	n := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if n < 1 {
		return 1
	}
	return n
}

// Overlaps reports whether the half-open ranges [aStart, aEnd) and
// [bStart, bEnd) share at least one night.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}
