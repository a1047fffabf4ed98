package model

import (
	"errors"
	"fmt"
	"roomres/shared/constant"
	"time"
)

var (
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrInvalidDateOrder  = errors.New("the start date must come before the end date")
)

// ParseDateRange parses a pair of calendar date strings. The end date may
// equal the start date (single-day reservation) but must not precede it.
func ParseDateRange(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := time.Parse(constant.CalendarDateFormat, startDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, startDate)
	}

	end, err := time.Parse(constant.CalendarDateFormat, endDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, endDate)
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, ErrInvalidDateOrder
	}

	return start, end, nil
}

// FormatDate renders a parsed calendar date back to its canonical
// YYYY-MM-DD form, so string comparisons order the same way dates do.
func FormatDate(t time.Time) string {
	return t.Format(constant.CalendarDateFormat)
}
