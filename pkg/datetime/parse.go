// Package datetime provides month-granularity date helpers for payment schedules.
package datetime

import (
	"time"

	"github.com/iwvelando/finance-calculators/pkg/constants"
)

const (
	// DateTimeLayout is the month format used for schedule start dates and row
	// labels.
	DateTimeLayout = constants.DateTimeLayout
)

// CurrentMonth formats now in DateTimeLayout.
func CurrentMonth(now time.Time) string {
	return now.Format(DateTimeLayout)
}

// IsValidMonth reports whether date parses with DateTimeLayout.
func IsValidMonth(date string) bool {
	_, err := time.Parse(DateTimeLayout, date)
	return err == nil
}

// OffsetDate returns the string-formatted date offset by the given number of
// months relative to the given date.
func OffsetDate(date, layout string, months int) (string, error) {
	t, err := time.Parse(layout, date)
	if err != nil {
		return date, err
	}
	return t.AddDate(0, months, 0).Format(layout), nil
}

// Year returns the calendar year of a DateTimeLayout date.
func Year(date string) (int, error) {
	dateT, err := time.Parse(DateTimeLayout, date)
	if err != nil {
		return 0, err
	}
	return dateT.Year(), nil
}

// DateBeforeDate returns true if firstDate is strictly before secondDate.
func DateBeforeDate(firstDate string, secondDate string) (bool, error) {
	firstDateT, err := time.Parse(DateTimeLayout, firstDate)
	if err != nil {
		return false, err
	}
	secondDateT, err := time.Parse(DateTimeLayout, secondDate)
	if err != nil {
		return false, err
	}
	return firstDateT.Before(secondDateT), nil
}
