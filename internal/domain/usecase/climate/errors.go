package climate

import (
	"errors"
	"fmt"
	"time"

	"climate-api/pkg/util/dateutils"
)

var (
	// ErrInvalidDate is returned for a date that is not a YYYY-MM-DD calendar date
	ErrInvalidDate = errors.New("invalid date")
	// ErrInvalidRange is returned when the end of a range is before its start
	ErrInvalidRange = errors.New("end date is before start date")
	// ErrEmptyDataset is returned when the store holds no observation at all
	ErrEmptyDataset = errors.New("no observations in dataset")
	// ErrNoObservationsInRange is returned when no temperature falls inside the requested range
	ErrNoObservationsInRange = errors.New("no observations in date range")
)

// DateError carries the rejected input of an ErrInvalidDate
type DateError struct {
	Value string
}

func (e *DateError) Error() string {
	return fmt.Sprintf("%s %q: expected YYYY-MM-DD", ErrInvalidDate, e.Value)
}

func (e *DateError) Unwrap() error {
	return ErrInvalidDate
}

// ParseDate parses a caller supplied YYYY-MM-DD date, failing with a *DateError
func ParseDate(value string) (time.Time, error) {
	date, err := dateutils.Parse(value)
	if err != nil {
		return time.Time{}, &DateError{Value: value}
	}
	return date, nil
}
