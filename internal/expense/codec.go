package expense

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// recurringPrefix marks the stored date column of a recurring expense, e.g. "recurring-05".
const recurringPrefix = "recurring-"

// EncodeSchedule returns the stored date column and end month column for s.
func EncodeSchedule(s Schedule) (string, *string) {
	switch v := s.(type) {
	case Recurring:
		date := fmt.Sprintf("%s%02d", recurringPrefix, v.Day)
		if v.EndMonth == nil {
			return date, nil
		}

		end := v.EndMonth.String()

		return date, &end
	case OneTime:
		return v.Date.Format(time.DateOnly), nil
	}

	return "", nil
}

// DecodeSchedule is the inverse of EncodeSchedule. The end month is ignored for
// one-time expenses. A date that does not decode returns ErrMalformedDate.
func DecodeSchedule(date string, recurring bool, endMonth *string) (Schedule, error) {
	if !recurring {
		t, err := time.Parse(time.DateOnly, date)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a date", ErrMalformedDate, date)
		}

		return OneTime{Date: t}, nil
	}

	day, err := decodeRecurringDay(date)
	if err != nil {
		return nil, err
	}

	r := Recurring{Day: day}

	if endMonth != nil && *endMonth != "" {
		m, err := ParseMonth(*endMonth)
		if err != nil {
			return nil, fmt.Errorf("%w: end month %q", ErrMalformedDate, *endMonth)
		}

		r.EndMonth = &m
	}

	return r, nil
}

func decodeRecurringDay(date string) (int, error) {
	suffix, ok := strings.CutPrefix(date, recurringPrefix)
	if !ok || suffix == "" {
		return 0, fmt.Errorf("%w: %q has no recurring day", ErrMalformedDate, date)
	}

	day, err := strconv.Atoi(suffix)
	if err != nil || day < 1 || day > 31 {
		return 0, fmt.Errorf("%w: %q has no recurring day", ErrMalformedDate, date)
	}

	return day, nil
}
