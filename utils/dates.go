// utils/dates.go
package utils

import (
	"errors"
	"time"
)

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func EndOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}

// DateWindow is a resolved created_at filter for list queries.
type DateWindow struct {
	Start    time.Time
	End      time.Time
	Filtered bool
}

// ResolveDateWindow turns the date / month / startDate+endDate query
// parameters into a single [Start, End] window. Filtered is false when no
// parameter was given. Later parameters win when several are combined,
// matching the query precedence of the list endpoints.
func ResolveDateWindow(date, month, startDate, endDate string) (DateWindow, error) {
	var w DateWindow

	if date != "" {
		parsed, err := time.Parse("2006-01-02", date)
		if err != nil {
			return w, errors.New("invalid date format, use YYYY-MM-DD")
		}
		w = DateWindow{Start: BeginningOfDay(parsed), End: EndOfDay(parsed), Filtered: true}
	}

	if month != "" {
		parsed, err := time.Parse("2006-01", month)
		if err != nil {
			return w, errors.New("invalid month format, use YYYY-MM")
		}
		start := time.Date(parsed.Year(), parsed.Month(), 1, 0, 0, 0, 0, parsed.Location())
		w = DateWindow{Start: start, End: EndOfDay(start.AddDate(0, 1, -1)), Filtered: true}
	}

	if startDate != "" || endDate != "" {
		start := time.Unix(0, 0)
		end := time.Now()
		if startDate != "" {
			parsed, err := time.Parse("2006-01-02", startDate)
			if err != nil {
				return w, errors.New("invalid date range, use YYYY-MM-DD")
			}
			start = parsed
		}
		if endDate != "" {
			parsed, err := time.Parse("2006-01-02", endDate)
			if err != nil {
				return w, errors.New("invalid date range, use YYYY-MM-DD")
			}
			end = parsed
		}
		if start.After(end) {
			return w, errors.New("start date cannot be after end date")
		}
		w = DateWindow{Start: BeginningOfDay(start), End: EndOfDay(end), Filtered: true}
	}

	return w, nil
}
