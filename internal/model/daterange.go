package model

import "time"

// DateLayout is the calendar date format accepted and produced by the API.
const DateLayout = "2006-01-02"

// DateRange is a half-open interval of calendar days [Start, End).  A
// reservation occupies its rooms on every night from Start up to, but not
// including, End.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange truncates both bounds to midnight UTC.
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: Day(start), End: Day(end)}
}

// ParseDateRange parses two YYYY-MM-DD strings into a DateRange.
func ParseDateRange(start, end string) (DateRange, error) {
	s, err := time.Parse(DateLayout, start)
	if err != nil {
		return DateRange{}, err
	}
	e, err := time.Parse(DateLayout, end)
	if err != nil {
		return DateRange{}, err
	}
	return NewDateRange(s, e), nil
}

// InclusiveDays converts the closed period [first, last] into the
// half-open range [first, last+1).
func InclusiveDays(first, last time.Time) DateRange {
	return NewDateRange(first, Day(last).AddDate(0, 0, 1))
}

// Month returns the half-open range covering the given month.
func Month(year int, month time.Month) DateRange {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return DateRange{Start: start, End: start.AddDate(0, 1, 0)}
}

// Year returns the half-open range covering the given year.
func Year(year int) DateRange {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return DateRange{Start: start, End: start.AddDate(1, 0, 0)}
}

// Valid reports whether End is strictly after Start.
func (r DateRange) Valid() bool { return r.End.After(r.Start) }

// Nights is the number of nights in the range; zero for invalid ranges.
func (r DateRange) Nights() int {
	if !r.Valid() {
		return 0
	}
	return int(r.End.Sub(r.Start).Hours() / 24)
}

// Overlaps reports whether two half-open ranges share at least one night.
func (r DateRange) Overlaps(o DateRange) bool {
	return r.Start.Before(o.End) && o.Start.Before(r.End)
}

func (r DateRange) String() string {
	return r.Start.Format(DateLayout) + "/" + r.End.Format(DateLayout)
}

// Day truncates t to midnight UTC of its calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
