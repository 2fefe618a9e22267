package report

import (
	"time"

	apperrors "fluxo/internal/errors"
)

// DateRange is an inclusive closed interval of calendar dates used to
// scope aggregation. Both bounds are normalized to UTC midnight so that
// comparisons are calendar-date only, never shifted by time-of-day or
// zone offsets in the source data.
type DateRange struct {
	from time.Time
	to   time.Time
}

// NewDateRange builds a DateRange from two timestamps. It rejects an
// inverted pair with ErrInvalidDateRange instead of silently returning
// an empty window, since an inverted range indicates a caller bug.
// A single-day range (from == to) is valid.
func NewDateRange(from, to time.Time) (DateRange, error) {
	f, t := dateOnly(from), dateOnly(to)
	if f.After(t) {
		return DateRange{}, apperrors.ErrInvalidDateRange
	}
	return DateRange{from: f, to: t}, nil
}

// From returns the normalized start of the range.
func (r DateRange) From() time.Time { return r.from }

// To returns the normalized end of the range.
func (r DateRange) To() time.Time { return r.to }

// Contains reports whether t falls within the range, inclusive on both
// ends, comparing calendar dates only.
func (r DateRange) Contains(t time.Time) bool {
	d := dateOnly(t)
	return !d.Before(r.from) && !d.After(r.to)
}

// dateOnly strips time-of-day and zone information: a transaction dated
// 2024-03-05 in any timezone compares equal to the boundary 2024-03-05.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
