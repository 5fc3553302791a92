package inspection

import (
	"regexp"
	"time"

	"github.com/aarondl/null/v8"
)

// Status of an inspectable asset, derived from the days remaining until its
// next scheduled inspection.
type Status string

const (
	StatusOK          Status = "OK"
	StatusNeedsReview Status = "NEEDS_REVIEW"
	StatusExpired     Status = "EXPIRED"
)

// DueSoonWindowDays is the width of the "needs review" window.
const DueSoonWindowDays = 30

func (s Status) Valid() bool {
	switch s {
	case StatusOK, StatusNeedsReview, StatusExpired:
		return true
	}
	return false
}

var dateShape = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// ParseDate parses a YYYY-MM-DD calendar date. The shape is checked before
// handing off to time.Parse so that stray time components or unpadded
// fields never slip through.
func ParseDate(s string) (time.Time, bool) {
	if !dateShape.MatchString(s) {
		return time.Time{}, false
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// DaysUntil returns the whole calendar days between now and the given date.
// Time of day is normalized away on both sides; the result is negative when
// the date is in the past. ok is false for absent or malformed input.
func DaysUntil(next string, now time.Time) (int, bool) {
	d, ok := ParseDate(next)
	if !ok {
		return 0, false
	}
	target := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	ref := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(target.Sub(ref).Hours() / 24), true
}

// Classify maps an optional next-inspection date and a reference time to a
// Status. It is total: absent or malformed dates degrade to StatusOK rather
// than failing.
func Classify(next null.String, now time.Time) Status {
	if !next.Valid {
		return StatusOK
	}
	diff, ok := DaysUntil(next.String, now)
	if !ok {
		return StatusOK
	}
	switch {
	case diff < 0:
		return StatusExpired
	case diff <= DueSoonWindowDays:
		return StatusNeedsReview
	default:
		return StatusOK
	}
}
