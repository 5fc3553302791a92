package inspection

import (
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var refNow = time.Date(2026, 1, 1, 15, 30, 0, 0, time.UTC)

func TestClassify(t *testing.T) {
	testCases := []struct {
		name string
		next null.String
		want Status
	}{
		{"absent date", null.String{}, StatusOK},
		{"malformed date", null.StringFrom("not-a-date"), StatusOK},
		{"unpadded date", null.StringFrom("2026-1-1"), StatusOK},
		{"date with time suffix", null.StringFrom("2026-01-20T10:00:00"), StatusOK},
		{"impossible calendar date", null.StringFrom("2026-02-30"), StatusOK},
		{"past date", null.StringFrom("2025-12-01"), StatusExpired},
		{"yesterday", null.StringFrom("2025-12-31"), StatusExpired},
		{"today", null.StringFrom("2026-01-01"), StatusNeedsReview},
		{"inside window", null.StringFrom("2026-01-20"), StatusNeedsReview},
		{"window boundary", null.StringFrom("2026-01-31"), StatusNeedsReview},
		{"just past window", null.StringFrom("2026-02-01"), StatusOK},
		{"far future", null.StringFrom("2026-06-01"), StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.next, refNow))
		})
	}
}

func TestClassifyIsIdempotent(t *testing.T) {
	next := null.StringFrom("2026-01-20")
	first := Classify(next, refNow)
	assert.Equal(t, first, Classify(next, refNow))
}

func TestDaysUntil(t *testing.T) {
	diff, ok := DaysUntil("2026-01-20", refNow)
	require.True(t, ok)
	assert.Equal(t, 19, diff)

	diff, ok = DaysUntil("2025-12-30", refNow)
	require.True(t, ok)
	assert.Equal(t, -2, diff)

	_, ok = DaysUntil("garbage", refNow)
	assert.False(t, ok)
}

func TestDaysUntilNormalizesTimeOfDay(t *testing.T) {
	// Late evening reference must give the same day count as early morning.
	evening := time.Date(2026, 1, 1, 23, 59, 0, 0, time.UTC)
	morning := time.Date(2026, 1, 1, 0, 1, 0, 0, time.UTC)

	d1, ok := DaysUntil("2026-01-02", evening)
	require.True(t, ok)
	d2, ok := DaysUntil("2026-01-02", morning)
	require.True(t, ok)
	assert.Equal(t, d1, d2)
	assert.Equal(t, 1, d1)
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusOK.Valid())
	assert.True(t, StatusNeedsReview.Valid())
	assert.True(t, StatusExpired.Valid())
	assert.False(t, Status("BROKEN").Valid())
}
