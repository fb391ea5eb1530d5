package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func d(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func TestRangesOverlap(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{"disjoint before", d(2025, 3, 1), d(2025, 3, 3), d(2025, 3, 4), d(2025, 3, 6), false},
		{"disjoint after", d(2025, 3, 4), d(2025, 3, 6), d(2025, 3, 1), d(2025, 3, 3), false},
		{"shared boundary day", d(2025, 3, 1), d(2025, 3, 3), d(2025, 3, 3), d(2025, 3, 5), true},
		{"contained", d(2025, 3, 1), d(2025, 3, 10), d(2025, 3, 4), d(2025, 3, 6), true},
		{"containing", d(2025, 3, 4), d(2025, 3, 6), d(2025, 3, 1), d(2025, 3, 10), true},
		{"identical", d(2025, 3, 1), d(2025, 3, 3), d(2025, 3, 1), d(2025, 3, 3), true},
		{"single day ranges same day", d(2025, 3, 1), d(2025, 3, 1), d(2025, 3, 1), d(2025, 3, 1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RangesOverlap(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
		})
	}
}

func TestRangesOverlapIgnoresTimeOfDay(t *testing.T) {
	// 23:59 on the boundary day still counts as the same calendar day
	aEnd := time.Date(2025, 3, 3, 0, 30, 0, 0, time.UTC)
	bStart := time.Date(2025, 3, 3, 23, 59, 0, 0, time.UTC)
	assert.True(t, RangesOverlap(d(2025, 3, 1), aEnd, bStart, d(2025, 3, 5)))
}

func TestTruncateToDay(t *testing.T) {
	in := time.Date(2025, 8, 20, 17, 45, 12, 999, time.UTC)
	assert.Equal(t, d(2025, 8, 20), TruncateToDay(in))
}

func TestFormatDateRange(t *testing.T) {
	assert.Equal(t, "2025-03-01 to 2025-03-03", FormatDateRange(d(2025, 3, 1), d(2025, 3, 3)))
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 12*time.Hour, ParseDuration("12h", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("not-a-duration", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("", time.Hour))
}

func TestCalculateOffsetLimit(t *testing.T) {
	offset, limit := CalculateOffsetLimit(1, 10)
	assert.Equal(t, uint64(0), offset)
	assert.Equal(t, 10, limit)

	offset, limit = CalculateOffsetLimit(3, 20)
	assert.Equal(t, uint64(40), offset)
	assert.Equal(t, 20, limit)

	// out of range values fall back to defaults
	offset, limit = CalculateOffsetLimit(0, 1000)
	assert.Equal(t, uint64(0), offset)
	assert.Equal(t, DefaultPageSize, limit)
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(25, 2, 10)
	assert.Equal(t, 2, info.CurrentPage)
	assert.Equal(t, 3, info.TotalPages)
	assert.Equal(t, int64(25), info.TotalItems)

	empty := NewPaginationInfo(0, 1, 10)
	assert.Equal(t, 1, empty.TotalPages)
}
