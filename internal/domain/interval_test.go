package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	base := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)
	hour := time.Hour

	tests := []struct {
		name   string
		aStart time.Time
		aEnd   time.Time
		bStart time.Time
		bEnd   time.Time
		want   bool
	}{
		{
			name:   "identical intervals overlap",
			aStart: base, aEnd: base.Add(2 * hour),
			bStart: base, bEnd: base.Add(2 * hour),
			want: true,
		},
		{
			name:   "partial overlap at the end",
			aStart: base, aEnd: base.Add(2 * hour),
			bStart: base.Add(hour), bEnd: base.Add(3 * hour),
			want: true,
		},
		{
			name:   "contained interval overlaps",
			aStart: base, aEnd: base.Add(4 * hour),
			bStart: base.Add(hour), bEnd: base.Add(2 * hour),
			want: true,
		},
		{
			name:   "touching boundaries do not overlap: a ends when b starts",
			aStart: base, aEnd: base.Add(2 * hour),
			bStart: base.Add(2 * hour), bEnd: base.Add(3 * hour),
			want: false,
		},
		{
			name:   "touching boundaries do not overlap: b ends when a starts",
			aStart: base.Add(2 * hour), aEnd: base.Add(3 * hour),
			bStart: base, bEnd: base.Add(2 * hour),
			want: false,
		},
		{
			name:   "disjoint intervals do not overlap",
			aStart: base, aEnd: base.Add(hour),
			bStart: base.Add(5 * hour), bEnd: base.Add(6 * hour),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd)
			assert.Equal(t, tt.want, got)

			// Пересечение симметрично
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestInterval_Overlaps(t *testing.T) {
	base := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)

	a := Interval{Start: base, End: base.Add(2 * time.Hour)}
	b := Interval{Start: base.Add(time.Hour), End: base.Add(3 * time.Hour)}
	c := Interval{Start: base.Add(2 * time.Hour), End: base.Add(3 * time.Hour)}

	assert.True(t, a.Overlaps(b))
	assert.False(t, a.Overlaps(c))
}

func TestInterval_IsValid(t *testing.T) {
	base := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)

	assert.True(t, Interval{Start: base, End: base.Add(time.Hour)}.IsValid())
	assert.False(t, Interval{Start: base, End: base}.IsValid())
	assert.False(t, Interval{Start: base, End: base.Add(-time.Hour)}.IsValid())
}

func TestHorizonEnd(t *testing.T) {
	now := time.Date(2026, 9, 15, 14, 30, 0, 0, time.UTC)
	horizon := HorizonEnd(now)

	assert.Equal(t, 2026, horizon.Year())
	assert.Equal(t, time.December, horizon.Month())
	assert.Equal(t, 15, horizon.Day())
	assert.Equal(t, 23, horizon.Hour())
	assert.Equal(t, 59, horizon.Minute())
}
