package pricing

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	base := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		pricePerHour float64
		start        time.Time
		end          time.Time
		want         int64
	}{
		{
			name:         "two hours at 200000",
			pricePerHour: 200000,
			start:        base, end: base.Add(2 * time.Hour),
			want: 400000,
		},
		{
			name:         "one hour at 150000",
			pricePerHour: 150000,
			start:        base, end: base.Add(time.Hour),
			want: 150000,
		},
		{
			name:         "fractional total rounds up",
			pricePerHour: 100000.5,
			start:        base, end: base.Add(3 * time.Hour),
			want: 300002, // 100000.5 * 3 = 300001.5, округляется вверх
		},
		{
			name:         "sub-hour duration billed as one hour",
			pricePerHour: 150000,
			start:        base, end: base.Add(30 * time.Minute),
			want: 150000,
		},
		{
			name:         "ninety minutes billed as one and a half hours",
			pricePerHour: 100000,
			start:        base, end: base.Add(90 * time.Minute),
			want: 150000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Calculate(tt.pricePerHour, tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculate_PriceNotConfigured(t *testing.T) {
	base := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)
	end := base.Add(time.Hour)

	for _, rate := range []float64{0, -100, math.NaN(), math.Inf(1)} {
		_, err := Calculate(rate, base, end)
		assert.ErrorIs(t, err, ErrPriceNotConfigured)
	}
}
