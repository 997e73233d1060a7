package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CourtEase-BookingService/internal/domain"
)

func TestEngine_IsSlotBookable(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	day := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	// Корт занят 15 сентября с 10:00 до 12:00
	booked := []domain.Interval{
		{
			Start: time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC),
			End:   time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC),
		},
	}

	engine := New(now, booked)

	t.Run("slot inside booked interval is not bookable", func(t *testing.T) {
		assert.False(t, engine.IsSlotBookable(day, 10, 1))
		assert.False(t, engine.IsSlotBookable(day, 11, 1))
	})

	t.Run("slot overlapping booked tail is not bookable", func(t *testing.T) {
		// 09:00 + 2 часа захватывает 10:00-11:00
		assert.False(t, engine.IsSlotBookable(day, 9, 2))
	})

	t.Run("slot starting when booking ends is bookable", func(t *testing.T) {
		// Полуоткрытые интервалы: касание границ не является пересечением
		assert.True(t, engine.IsSlotBookable(day, 12, 1))
	})

	t.Run("slot ending when booking starts is bookable", func(t *testing.T) {
		assert.True(t, engine.IsSlotBookable(day, 9, 1))
	})

	t.Run("past slot is not bookable", func(t *testing.T) {
		pastDay := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
		assert.False(t, engine.IsSlotBookable(pastDay, 10, 1))
	})

	t.Run("slot beyond horizon is not bookable", func(t *testing.T) {
		// Горизонт: 1 декабря 2026, конец дня
		farDay := time.Date(2027, 1, 10, 0, 0, 0, 0, time.UTC)
		assert.False(t, engine.IsSlotBookable(farDay, 10, 1))
	})

	t.Run("zero duration is not bookable", func(t *testing.T) {
		assert.False(t, engine.IsSlotBookable(day, 14, 0))
	})
}

func TestEngine_HourOptions(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	day := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	booked := []domain.Interval{
		{
			Start: time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC),
			End:   time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC),
		},
	}

	engine := New(now, booked)
	options := engine.HourOptions(day, 1)

	// Часы 06..22 включительно
	require.Len(t, options, 17)
	assert.Equal(t, domain.FirstBookableHour, options[0].Hour)
	assert.Equal(t, domain.LastBookableHour, options[len(options)-1].Hour)

	byHour := make(map[int]bool, len(options))
	for _, opt := range options {
		byHour[opt.Hour] = opt.Bookable
	}

	assert.True(t, byHour[9])
	assert.False(t, byHour[10])
	assert.False(t, byHour[11])
	assert.True(t, byHour[12])
}

func TestEngine_HourOptions_LongerDurationDisablesHours(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	day := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	booked := []domain.Interval{
		{
			Start: time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC),
			End:   time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC),
		},
	}

	engine := New(now, booked)

	oneHour := engine.HourOptions(day, 1)
	twoHours := engine.HourOptions(day, 2)

	find := func(options []HourOption, hour int) HourOption {
		for _, opt := range options {
			if opt.Hour == hour {
				return opt
			}
		}
		t.Fatalf("hour %d not found", hour)
		return HourOption{}
	}

	// 09:00 свободен для часа, но два часа захватили бы занятый интервал
	assert.True(t, find(oneHour, 9).Bookable)
	assert.False(t, find(twoHours, 9).Bookable)
}

func TestEngine_DurationOptions(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	day := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	booked := []domain.Interval{
		{
			Start: time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC),
			End:   time.Date(2026, 9, 15, 13, 0, 0, 0, time.UTC),
		},
	}

	engine := New(now, booked)
	options := engine.DurationOptions(day, 10)

	require.Len(t, options, 4)
	assert.Equal(t, []int{1, 2, 3, 4}, []int{
		options[0].DurationHours, options[1].DurationHours,
		options[2].DurationHours, options[3].DurationHours,
	})

	// 10:00 + 1ч и + 2ч свободны, + 3ч и + 4ч пересекают 12:00-13:00
	assert.True(t, options[0].Bookable)
	assert.True(t, options[1].Bookable)
	assert.False(t, options[2].Bookable)
	assert.False(t, options[3].Bookable)
}

func TestSlotInterval(t *testing.T) {
	day := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	slot := SlotInterval(day, 10, 2)

	assert.Equal(t, time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC), slot.Start)
	assert.Equal(t, time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC), slot.End)
}
