package availability

import (
	"time"

	"github.com/m04kA/CourtEase-BookingService/internal/domain"
)

// GridCells фиксированный размер календарной сетки: 6 недель по 7 дней
const GridCells = 42

// DayCell ячейка календарной сетки месяца
type DayCell struct {
	Date           time.Time
	Label          int  // День месяца (1..31)
	IsCurrentMonth bool // Принадлежит ли отображаемому месяцу
	IsDisabled     bool // Вне горизонта: раньше сегодня или позже горизонта
	IsToday        bool
	HasBooking     bool // Есть ли занятые интервалы, затрагивающие этот день
	IsFullyBooked  bool // Все стартовые часы дня недоступны даже для 1 часа
}

// BuildCalendarGrid строит сетку из 42 дней для месяца month
// Сетка начинается с понедельника на/перед первым числом месяца,
// чтобы UI всегда отрисовывал полные недели
func (e *Engine) BuildCalendarGrid(month time.Time) []DayCell {
	monthStart := startOfMonth(month)

	// Понедельник на/перед первым числом месяца
	offset := (int(monthStart.Weekday()) + 6) % 7
	gridStart := monthStart.AddDate(0, 0, -offset)

	today := startOfDay(e.now)
	lastDay := startOfDay(e.horizonEnd)

	cells := make([]DayCell, 0, GridCells)
	for i := 0; i < GridCells; i++ {
		day := gridStart.AddDate(0, 0, i)
		hasBooking := e.dayHasBooking(day)

		cell := DayCell{
			Date:           day,
			Label:          day.Day(),
			IsCurrentMonth: day.Month() == monthStart.Month(),
			IsDisabled:     day.Before(today) || day.After(lastDay),
			IsToday:        day.Equal(today),
			HasBooking:     hasBooking,
		}

		// Полную занятость считаем через IsSlotBookable, а не отдельной
		// эвристикой: день полностью занят, когда ни один стартовый час
		// не доступен даже для минимальной длительности в 1 час
		if hasBooking {
			cell.IsFullyBooked = e.dayFullyBooked(day)
		}

		cells = append(cells, cell)
	}

	return cells
}

// dayHasBooking проверяет, затрагивает ли какой-либо занятый интервал календарный день
func (e *Engine) dayHasBooking(day time.Time) bool {
	dayInterval := domain.Interval{Start: day, End: day.AddDate(0, 0, 1)}
	for _, b := range e.booked {
		if dayInterval.Overlaps(b) {
			return true
		}
	}
	return false
}

// dayFullyBooked проверяет, что ни один предлагаемый час дня недоступен
// даже для минимальной длительности
func (e *Engine) dayFullyBooked(day time.Time) bool {
	for hour := domain.FirstBookableHour; hour <= domain.LastBookableHour; hour++ {
		if e.IsSlotBookable(day, hour, domain.MinDurationHours) {
			return false
		}
	}
	return true
}

func startOfDay(value time.Time) time.Time {
	return time.Date(value.Year(), value.Month(), value.Day(), 0, 0, 0, 0, value.Location())
}

func startOfMonth(value time.Time) time.Time {
	return time.Date(value.Year(), value.Month(), 1, 0, 0, 0, 0, value.Location())
}
