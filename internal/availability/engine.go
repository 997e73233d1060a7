// Package availability движок доступности слотов
//
// Все функции чистые: результат полностью определяется моментом "сейчас",
// списком занятых интервалов и параметрами запроса. Движок ничего не знает
// про хранилище и никогда не возвращает ошибку на "нет свободных слотов" —
// отсутствие доступности выражается как false/пустой список.
package availability

import (
	"time"

	"github.com/m04kA/CourtEase-BookingService/internal/domain"
)

// Engine вычисляет доступность слотов корта на основе снимка занятых интервалов
type Engine struct {
	now        time.Time
	horizonEnd time.Time
	booked     []domain.Interval
}

// New создает движок доступности
// Горизонт бронирования выводится из now: сегодня + 3 месяца, конец дня
func New(now time.Time, booked []domain.Interval) *Engine {
	return &Engine{
		now:        now,
		horizonEnd: domain.HorizonEnd(now),
		booked:     booked,
	}
}

// HorizonEnd возвращает конец горизонта бронирования движка
func (e *Engine) HorizonEnd() time.Time {
	return e.horizonEnd
}

// SlotInterval строит интервал кандидата: date в hour:00 плюс durationHours часов
func SlotInterval(date time.Time, hour, durationHours int) domain.Interval {
	start := time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, date.Location())
	return domain.Interval{
		Start: start,
		End:   start.Add(time.Duration(durationHours) * time.Hour),
	}
}

// IsSlotBookable проверяет, можно ли забронировать слот (date, hour, durationHours)
//
// Слот недоступен, если:
// - начало слота раньше текущего момента
// - конец слота за пределами горизонта бронирования
// - длительность нулевая или отрицательная
// - слот пересекается с любым занятым интервалом
func (e *Engine) IsSlotBookable(date time.Time, hour, durationHours int) bool {
	slot := SlotInterval(date, hour, durationHours)

	if slot.Start.Before(e.now) {
		return false
	}
	if !slot.IsValid() {
		return false
	}
	if slot.End.After(e.horizonEnd) {
		return false
	}

	for _, b := range e.booked {
		if slot.Overlaps(b) {
			return false
		}
	}

	return true
}

// HourOption стартовый час с признаком доступности
type HourOption struct {
	Hour     int
	Bookable bool
}

// HourOptions возвращает все предлагаемые стартовые часы (06..22) для даты
// с учетом выбранной длительности
func (e *Engine) HourOptions(date time.Time, durationHours int) []HourOption {
	options := make([]HourOption, 0, domain.LastBookableHour-domain.FirstBookableHour+1)
	for hour := domain.FirstBookableHour; hour <= domain.LastBookableHour; hour++ {
		options = append(options, HourOption{
			Hour:     hour,
			Bookable: e.IsSlotBookable(date, hour, durationHours),
		})
	}
	return options
}

// DurationOption длительность в часах с признаком доступности
type DurationOption struct {
	DurationHours int
	Bookable      bool
}

// DurationOptions возвращает предлагаемые длительности {1,2,3,4} для выбранного часа
// Смена длительности может сделать ранее выбранный час недоступным —
// вызывающая сторона обязана перепроверить выбор через IsSlotBookable
func (e *Engine) DurationOptions(date time.Time, hour int) []DurationOption {
	options := make([]DurationOption, 0, len(domain.Durations))
	for _, d := range domain.Durations {
		options = append(options, DurationOption{
			DurationHours: d,
			Bookable:      e.IsSlotBookable(date, hour, d),
		})
	}
	return options
}
