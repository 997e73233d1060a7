package domain

import "time"

// Политика бронирования: единая для всех кортов
const (
	// Окно предложения слотов: стартовые часы с 06:00 по 22:00 включительно
	FirstBookableHour = 6
	LastBookableHour  = 22

	// Допустимые длительности бронирования в часах
	MinDurationHours = 1
	MaxDurationHours = 4

	// Горизонт бронирования: не дальше чем сегодня + 3 месяца (конец дня)
	BookingHorizonMonths = 3

	// Время жизни платёжной сессии Midtrans
	PaymentSessionTTL = 3 * time.Hour

	MaxNotesLength = 500
)

// Time format constants
const (
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)

// Durations список предлагаемых длительностей в часах
var Durations = []int{1, 2, 3, 4}

// InactiveStatuses статусы бронирований, не удерживающих слот
// Используются для фильтрации при проверке доступности
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusRefunded,
}

// ActiveStatuses статусы бронирований, удерживающих слот
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCheckedIn,
	StatusCompleted,
}

// HorizonEnd возвращает конец горизонта бронирования: сегодня + 3 месяца, конец дня
func HorizonEnd(now time.Time) time.Time {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	limit := day.AddDate(0, BookingHorizonMonths, 0)
	return time.Date(limit.Year(), limit.Month(), limit.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), limit.Location())
}
