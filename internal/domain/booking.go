package domain

import "time"

// BookingStatus статус жизненного цикла бронирования
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCheckedIn BookingStatus = "checked_in"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
	StatusRefunded  BookingStatus = "refunded"
)

// PaymentStatus статус оплаты бронирования
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentPaid      PaymentStatus = "paid"
	PaymentCancelled PaymentStatus = "cancelled"
	PaymentExpired   PaymentStatus = "expired"
	PaymentRefunded  PaymentStatus = "refunded"
)

// Booking бронирование корта с платёжным жизненным циклом
type Booking struct {
	ID        int64
	CourtID   int64
	UserID    int64
	StartTime time.Time
	EndTime   time.Time

	Status        BookingStatus
	PaymentStatus PaymentStatus

	// PriceTotal итоговая цена в целых единицах валюты (рупии), всегда > 0
	PriceTotal int64
	Notes      *string

	// Платёжные метаданные Midtrans Snap
	PaymentReference   string
	PaymentToken       *string
	PaymentRedirectURL *string
	PaymentExpiresAt   *time.Time

	CancelledAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HoldsSlot сообщает, удерживает ли бронирование свой временной слот
// Отменённые и возвращённые бронирования слот не держат
func (b *Booking) HoldsSlot() bool {
	return b.Status != StatusCancelled && b.Status != StatusRefunded
}

// CanBeCancelled сообщает, может ли пользователь ещё отменить бронирование
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled сообщает, отменено ли бронирование (включая возврат средств)
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled || b.Status == StatusRefunded
}

// Interval возвращает занятый интервал бронирования
func (b *Booking) Interval() Interval {
	return Interval{Start: b.StartTime, End: b.EndTime}
}
