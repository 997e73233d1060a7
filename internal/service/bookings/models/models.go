package models

import (
	"errors"
	"time"

	"github.com/m04kA/CourtEase-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID int64 `json:"userId"`
}

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"` // Фильтр по статусу (опционально)
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            int64  `json:"id"`
	CourtID       int64  `json:"courtId"`
	UserID        int64  `json:"userId"`
	StartTime     string `json:"startTime"` // ISO 8601
	EndTime       string `json:"endTime"`   // ISO 8601
	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`
	PriceTotal    int64  `json:"priceTotal"`

	Notes *string `json:"notes,omitempty"`

	// Платёжные метаданные; заполнены, пока платёжная сессия актуальна
	PaymentReference   string  `json:"paymentReference"`
	PaymentRedirectURL *string `json:"paymentRedirectUrl,omitempty"`
	PaymentExpiresAt   *string `json:"paymentExpiresAt,omitempty"` // ISO 8601

	CancelledAt *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// IntervalResponse занятый интервал корта
type IntervalResponse struct {
	StartTime string `json:"startTime"` // ISO 8601
	EndTime   string `json:"endTime"`   // ISO 8601
}

// CourtAvailabilityResponse ответ с занятыми интервалами корта
type CourtAvailabilityResponse struct {
	CourtID      int64              `json:"courtId"`
	CourtName    string             `json:"courtName"`
	PricePerHour float64            `json:"pricePerHour"`
	HorizonEnd   string             `json:"horizonEnd"` // ISO 8601
	Booked       []IntervalResponse `json:"booked"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		CourtID:            b.CourtID,
		UserID:             b.UserID,
		StartTime:          b.StartTime.Format(time.RFC3339),
		EndTime:            b.EndTime.Format(time.RFC3339),
		Status:             string(b.Status),
		PaymentStatus:      string(b.PaymentStatus),
		PriceTotal:         b.PriceTotal,
		Notes:              b.Notes,
		PaymentReference:   b.PaymentReference,
		PaymentRedirectURL: b.PaymentRedirectURL,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if b.PaymentExpiresAt != nil {
		expiresStr := b.PaymentExpiresAt.Format(time.RFC3339)
		resp.PaymentExpiresAt = &expiresStr
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// FromDomainIntervals конвертирует занятые интервалы в DTO
func FromDomainIntervals(intervals []domain.Interval) []IntervalResponse {
	resp := make([]IntervalResponse, len(intervals))
	for i, interval := range intervals {
		resp[i] = IntervalResponse{
			StartTime: interval.Start.Format(time.RFC3339),
			EndTime:   interval.End.Format(time.RFC3339),
		}
	}
	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	// Валидируем статус
	validStatuses := []domain.BookingStatus{
		domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusCheckedIn,
		domain.StatusCompleted,
		domain.StatusCancelled,
		domain.StatusRefunded,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
