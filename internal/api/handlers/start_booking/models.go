package start_booking

import (
	"time"

	startBooking "github.com/m04kA/CourtEase-BookingService/internal/usecase/start_booking"
)

// StartBookingRequest HTTP request model
type StartBookingRequest struct {
	CourtID   int64   `json:"courtId"`
	StartTime string  `json:"startTime"` // RFC 3339, например "2026-09-15T10:00:00+07:00"
	EndTime   string  `json:"endTime"`   // RFC 3339
	Notes     *string `json:"notes,omitempty"`
}

// PaymentResponse платёжная часть HTTP ответа
type PaymentResponse struct {
	Token       string  `json:"token"`
	RedirectURL *string `json:"redirectUrl,omitempty"`
	ExpiresAt   string  `json:"expiresAt"` // RFC 3339
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64           `json:"id"`
	CourtID       int64           `json:"courtId"`
	StartTime     string          `json:"startTime"`
	EndTime       string          `json:"endTime"`
	PriceTotal    int64           `json:"priceTotal"`
	Status        string          `json:"status"`
	PaymentStatus string          `json:"paymentStatus"`
	Payment       PaymentResponse `json:"payment"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом времени)
func (r *StartBookingRequest) ToUseCaseRequest(userID int64, userEmail string) (*startBooking.Request, error) {
	startTime, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return nil, err
	}

	return &startBooking.Request{
		UserID:    userID,
		UserEmail: userEmail,
		CourtID:   r.CourtID,
		StartTime: startTime,
		EndTime:   endTime,
		Notes:     r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *startBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.BookingID,
		CourtID:       resp.CourtID,
		StartTime:     resp.StartTime.Format(time.RFC3339),
		EndTime:       resp.EndTime.Format(time.RFC3339),
		PriceTotal:    resp.PriceTotal,
		Status:        resp.Status,
		PaymentStatus: resp.PaymentStatus,
		Payment: PaymentResponse{
			Token:       resp.Payment.Token,
			RedirectURL: resp.Payment.RedirectURL,
			ExpiresAt:   resp.Payment.ExpiresAt.Format(time.RFC3339),
		},
	}
}
