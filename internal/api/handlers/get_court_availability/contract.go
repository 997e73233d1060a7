package get_court_availability

import (
	"context"

	"github.com/m04kA/CourtEase-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetCourtAvailability(ctx context.Context, courtID int64) (*models.CourtAvailabilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
