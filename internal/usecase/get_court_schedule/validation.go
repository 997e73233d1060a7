package get_court_schedule

import (
	"fmt"

	"github.com/m04kA/CourtEase-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CourtID <= 0 {
		return fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}

	if req.Month.IsZero() {
		return fmt.Errorf("%w: month is required", ErrInvalidInput)
	}

	if req.DurationHours < domain.MinDurationHours || req.DurationHours > domain.MaxDurationHours {
		return fmt.Errorf("%w: durationHours must be between %d and %d",
			ErrInvalidInput, domain.MinDurationHours, domain.MaxDurationHours)
	}

	if req.Hour != nil {
		if req.Date == nil {
			return fmt.Errorf("%w: hour requires a selected date", ErrInvalidInput)
		}
		if *req.Hour < domain.FirstBookableHour || *req.Hour > domain.LastBookableHour {
			return fmt.Errorf("%w: hour must be between %d and %d",
				ErrInvalidInput, domain.FirstBookableHour, domain.LastBookableHour)
		}
	}

	return nil
}
