package start_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/CourtEase-BookingService/internal/domain"
	"github.com/m04kA/CourtEase-BookingService/internal/integrations/profileservice"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.CourtID <= 0 {
		return fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if req.EndTime.IsZero() {
		return fmt.Errorf("%w: endTime is required", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDateRange проверяет интервал бронирования против "сейчас" и горизонта
//
// Здесь намеренно те же границы, что использует движок доступности на клиенте:
// клиентская проверка — лишь подсказка для UX, авторитетное решение за сервером
func validateDateRange(start, end, now, horizonEnd time.Time) error {
	if start.Before(now) {
		return ErrPastDate
	}

	if start.After(horizonEnd) {
		return ErrFutureDateLimit
	}

	if !end.After(start) {
		return ErrInvalidDateRange
	}

	if end.After(horizonEnd) {
		return ErrDurationLimit
	}

	return nil
}

// defaultCustomerName имя плательщика по умолчанию, когда профиль недоступен
const defaultCustomerName = "CourtEase User"

// customerName выбирает отображаемое имя плательщика:
// полное имя из профиля → локальная часть email → дефолт
func customerName(profile *profileservice.Profile, email string) string {
	if profile != nil && profile.FullName != nil && strings.TrimSpace(*profile.FullName) != "" {
		return strings.TrimSpace(*profile.FullName)
	}

	if at := strings.IndexByte(email, '@'); at > 0 {
		return email[:at]
	}

	return defaultCustomerName
}

// customerEmail выбирает email плательщика: профиль → заголовок запроса
func customerEmail(profile *profileservice.Profile, email string) string {
	if profile != nil && profile.Email != nil && *profile.Email != "" {
		return *profile.Email
	}
	return email
}
