package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/CourtEase-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/CourtEase-BookingService/internal/infra/storage/booking"
	courtRepo "github.com/m04kA/CourtEase-BookingService/internal/infra/storage/court"
	"github.com/m04kA/CourtEase-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	courtRepo    CourtRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	courtRepo CourtRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		courtRepo:    courtRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
// Проверяет права доступа - пользователь может видеть только своё бронирование
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if booking.UserID != userID {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	// Конвертируем статус из строки в domain.BookingStatus
	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// GetCourtAvailability получает занятые интервалы корта начиная с сегодняшнего дня
// Снимок отдаётся клиентам как есть: вычисление доступности слотов на его основе
// делает движок доступности, а не хранилище
func (s *Service) GetCourtAvailability(ctx context.Context, courtID int64) (*models.CourtAvailabilityResponse, error) {
	s.logger.Info("GetCourtAvailability: fetching availability for court=%d", courtID)

	court, err := s.courtRepo.GetByID(ctx, courtID)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			s.logger.Warn("GetCourtAvailability: court id=%d not found", courtID)
			return nil, ErrCourtNotFound
		}
		s.logger.Error("GetCourtAvailability: repository error for court id=%d: %v", courtID, err)
		return nil, fmt.Errorf("%w: GetCourtAvailability - repository error: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	intervals, err := s.bookingRepo.ListActiveIntervals(ctx, courtID, from)
	if err != nil {
		s.logger.Error("GetCourtAvailability: repository error for court id=%d: %v", courtID, err)
		return nil, fmt.Errorf("%w: GetCourtAvailability - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCourtAvailability: successfully fetched %d intervals for court=%d", len(intervals), courtID)
	return &models.CourtAvailabilityResponse{
		CourtID:      court.ID,
		CourtName:    court.Name,
		PricePerHour: court.PricePerHour,
		HorizonEnd:   domain.HorizonEnd(now).Format(time.RFC3339),
		Booked:       models.FromDomainIntervals(intervals),
	}, nil
}

// Cancel отменяет бронирование
// Пользователь может отменить только своё бронирование
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	// Получаем бронирование
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if booking.UserID != req.UserID {
		s.logger.Warn("Cancel: access denied for user=%d to cancel booking id=%d", req.UserID, bookingID)
		return ErrAccessDenied
	}

	// Проверяем, можно ли отменить бронирование
	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	// Отменяем бронирование
	if err := s.bookingRepo.Cancel(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// ExpireStalePending отменяет зависшие pending бронирования с истёкшей
// платёжной сессией. Возвращает количество отменённых записей
//
// Подстраховка для компенсации: если перевод в cancelled после ошибки шлюза
// не удался, бронирование рано или поздно попадёт сюда и освободит слот
func (s *Service) ExpireStalePending(ctx context.Context) (int64, error) {
	now := s.timeProvider.Now()
	s.logger.Info("ExpireStalePending: expiring stale pending bookings older than %s", now.Format(time.RFC3339))

	expired, err := s.bookingRepo.CancelStalePending(ctx, now)
	if err != nil {
		s.logger.Error("ExpireStalePending: repository error: %v", err)
		return 0, fmt.Errorf("%w: ExpireStalePending - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ExpireStalePending: successfully expired %d bookings", expired)
	return expired, nil
}
