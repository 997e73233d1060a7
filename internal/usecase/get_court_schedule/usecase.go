package get_court_schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/CourtEase-BookingService/internal/availability"
	courtRepo "github.com/m04kA/CourtEase-BookingService/internal/infra/storage/court"
)

// UseCase use case получения расписания корта: календарная сетка месяца
// плюс опции стартовых часов и длительностей для выбранного дня
type UseCase struct {
	bookingRepo  BookingRepository
	courtRepo    CourtRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepository BookingRepository,
	courtRepository CourtRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepository,
		courtRepo:    courtRepository,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения расписания корта
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCourtSchedule: court=%d, month=%s", req.CourtID, req.Month.Format("2006-01"))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetCourtSchedule: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем корт
	court, err := uc.courtRepo.GetByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.logger.Warn("GetCourtSchedule: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("GetCourtSchedule: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	// 3. Снимок занятых интервалов начиная с начала сегодняшнего дня
	// Интервалы, закончившиеся до сегодня, на доступность не влияют
	now := uc.timeProvider.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	intervals, err := uc.bookingRepo.ListActiveIntervals(ctx, req.CourtID, from)
	if err != nil {
		uc.logger.Error("GetCourtSchedule: failed to list active intervals for court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to list active intervals: %v", ErrInternal, err)
	}

	// 4. Считаем сетку и опции на едином снимке занятости
	engine := availability.New(now, intervals)

	resp := &Response{
		CourtID:    court.ID,
		CourtName:  court.Name,
		Month:      req.Month,
		HorizonEnd: engine.HorizonEnd(),
		Grid:       engine.BuildCalendarGrid(req.Month),
	}

	if req.Date != nil {
		resp.Hours = engine.HourOptions(*req.Date, req.DurationHours)

		if req.Hour != nil {
			resp.Durations = engine.DurationOptions(*req.Date, *req.Hour)
		}
	}

	uc.logger.Info("GetCourtSchedule: successfully built schedule for court id=%d", req.CourtID)

	return resp, nil
}
