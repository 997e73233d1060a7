package start_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/CourtEase-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/CourtEase-BookingService/internal/infra/storage/booking"
	courtRepo "github.com/m04kA/CourtEase-BookingService/internal/infra/storage/court"
	midtransClient "github.com/m04kA/CourtEase-BookingService/internal/integrations/midtrans"
	"github.com/m04kA/CourtEase-BookingService/internal/pricing"
	"github.com/m04kA/CourtEase-BookingService/pkg/metrics"
)

// UseCase use case создания бронирования с инициацией оплаты
//
// Машина состояний попытки бронирования:
//
//	Requested → Validated → Persisted(pending) → PaymentInitiated(pending) → Succeeded
//	Requested → Validated → Persisted(pending) → PaymentFailed → Compensated(cancelled)
//
// Любая ошибка до Persisted прерывает операцию без записи — компенсация не нужна.
// Ошибка платёжного шлюза после Persisted всегда компенсируется переводом
// бронирования в cancelled/cancelled: запись не удаляется, история сохраняется
type UseCase struct {
	bookingRepo     BookingRepository
	courtRepo       CourtRepository
	gateway         PaymentGateway
	profileClient   ProfileServiceClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
	redirectBaseURL string

	// metrics опционально (nil = метрики выключены)
	metrics *metrics.Metrics
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepository BookingRepository,
	courtRepository CourtRepository,
	gateway PaymentGateway,
	profileClient ProfileServiceClient,
	txManager TransactionManager,
	redirectBaseURL string,
	metricsCollector *metrics.Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:     bookingRepository,
		courtRepo:       courtRepository,
		gateway:         gateway,
		profileClient:   profileClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
		redirectBaseURL: redirectBaseURL,
		metrics:         metricsCollector,
	}
}

// Execute выполняет use case создания бронирования с оплатой
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("StartBooking: user=%d, court=%d, start=%s, end=%s",
		req.UserID, req.CourtID, req.StartTime.Format(time.RFC3339), req.EndTime.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("StartBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время и горизонт бронирования
	now := uc.timeProvider.Now()
	horizonEnd := domain.HorizonEnd(now)

	// 3. Получаем корт
	court, err := uc.courtRepo.GetByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.logger.Warn("StartBooking: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("StartBooking: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	// 4. Валидация интервала против "сейчас" и горизонта
	// Те же границы, что в движке доступности — сервер авторитетен
	if err := validateDateRange(req.StartTime, req.EndTime, now, horizonEnd); err != nil {
		uc.logger.Warn("StartBooking: date range validation failed: %v", err)
		return nil, err
	}

	// 5. Считаем стоимость по фактической длительности
	priceTotal, err := pricing.Calculate(court.PricePerHour, req.StartTime, req.EndTime)
	if err != nil {
		if errors.Is(err, pricing.ErrPriceNotConfigured) {
			uc.logger.Warn("StartBooking: price not configured for court id=%d", req.CourtID)
			return nil, ErrPriceNotConfigured
		}
		uc.logger.Error("StartBooking: failed to calculate price for court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to calculate price: %v", ErrInternal, err)
	}

	// 6. Получаем профиль пользователя для платёжной сессии (best-effort)
	profile, err := uc.profileClient.GetProfileWithGracefulDegradation(ctx, req.UserID)
	if err != nil {
		// Любая ошибка профиля не блокирует бронирование
		profile = nil
	}

	// 7. Создаем бронирование в сериализуемой транзакции:
	// проверка пересечений и вставка должны быть атомарны
	candidate := domain.Interval{Start: req.StartTime, End: req.EndTime}
	reference := newPaymentReference(now)

	var created *domain.Booking

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Занятые интервалы корта с блокировкой (FOR UPDATE)
		intervals, err := uc.bookingRepo.ListActiveIntervals(txCtx, req.CourtID, now)
		if err != nil {
			uc.logger.Error("StartBooking: failed to list active intervals for court id=%d: %v", req.CourtID, err)
			return fmt.Errorf("%w: failed to list active intervals: %v", ErrInternal, err)
		}

		// 7.2. Проверяем пересечение с каждым активным бронированием
		for _, booked := range intervals {
			if candidate.Overlaps(booked) {
				uc.logger.Warn("StartBooking: slot overlaps existing booking, court=%d, start=%s",
					req.CourtID, req.StartTime.Format(time.RFC3339))
				return ErrSlotNotAvailable
			}
		}

		// 7.3. Вставляем бронирование в статусе pending/pending
		booking := &domain.Booking{
			CourtID:          req.CourtID,
			UserID:           req.UserID,
			StartTime:        req.StartTime,
			EndTime:          req.EndTime,
			Status:           domain.StatusPending,
			PaymentStatus:    domain.PaymentPending,
			PriceTotal:       priceTotal,
			Notes:            req.Notes,
			PaymentReference: reference,
		}

		created, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// Exclusion constraint в БД — авторитетная защита от гонки:
			// конкурентная вставка пересекающегося интервала даёт конфликт
			if errors.Is(err, bookingRepo.ErrSlotConflict) {
				uc.logger.Warn("StartBooking: slot conflict on insert, court=%d, start=%s",
					req.CourtID, req.StartTime.Format(time.RFC3339))
				return ErrSlotNotAvailable
			}
			uc.logger.Error("StartBooking: failed to create booking: court=%d, user=%d, price=%d: %v",
				req.CourtID, req.UserID, priceTotal, err)
			return fmt.Errorf("%w: %v", ErrBookingCreationFailed, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("StartBooking: booking id=%d persisted pending, reference=%s, price=%d",
		created.ID, reference, priceTotal)

	if uc.metrics != nil {
		uc.metrics.BookingsCreatedTotal.WithLabelValues(court.Name).Inc()
	}

	// 8. Открываем платёжную сессию у шлюза (вне транзакции — внешний I/O)
	session, err := uc.gateway.CreateSession(ctx, &midtransClient.SessionRequest{
		Reference:   reference,
		Amount:      priceTotal,
		CourtName:   court.Name,
		RedirectURL: fmt.Sprintf("%s/dashboard/user/bookings/%d", uc.redirectBaseURL, created.ID),
		Customer: midtransClient.Customer{
			FirstName: customerName(profile, req.UserEmail),
			Email:     customerEmail(profile, req.UserEmail),
		},
	})
	if err != nil {
		if uc.metrics != nil {
			uc.metrics.PaymentSessionsTotal.WithLabelValues("error").Inc()
		}
		// 8.1. Компенсация: шлюз не открыл сессию — переводим бронирование
		// в cancelled/cancelled, чтобы оно не зависло pending без платежа
		uc.compensate(ctx, created.ID, court.Name)
		// Оборачиваем обе ошибки: код для ветвления и ошибка шлюза с сообщением
		return nil, fmt.Errorf("%w: %w", ErrPaymentInitiationFailed, err)
	}

	if uc.metrics != nil {
		uc.metrics.PaymentSessionsTotal.WithLabelValues("ok").Inc()
	}

	// 9. Сохраняем платёжные метаданные (best-effort):
	// сессия уже существует у шлюза и восстановима по reference,
	// поэтому ошибка записи метаданных операцию не роняет
	expiresAt := now.Add(domain.PaymentSessionTTL)

	var redirectURL *string
	if session.RedirectURL != "" {
		url := session.RedirectURL
		redirectURL = &url
	}

	if err := uc.bookingRepo.UpdatePaymentMetadata(ctx, created.ID, session.Token, redirectURL, expiresAt); err != nil {
		uc.logger.Error("StartBooking: failed to store payment metadata for booking id=%d (session recoverable by reference=%s): %v",
			created.ID, reference, err)
	}

	uc.logger.Info("StartBooking: successfully created booking id=%d with payment session", created.ID)

	return &Response{
		BookingID:     created.ID,
		CourtID:       created.CourtID,
		StartTime:     created.StartTime,
		EndTime:       created.EndTime,
		PriceTotal:    created.PriceTotal,
		Status:        string(created.Status),
		PaymentStatus: string(created.PaymentStatus),
		Payment: Payment{
			Token:       session.Token,
			RedirectURL: redirectURL,
			ExpiresAt:   expiresAt,
		},
	}, nil
}

// compensate переводит бронирование в cancelled/cancelled после ошибки шлюза
// Сама компенсация best-effort: если и она падает, бронирование остаётся
// pending без платёжной сессии — такое состояние не скрывается, а громко
// логируется как кейс для ручной реконсиляции (см. CancelStalePending)
func (uc *UseCase) compensate(ctx context.Context, bookingID int64, courtName string) {
	if err := uc.bookingRepo.Cancel(ctx, bookingID); err != nil {
		uc.logger.Error("StartBooking: RECONCILIATION REQUIRED - compensation failed, booking id=%d left pending without payment session: %v",
			bookingID, err)
		if uc.metrics != nil {
			uc.metrics.CompensationFailuresTotal.WithLabelValues(courtName).Inc()
		}
		return
	}
	uc.logger.Info("StartBooking: compensated booking id=%d -> cancelled/cancelled", bookingID)
	if uc.metrics != nil {
		uc.metrics.CompensationsTotal.WithLabelValues("ok").Inc()
	}
}

// newPaymentReference генерирует уникальную платёжную ссылку попытки
// Ссылка никогда не переиспользуется; уникальность обеспечивается UUID
func newPaymentReference(now time.Time) string {
	return fmt.Sprintf("BOOK-%d-%s", now.UnixMilli(), uuid.NewString())
}
