package start_booking

import (
	"context"
	"time"

	"github.com/m04kA/CourtEase-BookingService/internal/domain"
	"github.com/m04kA/CourtEase-BookingService/internal/integrations/midtrans"
	"github.com/m04kA/CourtEase-BookingService/internal/integrations/profileservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	ListActiveIntervals(ctx context.Context, courtID int64, from time.Time) ([]domain.Interval, error)
	UpdatePaymentMetadata(ctx context.Context, id int64, token string, redirectURL *string, expiresAt time.Time) error
	Cancel(ctx context.Context, id int64) error
}

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
}

// PaymentGateway интерфейс платёжного шлюза
type PaymentGateway interface {
	CreateSession(ctx context.Context, req *midtrans.SessionRequest) (*midtrans.Session, error)
}

// ProfileServiceClient интерфейс клиента для ProfileService
type ProfileServiceClient interface {
	GetProfileWithGracefulDegradation(ctx context.Context, userID int64) (*profileservice.Profile, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
