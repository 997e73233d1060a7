package expire_stale_bookings

import "context"

type BookingService interface {
	ExpireStalePending(ctx context.Context) (int64, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
