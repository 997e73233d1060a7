package get_court_schedule

import (
	"context"

	getCourtSchedule "github.com/m04kA/CourtEase-BookingService/internal/usecase/get_court_schedule"
)

type GetCourtScheduleUseCase interface {
	Execute(ctx context.Context, req *getCourtSchedule.Request) (*getCourtSchedule.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
