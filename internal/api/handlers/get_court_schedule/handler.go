package get_court_schedule

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/CourtEase-BookingService/internal/api/handlers"
	"github.com/m04kA/CourtEase-BookingService/internal/domain"
	getCourtSchedule "github.com/m04kA/CourtEase-BookingService/internal/usecase/get_court_schedule"
)

const (
	msgInvalidCourtID  = "некорректный идентификатор корта"
	msgInvalidMonth    = "некорректный формат месяца, ожидается YYYY-MM"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidHour     = "некорректный стартовый час"
	msgInvalidDuration = "некорректная длительность"
	msgCourtNotFound   = "корт не найден"
)

// defaultDurationHours длительность по умолчанию для расчета стартовых часов
const defaultDurationHours = 2

type Handler struct {
	useCase GetCourtScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetCourtScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/courts/{courtId}/schedule
//
// Query параметры:
//   - month    отображаемый месяц YYYY-MM (по умолчанию текущий)
//   - date     выбранная дата YYYY-MM-DD для списка стартовых часов
//   - hour     выбранный час для списка длительностей (требует date)
//   - duration выбранная длительность в часах (по умолчанию 2)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	courtID, err := strconv.ParseInt(mux.Vars(r)["courtId"], 10, 64)
	if err != nil || courtID <= 0 {
		h.logger.Warn("GET /courts/{courtId}/schedule - Invalid court id: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, msgInvalidCourtID)
		return
	}

	query := r.URL.Query()

	month := time.Now()
	if rawMonth := query.Get("month"); rawMonth != "" {
		month, err = time.Parse(domain.MonthFormat, rawMonth)
		if err != nil {
			h.logger.Warn("GET /courts/%d/schedule - Invalid month: %q", courtID, rawMonth)
			handlers.RespondBadRequest(w, handlers.CodeInvalidDate, msgInvalidMonth)
			return
		}
	}

	req := &getCourtSchedule.Request{
		CourtID:       courtID,
		Month:         month,
		DurationHours: defaultDurationHours,
	}

	if rawDate := query.Get("date"); rawDate != "" {
		date, err := time.Parse(domain.DateFormat, rawDate)
		if err != nil {
			h.logger.Warn("GET /courts/%d/schedule - Invalid date: %q", courtID, rawDate)
			handlers.RespondBadRequest(w, handlers.CodeInvalidDate, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	if rawHour := query.Get("hour"); rawHour != "" {
		hour, err := strconv.Atoi(rawHour)
		if err != nil {
			h.logger.Warn("GET /courts/%d/schedule - Invalid hour: %q", courtID, rawHour)
			handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, msgInvalidHour)
			return
		}
		req.Hour = &hour
	}

	if rawDuration := query.Get("duration"); rawDuration != "" {
		duration, err := strconv.Atoi(rawDuration)
		if err != nil {
			h.logger.Warn("GET /courts/%d/schedule - Invalid duration: %q", courtID, rawDuration)
			handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, msgInvalidDuration)
			return
		}
		req.DurationHours = duration
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getCourtSchedule.ErrCourtNotFound):
			h.logger.Warn("GET /courts/%d/schedule - Court not found", courtID)
			handlers.RespondNotFound(w, handlers.CodeCourtNotFound, msgCourtNotFound)

		case errors.Is(err, getCourtSchedule.ErrInvalidInput):
			h.logger.Warn("GET /courts/%d/schedule - Invalid input: %v", courtID, err)
			handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, err.Error())

		default:
			h.logger.Error("GET /courts/%d/schedule - Failed to build schedule: %v", courtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /courts/%d/schedule - Schedule built successfully", courtID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
