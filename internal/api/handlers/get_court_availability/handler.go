package get_court_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/CourtEase-BookingService/internal/api/handlers"
	"github.com/m04kA/CourtEase-BookingService/internal/service/bookings"
)

const (
	msgInvalidCourtID = "некорректный идентификатор корта"
	msgCourtNotFound  = "корт не найден"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/courts/{courtId}/availability
// Отдает снимок занятых интервалов корта начиная с сегодняшнего дня
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	courtID, err := strconv.ParseInt(mux.Vars(r)["courtId"], 10, 64)
	if err != nil || courtID <= 0 {
		h.logger.Warn("GET /courts/{courtId}/availability - Invalid court id: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, msgInvalidCourtID)
		return
	}

	result, err := h.service.GetCourtAvailability(r.Context(), courtID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrCourtNotFound):
			h.logger.Warn("GET /courts/%d/availability - Court not found", courtID)
			handlers.RespondNotFound(w, handlers.CodeCourtNotFound, msgCourtNotFound)

		default:
			h.logger.Error("GET /courts/%d/availability - Failed to fetch availability: %v", courtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /courts/%d/availability - Availability fetched successfully", courtID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
