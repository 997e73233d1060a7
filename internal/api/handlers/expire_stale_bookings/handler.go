package expire_stale_bookings

import (
	"net/http"

	"github.com/m04kA/CourtEase-BookingService/internal/api/handlers"
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

// ExpireStaleResponse HTTP response model
type ExpireStaleResponse struct {
	Expired int64 `json:"expired"`
}

// Handle POST /api/v1/internal/bookings/expire-stale
// Внутренний эндпоинт для планировщика: отменяет pending бронирования
// с истёкшей платёжной сессией
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	expired, err := h.service.ExpireStalePending(r.Context())
	if err != nil {
		h.logger.Error("POST /internal/bookings/expire-stale - Failed to expire stale bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /internal/bookings/expire-stale - Expired %d stale bookings", expired)
	handlers.RespondJSON(w, http.StatusOK, ExpireStaleResponse{Expired: expired})
}
