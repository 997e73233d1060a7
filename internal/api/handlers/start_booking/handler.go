package start_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/CourtEase-BookingService/internal/api/handlers"
	"github.com/m04kA/CourtEase-BookingService/internal/api/middleware"
	"github.com/m04kA/CourtEase-BookingService/internal/integrations/midtrans"
	startBooking "github.com/m04kA/CourtEase-BookingService/internal/usecase/start_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат времени, ожидается RFC 3339"
	msgCourtNotFound      = "корт не найден"
	msgPastDate           = "время начала бронирования уже прошло"
	msgFutureDateLimit    = "бронирование доступно не более чем на 3 месяца вперёд"
	msgInvalidDateRange   = "время окончания должно быть позже времени начала"
	msgDurationLimit      = "длительность бронирования выходит за допустимый период"
	msgPriceNotConfigured = "цена корта не настроена"
	msgSlotConflict       = "выбранный временной слот уже занят"
	msgBookingFailed      = "не удалось создать бронирование"
	msgPaymentFailed      = "не удалось инициировать оплату"
)

type Handler struct {
	useCase StartBookingUseCase
	logger  Logger
}

func NewHandler(useCase StartBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user identity in context")
		handlers.RespondUnauthorized(w, "требуется аутентификация")
		return
	}

	var req StartBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом времени)
	useCaseReq, err := req.ToUseCaseRequest(userID, middleware.GetUserEmail(r.Context()))
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeInvalidDate, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, startBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: user_id=%d, court_id=%d", userID, req.CourtID)
			handlers.RespondError(w, http.StatusConflict, handlers.CodeSlotConflict, msgSlotConflict)

		case errors.Is(err, startBooking.ErrCourtNotFound):
			h.logger.Warn("POST /bookings - Court not found: court_id=%d", req.CourtID)
			handlers.RespondNotFound(w, handlers.CodeCourtNotFound, msgCourtNotFound)

		case errors.Is(err, startBooking.ErrPastDate):
			h.logger.Warn("POST /bookings - Start time in the past: user_id=%d, court_id=%d", userID, req.CourtID)
			handlers.RespondBadRequest(w, handlers.CodePastDate, msgPastDate)

		case errors.Is(err, startBooking.ErrFutureDateLimit):
			h.logger.Warn("POST /bookings - Start time beyond horizon: user_id=%d, court_id=%d", userID, req.CourtID)
			handlers.RespondBadRequest(w, handlers.CodeFutureDateLimit, msgFutureDateLimit)

		case errors.Is(err, startBooking.ErrInvalidDateRange):
			h.logger.Warn("POST /bookings - Invalid date range: user_id=%d, court_id=%d", userID, req.CourtID)
			handlers.RespondBadRequest(w, handlers.CodeInvalidDateRange, msgInvalidDateRange)

		case errors.Is(err, startBooking.ErrDurationLimit):
			h.logger.Warn("POST /bookings - Duration limit exceeded: user_id=%d, court_id=%d", userID, req.CourtID)
			handlers.RespondBadRequest(w, handlers.CodeDurationLimit, msgDurationLimit)

		case errors.Is(err, startBooking.ErrPriceNotConfigured):
			h.logger.Warn("POST /bookings - Price not configured: court_id=%d", req.CourtID)
			handlers.RespondBadRequest(w, handlers.CodePriceNotConfigured, msgPriceNotConfigured)

		case errors.Is(err, startBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, court_id=%d: %v", userID, req.CourtID, err)
			handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, msgInvalidRequestBody)

		case errors.Is(err, startBooking.ErrBookingCreationFailed):
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, court_id=%d, error=%v",
				userID, req.CourtID, err)
			handlers.RespondError(w, http.StatusInternalServerError, handlers.CodeBookingCreationFailed, msgBookingFailed)

		case errors.Is(err, startBooking.ErrPaymentInitiationFailed):
			h.logger.Error("POST /bookings - Failed to initiate payment: user_id=%d, court_id=%d, error=%v",
				userID, req.CourtID, err)
			// Сообщение шлюза пробрасываем клиенту: оно объясняет причину отказа
			message := msgPaymentFailed
			var gatewayErr *midtrans.GatewayError
			if errors.As(err, &gatewayErr) && gatewayErr.Message != "" {
				message = gatewayErr.Message
			}
			handlers.RespondError(w, http.StatusBadGateway, handlers.CodePaymentInitiationFailed, message)

		default:
			h.logger.Error("POST /bookings - Failed to start booking: user_id=%d, court_id=%d, error=%v",
				userID, req.CourtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, court_id=%d",
		result.BookingID, userID, req.CourtID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
