package start_booking

import "errors"

var (
	// ErrCourtNotFound возвращается, когда корт не найден или неактивен
	ErrCourtNotFound = errors.New("start_booking: court not found")

	// ErrPastDate возвращается, когда начало бронирования в прошлом
	ErrPastDate = errors.New("start_booking: start time is in the past")

	// ErrFutureDateLimit возвращается, когда начало бронирования за горизонтом 3 месяцев
	ErrFutureDateLimit = errors.New("start_booking: start time is beyond the booking horizon")

	// ErrInvalidDateRange возвращается, когда конец бронирования не позже начала
	ErrInvalidDateRange = errors.New("start_booking: end time must be after start time")

	// ErrDurationLimit возвращается, когда конец бронирования выходит за горизонт
	ErrDurationLimit = errors.New("start_booking: booking duration exceeds the allowed window")

	// ErrPriceNotConfigured возвращается, когда цена корта не настроена
	ErrPriceNotConfigured = errors.New("start_booking: court price is not configured")

	// ErrSlotNotAvailable возвращается, когда выбранный интервал пересекается
	// с активным бронированием (в т.ч. при конкурентной гонке за слот)
	ErrSlotNotAvailable = errors.New("start_booking: slot is not available")

	// ErrBookingCreationFailed возвращается, когда запись бронирования не создана
	// Фатально для всей операции: компенсировать нечего
	ErrBookingCreationFailed = errors.New("start_booking: failed to create booking")

	// ErrPaymentInitiationFailed возвращается при ошибке платёжного шлюза
	// Бронирование к этому моменту уже создано и переводится в cancelled/cancelled
	ErrPaymentInitiationFailed = errors.New("start_booking: failed to initiate payment")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("start_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("start_booking: internal error")
)
