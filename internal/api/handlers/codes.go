package handlers

// Машиночитаемые коды ошибок API
// Коды стабильны: клиенты ветвятся по ним, а не по текстам сообщений
const (
	CodeUnauthorized  = "UNAUTHORIZED"
	CodeAccessDenied  = "ACCESS_DENIED"
	CodeInternalError = "INTERNAL_ERROR"

	CodeCourtNotFound   = "COURT_NOT_FOUND"
	CodeBookingNotFound = "BOOKING_NOT_FOUND"

	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeInvalidDate      = "INVALID_DATE"
	CodePastDate         = "PAST_DATE"
	CodeFutureDateLimit  = "FUTURE_DATE_LIMIT"
	CodeInvalidDateRange = "INVALID_DATE_RANGE"
	CodeDurationLimit    = "DURATION_LIMIT"

	CodePriceNotConfigured      = "PRICE_NOT_CONFIGURED"
	CodeSlotConflict            = "SLOT_CONFLICT"
	CodeBookingCreationFailed   = "BOOKING_CREATION_FAILED"
	CodePaymentInitiationFailed = "PAYMENT_INITIATION_FAILED"
	CodeCannotCancel            = "CANNOT_CANCEL"
)
