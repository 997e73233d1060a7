package start_booking

import "time"

// Request модель запроса на создание бронирования с оплатой
type Request struct {
	UserID    int64     // ID пользователя (из заголовков аутентификации)
	UserEmail string    // Email пользователя (может быть пустым)
	CourtID   int64     // ID корта
	StartTime time.Time // Начало бронирования
	EndTime   time.Time // Конец бронирования
	Notes     *string   // Дополнительные заметки (опционально)
}

// Payment платёжная часть ответа
type Payment struct {
	Token       string    // Snap-токен для виджета оплаты
	RedirectURL *string   // Ссылка на hosted-страницу оплаты (опционально)
	ExpiresAt   time.Time // Истечение платёжной сессии (создание + 3 часа)
}

// Response модель ответа с созданным бронированием и платёжной сессией
type Response struct {
	BookingID     int64
	CourtID       int64
	StartTime     time.Time
	EndTime       time.Time
	PriceTotal    int64
	Status        string
	PaymentStatus string
	Payment       Payment
}
