package midtrans

import "fmt"

// Customer данные плательщика для платёжной сессии (best-effort)
type Customer struct {
	FirstName string
	Email     string
}

// SessionRequest параметры создания платёжной сессии Snap
type SessionRequest struct {
	// Reference уникальная платёжная ссылка попытки бронирования (order_id в Midtrans)
	Reference string
	// Amount сумма в целых единицах валюты
	Amount int64
	// CourtName название корта для описания позиции в чеке
	CourtName string
	// RedirectURL куда вернуть пользователя после оплаты
	RedirectURL string
	Customer    Customer
}

// Session созданная платёжная сессия
type Session struct {
	// Token Snap-токен для виджета оплаты
	Token string
	// RedirectURL ссылка на hosted-страницу оплаты (может быть пустой)
	RedirectURL string
}

// GatewayError ошибка платёжного шлюза с его собственным текстом
// Текст шлюза показывается пользователю, если он есть
type GatewayError struct {
	StatusCode int
	Message    string
}

// Error возвращает текст ошибки
func (e *GatewayError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("midtrans: gateway error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("midtrans: gateway error: %s", e.Message)
}
