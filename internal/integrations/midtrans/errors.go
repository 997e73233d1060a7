package midtrans

import "errors"

var (
	// ErrEmptyToken возвращается, когда шлюз ответил успехом, но не вернул Snap-токен
	ErrEmptyToken = errors.New("midtrans client: gateway returned empty snap token")
)
