// Package middleware HTTP middleware сервиса: аутентификация и метрики
package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/CourtEase-BookingService/internal/api/handlers"
)

// Заголовки аутентификации, проставляемые API-шлюзом
const (
	HeaderUserID    = "X-User-ID"
	HeaderUserEmail = "X-User-Email"
)

const msgUnauthorized = "требуется аутентификация"

type userIDKey struct{}
type userEmailKey struct{}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Auth проверяет заголовки аутентификации и кладет идентификатор
// пользователя в контекст запроса. Запросы без валидного X-User-ID
// отклоняются с 401 до вызова обработчика
func Auth(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rawID := r.Header.Get(HeaderUserID)
			if rawID == "" {
				logger.Warn("%s %s - missing %s header", r.Method, r.URL.Path, HeaderUserID)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			userID, err := strconv.ParseInt(rawID, 10, 64)
			if err != nil || userID <= 0 {
				logger.Warn("%s %s - invalid %s header: %q", r.Method, r.URL.Path, HeaderUserID, rawID)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey{}, userID)
			if email := r.Header.Get(HeaderUserEmail); email != "" {
				ctx = context.WithValue(ctx, userEmailKey{}, email)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserID возвращает идентификатор пользователя из контекста запроса
func GetUserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey{}).(int64)
	return id, ok
}

// GetUserEmail возвращает email пользователя из контекста запроса (может быть пустым)
func GetUserEmail(ctx context.Context) string {
	email, _ := ctx.Value(userEmailKey{}).(string)
	return email
}
