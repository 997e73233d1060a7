package profileservice

// Profile профиль пользователя из ProfileService
type Profile struct {
	ID       int64   `json:"id"`
	FullName *string `json:"full_name"`
	Email    *string `json:"email"`
}

// ErrorResponse модель ошибки от ProfileService
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
