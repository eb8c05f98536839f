package requestresponse

// LoginRequest : тело запроса на аутентификацию
type LoginRequest struct {
	Email    string `json:"email" example:"user@example.com"`
	Password string `json:"password" example:"password123"`
}

// UserData : публичные данные пользователя
type UserData struct {
	UUID  string `json:"uuid" example:"b6a1e1c4-4b1d-4f1e-8b29-1234567890ab"`
	Email string `json:"email" example:"user@example.com"`
	Name  string `json:"name" example:"Test User"`
}

// LoginResponse : ответ на успешную аутентификацию.
// Refresh-токен в тело не попадает, он выставляется в HttpOnly cookie
type LoginResponse struct {
	Message     string   `json:"message" example:"вход выполнен"`
	AccessToken string   `json:"accessToken" example:"eyJhbGciOiJIUzUxMiIsInR5cCI6IkpXVCJ9..."`
	User        UserData `json:"user"`
}

// RefreshTokenResponse : ответ на успешную ротацию токенов
type RefreshTokenResponse struct {
	Message     string `json:"message" example:"токены обновлены"`
	AccessToken string `json:"accessToken" example:"eyJhbGciOiJIUzUxMiIsInR5cCI6IkpXVCJ9..."`
}

// LogoutResponse : подтверждение завершения сессии
type LogoutResponse struct {
	Message string `json:"message" example:"выход выполнен"`
}

// CurrentUserResponse : информация о текущем пользователе
type CurrentUserResponse struct {
	UUID  string `json:"uuid" example:"b6a1e1c4-4b1d-4f1e-8b29-1234567890ab"`
	Email string `json:"email" example:"user@example.com"`
	Name  string `json:"name" example:"Test User"`
}

// ErrorResponse : стандартная структура ошибки
type ErrorResponse struct {
	Error   string `json:"error" example:"Unauthorized"`
	Message string `json:"message" example:"не авторизован"`
	Code    string `json:"code,omitempty" example:"TOKEN_EXPIRED"`
}
