package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"hybrid-auth-server/config"
	"hybrid-auth-server/internal/model/requestresponse"
	"hybrid-auth-server/internal/ports"
	"hybrid-auth-server/internal/security"
)

type AuthenticationHandler struct {
	ports.AuthenticationService
	cookieConfig *config.CookieConfig
	refreshTTL   time.Duration
}

func NewAuthenticationHandler(
	authenticationService ports.AuthenticationService,
	cfg *config.AppConfig,
) (*AuthenticationHandler, error) {
	refreshTTL, err := time.ParseDuration(cfg.JWT.RefreshTokenTTL)
	if err != nil {
		return nil, err
	}

	return &AuthenticationHandler{
		authenticationService,
		&cfg.Cookie,
		refreshTTL,
	}, nil
}

// Login godoc
// @Summary Аутентификация пользователя
// @Description Получение access токена по email и паролю. Refresh токен выставляется в HttpOnly cookie
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.LoginRequest true "Тело запроса" example({"email": "user@example.com", "password": "password123"})
// @Success 200 {object} requestresponse.LoginResponse "Успешная аутентификация"
// @Failure 400 {object} requestresponse.ErrorResponse "Некорректный JSON или пустые поля"
// @Failure 401 {object} requestresponse.ErrorResponse "Неверный логин или пароль"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/login [post]
func (h *AuthenticationHandler) Login(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	var req requestresponse.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendErrorResponse(w, 400, "некорректный JSON")
		return
	}

	if req.Email == "" || req.Password == "" {
		sendErrorResponse(w, 400, "email и password обязательны")
		return
	}

	tokens, user, err := h.AuthenticationService.Login(ctx, req.Email, req.Password)
	if err != nil {
		log.Println(err)
		if errors.Is(err, security.ErrInvalidCredentials) {
			sendErrorResponse(w, 401, "неверный логин или пароль")
		} else {
			sendErrorResponse(w, 500, "внутренняя ошибка сервера")
		}
		return
	}

	h.setRefreshCookie(w, tokens.RefreshToken)

	resp := requestresponse.LoginResponse{
		Message:     "вход выполнен",
		AccessToken: tokens.AccessToken,
		User: requestresponse.UserData{
			UUID:  user.UUID,
			Email: user.Email,
			Name:  user.Name,
		},
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(resp)
}

// RefreshToken godoc
// @Summary Обновление токенов
// @Description Ротация refresh токена из HttpOnly cookie: выдаёт новый access токен и новый refresh токен в cookie. Старый refresh токен становится недействительным
// @Tags Authentication
// @Produce json
// @Success 200 {object} requestresponse.RefreshTokenResponse "Новый access токен"
// @Failure 401 {object} requestresponse.ErrorResponse "Refresh токен отсутствует, невалиден или просрочен"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/refresh-token [post]
func (h *AuthenticationHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	refreshToken := h.refreshTokenFromCookie(r)
	if refreshToken == "" {
		sendErrorResponse(w, 401, "refresh-токен не передан")
		return
	}

	tokensPair, err := h.AuthenticationService.RefreshToken(ctx, refreshToken)
	if err != nil {
		log.Println(err)
		h.clearRefreshCookie(w)
		switch {
		case errors.Is(err, security.ErrTokenExpired),
			errors.Is(err, security.ErrRefreshRecordExpired):
			sendErrorResponse(w, 401, "срок действия refresh-токена истёк")
		case errors.Is(err, security.ErrTokenMissing),
			errors.Is(err, security.ErrTokenMalformed),
			errors.Is(err, security.ErrTokenSignatureInvalid),
			errors.Is(err, security.ErrRefreshRecordNotFound):
			sendErrorResponse(w, 401, "невалидный refresh-токен")
		default:
			sendErrorResponse(w, 500, "внутренняя ошибка сервера")
		}
		return
	}

	h.setRefreshCookie(w, tokensPair.RefreshToken)

	resp := requestresponse.RefreshTokenResponse{
		Message:     "токены обновлены",
		AccessToken: tokensPair.AccessToken,
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(resp)
}

// Logout godoc
// @Summary Завершение сессии
// @Description Удаляет запись refresh токена и очищает cookie. Операция идемпотентна: повторный выход или отсутствие cookie ошибкой не считаются
// @Tags Authentication
// @Produce json
// @Success 200 {object} requestresponse.LogoutResponse
// @Router /api/logout [post]
func (h *AuthenticationHandler) Logout(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	if err := h.AuthenticationService.Logout(ctx, h.refreshTokenFromCookie(r)); err != nil {
		log.Println("ошибка при завершении сессии:", err)
	}

	h.clearRefreshCookie(w)

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(requestresponse.LogoutResponse{Message: "выход выполнен"})
}

// GetCurrentUser godoc
// @Summary Получение текущего пользователя
// @Description Возвращает данные пользователя из утверждений access токена
// @Tags Authentication
// @Produce json
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.CurrentUserResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Router /api/me [get]
func (h *AuthenticationHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	claims, err := security.GetClaimsFromContext(r.Context())
	if err != nil {
		sendErrorResponse(w, 401, "не авторизован")
		return
	}

	resp := requestresponse.CurrentUserResponse{
		UUID:  claims.UserUUID,
		Email: claims.Email,
		Name:  claims.Name,
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(resp)
}

func (h *AuthenticationHandler) refreshTokenFromCookie(r *http.Request) string {
	cookie, err := r.Cookie(h.cookieConfig.Name)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// setRefreshCookie выставляет refresh-токен в HttpOnly cookie.
// Срок жизни cookie совпадает со сроком жизни записи refresh-токена
func (h *AuthenticationHandler) setRefreshCookie(w http.ResponseWriter, refreshToken string) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieConfig.Name,
		Value:    refreshToken,
		Path:     h.cookieConfig.Path,
		MaxAge:   int(h.refreshTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cookieConfig.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthenticationHandler) clearRefreshCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieConfig.Name,
		Value:    "",
		Path:     h.cookieConfig.Path,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieConfig.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
