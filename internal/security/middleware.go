package security

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"hybrid-auth-server/internal/util"
)

type contextKey string

const (
	UserContextKey contextKey = "user"

	// CodeTokenExpired : машинно-читаемый код в теле 401-ответа.
	// Сигнализирует клиенту, что нужно выполнить refresh, а не логин заново
	CodeTokenExpired = "TOKEN_EXPIRED"
)

// Authorize извлекает bearer-токен из заголовка Authorization и проверяет его.
// Access-токен проверяется без обращения к хранилищу: только подпись и срок
func Authorize(authorizationHeader string, jwtService *JWTService) (*AccessClaims, error) {
	if authorizationHeader == "" {
		return nil, ErrTokenMissing
	}
	if !strings.HasPrefix(authorizationHeader, "Bearer ") {
		return nil, ErrTokenMalformed
	}

	token := strings.TrimPrefix(authorizationHeader, "Bearer ")
	if token == "" {
		return nil, ErrTokenMalformed
	}

	return jwtService.VerifyAccessToken(token)
}

// JWTMiddleware закрывает маршруты проверкой access-токена.
// При истёкшем токене ответ содержит код TOKEN_EXPIRED, все остальные
// отказы клиентски неразличимы
func JWTMiddleware(jwtService *JWTService) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(handleAuthentication(jwtService, next))
	}
}

func handleAuthentication(jwtService *JWTService, next http.Handler) func(writer http.ResponseWriter, request *http.Request) {
	return func(writer http.ResponseWriter, request *http.Request) {
		claims, err := Authorize(request.Header.Get("Authorization"), jwtService)
		if err != nil {
			log.Printf("невалидный access-токен: %v", err)
			if errors.Is(err, ErrTokenExpired) {
				util.HandleErrorWithCode(writer, "срок действия access-токена истёк", CodeTokenExpired, http.StatusUnauthorized)
				return
			}
			util.HandleError(writer, "не авторизован", http.StatusUnauthorized)
			return
		}

		req := request.WithContext(context.WithValue(request.Context(), UserContextKey, claims))
		next.ServeHTTP(writer, req)
	}
}

// GetClaimsFromContext достаёт утверждения авторизованного пользователя из контекста запроса
func GetClaimsFromContext(ctx context.Context) (*AccessClaims, error) {
	claims, ok := ctx.Value(UserContextKey).(*AccessClaims)
	if !ok || claims == nil {
		return nil, fmt.Errorf("пользователь не авторизован")
	}
	return claims, nil
}
