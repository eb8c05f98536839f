package security

import (
	"hybrid-auth-server/internal/util"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword возвращает bcrypt-хэш пароля
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", util.LogError("не удалось создать хэш пароля", err)
	}
	return string(hash), nil
}

// CheckPassword сверяет пароль с хэшем, возвращает true при совпадении
func CheckPassword(password string, passwordHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)) == nil
}
