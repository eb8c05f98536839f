package security

import (
	"errors"
	"fmt"
	"time"

	"hybrid-auth-server/config"
	"hybrid-auth-server/internal/model"
	"hybrid-auth-server/internal/util"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// KeyRole определяет, каким ключом подписывается и проверяется токен.
// Access и refresh токены подписываются разными ключами: владение токеном
// одного типа не позволяет подделать токен другого
type KeyRole int

const (
	AccessKey KeyRole = iota
	RefreshKey
)

// AccessClaims : полезная нагрузка access-токена.
// Токен самодостаточен: валидность доказывается только подписью и сроком
// действия, на сервере ничего не хранится
type AccessClaims struct {
	UserUUID string `json:"user_uuid"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	jwt.RegisteredClaims
}

// RefreshClaims : полезная нагрузка refresh-токена.
// TokenUUID — ключ записи в хранилище refresh-токенов
type RefreshClaims struct {
	UserUUID  string `json:"user_uuid"`
	TokenUUID string `json:"token_uuid"`
	jwt.RegisteredClaims
}

type JWTService struct {
	*config.JWTConfig
}

func NewJWTService(cfg *config.JWTConfig) *JWTService {
	return &JWTService{cfg}
}

func (service *JWTService) signingKey(role KeyRole) []byte {
	if role == RefreshKey {
		return []byte(service.RefreshSecretKey)
	}
	return []byte(service.AccessSecretKey)
}

// IssueAccessToken выпускает подписанный access-токен с коротким TTL.
// Утверждения берутся из профиля пользователя и нигде не сохраняются
func (service *JWTService) IssueAccessToken(user *model.User) (string, error) {
	ttl, err := time.ParseDuration(service.AccessTokenTTL)
	if err != nil {
		return "", util.LogError("ошибка парсинга TTL access-токена", err)
	}

	claims := AccessClaims{
		UserUUID: user.UUID,
		Email:    user.Email,
		Name:     user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    service.Issuer,
		},
	}

	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	accessToken, err := jwtToken.SignedString(service.signingKey(AccessKey))
	if err != nil {
		return "", util.LogError("ошибка подписи access-токена", err)
	}

	return accessToken, nil
}

// IssueRefreshToken выпускает подписанный refresh-токен и запись для хранилища.
// Строка токена отдаётся клиенту, в записи сохраняется только bcrypt-хэш
// хвоста подписи: содержимое хранилища не компрометирует сам токен
func (service *JWTService) IssueRefreshToken(userUUID string) (string, *model.RefreshRecord, error) {
	ttl, err := time.ParseDuration(service.RefreshTokenTTL)
	if err != nil {
		return "", nil, util.LogError("ошибка парсинга TTL refresh-токена", err)
	}

	tokenUUID := uuid.New().String()
	now := time.Now()

	claims := RefreshClaims{
		UserUUID:  userUUID,
		TokenUUID: tokenUUID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    service.Issuer,
		},
	}

	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	refreshToken, err := jwtToken.SignedString(service.signingKey(RefreshKey))
	if err != nil {
		return "", nil, util.LogError("ошибка подписи refresh-токена", err)
	}

	hashedToken, err := bcrypt.GenerateFromPassword(signatureTail(refreshToken), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, util.LogError("ошибка хэширования refresh-токена", err)
	}

	record := &model.RefreshRecord{
		UUID:      tokenUUID,
		UserUUID:  userUUID,
		TokenHash: string(hashedToken),
		CreatedAt: now,
		ExpireAt:  now.Add(ttl),
	}

	return refreshToken, record, nil
}

// signatureTail возвращает последние 64 байта строки токена (часть подписи).
// bcrypt ограничен 72 байтами входа, целиком JWT в него не помещается
func signatureTail(refreshToken string) []byte {
	if len(refreshToken) <= 64 {
		return []byte(refreshToken)
	}
	return []byte(refreshToken[len(refreshToken)-64:])
}

// CompareRefreshToken сверяет предъявленный refresh-токен с хэшем из записи
func CompareRefreshToken(record *model.RefreshRecord, refreshToken string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(record.TokenHash), signatureTail(refreshToken)); err != nil {
		return ErrTokenSignatureInvalid
	}
	return nil
}

// VerifyAccessToken проверяет подпись и срок действия access-токена.
// Подпись проверяется раньше, чем используется любое встроенное поле
func (service *JWTService) VerifyAccessToken(jwtTokenStr string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	if err := service.verify(jwtTokenStr, AccessKey, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// VerifyRefreshToken проверяет подпись и срок действия refresh-токена
func (service *JWTService) VerifyRefreshToken(jwtTokenStr string) (*RefreshClaims, error) {
	claims := &RefreshClaims{}
	if err := service.verify(jwtTokenStr, RefreshKey, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

func (service *JWTService) verify(jwtTokenStr string, role KeyRole, claims jwt.Claims) error {
	if jwtTokenStr == "" {
		return ErrTokenMissing
	}

	jwtToken, err := jwt.ParseWithClaims(jwtTokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Header["alg"] != jwt.SigningMethodHS512.Alg() {
			return nil, fmt.Errorf("неверный способ подписи токена: %v", token.Header["alg"])
		}
		return service.signingKey(role), nil
	})

	switch {
	case err == nil && jwtToken.Valid:
		return nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrTokenSignatureInvalid
	default:
		return ErrTokenMalformed
	}
}
