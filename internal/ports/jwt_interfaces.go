package ports

import (
	"context"

	"hybrid-auth-server/internal/model"
	"hybrid-auth-server/internal/security"
)

// RefreshStoreInterface : хранилище записей refresh-токенов, ключ — UUID токена.
// Реализации возвращают security.ErrRefreshRecordNotFound при отсутствии записи.
// TakeByUUID обязан быть атомарным "забрать и удалить": из двух конкурентных
// ротаций одного токена запись достаётся ровно одной
type RefreshStoreInterface interface {
	SaveRefreshToken(ctx context.Context, record *model.RefreshRecord) error
	FindByUUID(ctx context.Context, uuid string) (*model.RefreshRecord, error)
	TakeByUUID(ctx context.Context, uuid string) (*model.RefreshRecord, error)
	DeleteByUUID(ctx context.Context, uuid string) error
}

type JWTServiceInterface interface {
	IssueAccessToken(user *model.User) (string, error)
	IssueRefreshToken(userUUID string) (string, *model.RefreshRecord, error)
	VerifyAccessToken(tokenString string) (*security.AccessClaims, error)
	VerifyRefreshToken(tokenString string) (*security.RefreshClaims, error)
}
