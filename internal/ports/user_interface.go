package ports

import (
	"context"

	"hybrid-auth-server/internal/model"
)

// UserDirectory : внешний справочник пользователей.
// Источник истины о личности, сервис аутентификации его только читает
type UserDirectory interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByUUID(ctx context.Context, uuid string) (*model.User, error)
}
