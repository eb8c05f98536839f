package repository

import (
	"context"
	"fmt"
	"time"

	"hybrid-auth-server/config"
	"hybrid-auth-server/internal/model"
	"hybrid-auth-server/internal/security"
	"hybrid-auth-server/internal/util"

	"github.com/google/uuid"
)

// UserRepository : справочник пользователей в памяти, наполняется из конфигурации.
// Пароли хэшируются при загрузке, в памяти открытым текстом не живут.
// После старта справочник только читается, поэтому обходится без блокировок
type UserRepository struct {
	byEmail map[string]*model.User
	byUUID  map[string]*model.User
}

func NewUserRepository(seed []config.SeedUser) (*UserRepository, error) {
	repo := &UserRepository{
		byEmail: make(map[string]*model.User, len(seed)),
		byUUID:  make(map[string]*model.User, len(seed)),
	}

	for _, entry := range seed {
		if entry.Email == "" || entry.Password == "" {
			return nil, fmt.Errorf("[UserRepo] у пользователя должны быть email и пароль")
		}

		hash, err := security.HashPassword(entry.Password)
		if err != nil {
			return nil, util.LogError("[UserRepo] не удалось захэшировать пароль пользователя", err)
		}

		user := &model.User{
			UUID:         uuid.New().String(),
			Email:        entry.Email,
			Name:         entry.Name,
			PasswordHash: hash,
			CreatedAt:    time.Now(),
		}
		repo.byEmail[user.Email] = user
		repo.byUUID[user.UUID] = user
	}

	return repo, nil
}

// FindByEmail ищет пользователя по email
func (r *UserRepository) FindByEmail(_ context.Context, email string) (*model.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, fmt.Errorf("[UserRepo] пользователь не найден")
	}
	return user, nil
}

// FindByUUID ищет пользователя по UUID
func (r *UserRepository) FindByUUID(_ context.Context, uuid string) (*model.User, error) {
	user, ok := r.byUUID[uuid]
	if !ok {
		return nil, fmt.Errorf("[UserRepo] пользователь не найден")
	}
	return user, nil
}
