package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hybrid-auth-server/config"
	"hybrid-auth-server/internal/model"
	"hybrid-auth-server/internal/security"
	"hybrid-auth-server/internal/util"

	"github.com/redis/go-redis/v9"
)

// RedisRefreshRepository : хранилище refresh-токенов в Redis.
// Запись живёт с TTL, равным сроку действия токена, поэтому просроченные
// ключи Redis вычищает сам. Атомарность TakeByUUID обеспечивает GETDEL
type RedisRefreshRepository struct {
	client *config.RedisClient
}

func NewRedisRefreshRepository(rdb *config.RedisClient) *RedisRefreshRepository {
	return &RedisRefreshRepository{rdb}
}

// SaveRefreshToken сохраняет запись с TTL до момента её истечения
func (r *RedisRefreshRepository) SaveRefreshToken(ctx context.Context, record *model.RefreshRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return util.LogError("ошибка сериализации записи refresh-токена", err)
	}

	ttl := time.Until(record.ExpireAt)
	if ttl <= 0 {
		return fmt.Errorf("запись refresh-токена уже просрочена")
	}

	cmd := r.client.Client.Set(ctx, r.key(record.UUID), data, ttl)
	if err = cmd.Err(); err != nil {
		return util.LogError("ошибка сохранения refresh-токена в Redis", err)
	}
	if cmd.Val() != "OK" {
		return fmt.Errorf("неожиданный ответ Redis: %s", cmd.Val())
	}

	return nil
}

// FindByUUID ищет запись, не трогая её
func (r *RedisRefreshRepository) FindByUUID(ctx context.Context, uuid string) (*model.RefreshRecord, error) {
	val, err := r.client.Client.Get(ctx, r.key(uuid)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, security.ErrRefreshRecordNotFound
	} else if err != nil {
		return nil, util.LogError("ошибка получения refresh-токена из Redis", err)
	}

	return r.unmarshal(val)
}

// TakeByUUID атомарно забирает запись через GETDEL:
// конкурентная ротация того же токена получит redis.Nil
func (r *RedisRefreshRepository) TakeByUUID(ctx context.Context, uuid string) (*model.RefreshRecord, error) {
	val, err := r.client.Client.GetDel(ctx, r.key(uuid)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, security.ErrRefreshRecordNotFound
	} else if err != nil {
		return nil, util.LogError("ошибка изъятия refresh-токена из Redis", err)
	}

	return r.unmarshal(val)
}

// DeleteByUUID удаляет запись, отсутствие ключа ошибкой не считается
func (r *RedisRefreshRepository) DeleteByUUID(ctx context.Context, uuid string) error {
	if err := r.client.Client.Del(ctx, r.key(uuid)).Err(); err != nil {
		return util.LogError("ошибка удаления refresh-токена из Redis", err)
	}
	return nil
}

func (r *RedisRefreshRepository) unmarshal(val string) (*model.RefreshRecord, error) {
	var record model.RefreshRecord
	if err := json.Unmarshal([]byte(val), &record); err != nil {
		return nil, util.LogError("ошибка десериализации записи refresh-токена", err)
	}
	return &record, nil
}

func (r *RedisRefreshRepository) key(uuid string) string {
	return fmt.Sprintf("refresh_token:%s", uuid)
}
