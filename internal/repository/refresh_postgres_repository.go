package repository

import (
	"context"
	"database/sql"
	"errors"

	"hybrid-auth-server/config"
	"hybrid-auth-server/internal/model"
	"hybrid-auth-server/internal/security"
	"hybrid-auth-server/internal/util"
)

// PostgresRefreshRepository : хранилище refresh-токенов в PostgreSQL.
// TakeByUUID опирается на атомарность DELETE по ключу: из двух конкурентных
// ротаций одного токена строку удалит (и получит её) ровно одна
type PostgresRefreshRepository struct {
	*config.Database
}

func NewPostgresRefreshRepository(database *config.Database) *PostgresRefreshRepository {
	return &PostgresRefreshRepository{database}
}

// SaveRefreshToken сохраняет запись refresh-токена в базе данных
func (r *PostgresRefreshRepository) SaveRefreshToken(ctx context.Context, record *model.RefreshRecord) error {
	query := `INSERT INTO refresh_tokens (uuid, user_uuid, token_hash, created_at, expire_at)
				VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.DB.ExecContext(ctx, query,
		record.UUID,
		record.UserUUID,
		record.TokenHash,
		record.CreatedAt,
		record.ExpireAt,
	)

	if err != nil {
		return util.LogError("ошибка вставки refresh-токена в БД", err)
	}

	return nil
}

// FindByUUID ищет запись refresh-токена в базе данных
func (r *PostgresRefreshRepository) FindByUUID(ctx context.Context, uuid string) (*model.RefreshRecord, error) {
	query := `SELECT uuid, user_uuid, token_hash, created_at, expire_at FROM refresh_tokens WHERE uuid = $1`

	record := &model.RefreshRecord{}

	err := r.DB.QueryRowContext(ctx, query, uuid).Scan(
		&record.UUID,
		&record.UserUUID,
		&record.TokenHash,
		&record.CreatedAt,
		&record.ExpireAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, security.ErrRefreshRecordNotFound
		}
		return nil, util.LogError("ошибка при выполнении запроса", err)
	}

	return record, nil
}

// TakeByUUID атомарно изымает запись: DELETE ... RETURNING отдаёт строку
// только тому, кто её фактически удалил
func (r *PostgresRefreshRepository) TakeByUUID(ctx context.Context, uuid string) (*model.RefreshRecord, error) {
	query := `DELETE FROM refresh_tokens WHERE uuid = $1
				RETURNING uuid, user_uuid, token_hash, created_at, expire_at`

	record := &model.RefreshRecord{}

	err := r.DB.QueryRowContext(ctx, query, uuid).Scan(
		&record.UUID,
		&record.UserUUID,
		&record.TokenHash,
		&record.CreatedAt,
		&record.ExpireAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, security.ErrRefreshRecordNotFound
		}
		return nil, util.LogError("ошибка изъятия refresh-токена из БД", err)
	}

	return record, nil
}

// DeleteByUUID удаляет запись. Отсутствие строки ошибкой не считается
func (r *PostgresRefreshRepository) DeleteByUUID(ctx context.Context, uuid string) error {
	query := `DELETE FROM refresh_tokens WHERE uuid = $1`

	if _, err := r.DB.ExecContext(ctx, query, uuid); err != nil {
		return util.LogError("не удалось удалить refresh-токен", err)
	}

	return nil
}

// DeleteExpired вычищает просроченные записи. Вспомогательная фоновая задача,
// корректность от неё не зависит: просрочка проверяется при чтении
func (r *PostgresRefreshRepository) DeleteExpired(ctx context.Context) (int64, error) {
	query := `DELETE FROM refresh_tokens WHERE expire_at < NOW()`

	result, err := r.DB.ExecContext(ctx, query)
	if err != nil {
		return 0, util.LogError("не удалось вычистить просроченные refresh-токены", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, util.LogError("не удалось получить число удалённых строк", err)
	}

	return deleted, nil
}
