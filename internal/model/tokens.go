package model

import "time"

// RefreshRecord : серверная запись о выданном refresh-токене.
// Ключом служит UUID, встроенный в сам токен. Запись удаляется при ротации,
// logout или обнаружении просрочки — отсутствие записи делает токен мёртвым
// независимо от валидности его подписи
type RefreshRecord struct {
	UUID      string    `db:"uuid" json:"uuid"`
	UserUUID  string    `db:"user_uuid" json:"user_uuid"`
	TokenHash string    `db:"token_hash" json:"token_hash"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	ExpireAt  time.Time `db:"expire_at" json:"expire_at"`
}

// Expired сообщает, истёк ли срок действия записи.
// Хранилище просроченные записи само не вычищает, проверка лежит на вызывающем
func (r *RefreshRecord) Expired(now time.Time) bool {
	return now.After(r.ExpireAt)
}

// TokensPair содержит пару access и refresh токенов
// swagger:model
type TokensPair struct {
	// Access токен (JWT)
	// example: eyJhbGciOiJIUzUxMiIsInR5cCI6IkpXVCJ9...
	AccessToken string `json:"accessToken"`

	// Refresh токен (уходит клиенту только в HttpOnly cookie)
	RefreshToken string `json:"-"`
}
