package repository

import (
	"context"
	"sync"

	"hybrid-auth-server/internal/model"
	"hybrid-auth-server/internal/security"
)

// MemoryRefreshRepository : хранилище refresh-токенов в памяти процесса.
// Мьютекс делает TakeByUUID атомарным: из двух конкурентных ротаций
// одного токена запись забирает ровно одна
type MemoryRefreshRepository struct {
	mu      sync.Mutex
	records map[string]model.RefreshRecord
}

func NewMemoryRefreshRepository() *MemoryRefreshRepository {
	return &MemoryRefreshRepository{
		records: make(map[string]model.RefreshRecord),
	}
}

// SaveRefreshToken сохраняет запись refresh-токена
func (r *MemoryRefreshRepository) SaveRefreshToken(_ context.Context, record *model.RefreshRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[record.UUID] = *record
	return nil
}

// FindByUUID ищет запись refresh-токена, не трогая её
func (r *MemoryRefreshRepository) FindByUUID(_ context.Context, uuid string) (*model.RefreshRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[uuid]
	if !ok {
		return nil, security.ErrRefreshRecordNotFound
	}
	return &record, nil
}

// TakeByUUID атомарно забирает запись: возвращает её и тут же удаляет
func (r *MemoryRefreshRepository) TakeByUUID(_ context.Context, uuid string) (*model.RefreshRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[uuid]
	if !ok {
		return nil, security.ErrRefreshRecordNotFound
	}
	delete(r.records, uuid)
	return &record, nil
}

// DeleteByUUID удаляет запись. Удаление отсутствующей записи не является ошибкой
func (r *MemoryRefreshRepository) DeleteByUUID(_ context.Context, uuid string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.records, uuid)
	return nil
}

// Len возвращает количество живых записей (для тестов и диагностики)
func (r *MemoryRefreshRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.records)
}
