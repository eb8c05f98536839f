package repository

import (
	"context"

	"hybrid-auth-server/config"
	"hybrid-auth-server/internal/model"
)

// ModuleRepository : каталог учебных модулей, наполняется из конфигурации
type ModuleRepository struct {
	modules []model.Module
}

func NewModuleRepository(seed []config.SeedModule) *ModuleRepository {
	modules := make([]model.Module, 0, len(seed))
	for i, entry := range seed {
		modules = append(modules, model.Module{
			ID:          i + 1,
			Name:        entry.Name,
			Description: entry.Description,
		})
	}
	return &ModuleRepository{modules: modules}
}

// ListModules возвращает копию списка модулей
func (r *ModuleRepository) ListModules(_ context.Context) ([]model.Module, error) {
	modules := make([]model.Module, len(r.modules))
	copy(modules, r.modules)
	return modules, nil
}
