package service

import (
	"context"

	"hybrid-auth-server/internal/model"
	"hybrid-auth-server/internal/ports"
	"hybrid-auth-server/internal/util"
)

type ModuleService struct {
	moduleRepository ports.ModuleRepository
}

func NewModuleService(moduleRepository ports.ModuleRepository) *ModuleService {
	return &ModuleService{moduleRepository: moduleRepository}
}

// ListModules возвращает каталог модулей для авторизованного пользователя
func (s *ModuleService) ListModules(ctx context.Context) ([]model.Module, error) {
	modules, err := s.moduleRepository.ListModules(ctx)
	if err != nil {
		return nil, util.LogError("не удалось получить список модулей", err)
	}
	return modules, nil
}
