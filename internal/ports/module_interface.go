package ports

import (
	"context"

	"hybrid-auth-server/internal/model"
)

type ModuleRepository interface {
	ListModules(ctx context.Context) ([]model.Module, error)
}
