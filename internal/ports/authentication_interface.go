package ports

import (
	"context"

	"hybrid-auth-server/internal/model"
)

type AuthenticationService interface {
	Login(ctx context.Context, email, password string) (*model.TokensPair, *model.User, error)
	RefreshToken(ctx context.Context, refreshToken string) (*model.TokensPair, error)
	Logout(ctx context.Context, refreshToken string) error
}
