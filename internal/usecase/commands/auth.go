package commands

import (
	"context"

	"giftsafer/internal/pkg/config"
	"giftsafer/internal/pkg/errs"
	"giftsafer/internal/pkg/jwt"
	"giftsafer/internal/pkg/password"
)

var ErrInvalidCredentials = errs.New("invalid credentials")

const RoleAdmin = "admin"

type LoginResult struct {
	Token string
	Role  string
}

type AuthCommands interface {
	Login(ctx context.Context, pass string) (*LoginResult, error)
}

type authUseCaseImpl struct {
	cfg config.AdminConfig
	jwt *jwt.Service
}

func NewAuthUseCase(cfg config.AdminConfig, jwtService *jwt.Service) AuthCommands {
	return &authUseCaseImpl{
		cfg: cfg,
		jwt: jwtService,
	}
}

// Login checks the operator password against the configured bcrypt
// hash and issues a short-lived token. There is a single operator
// account, so no user lookup is involved.
func (u *authUseCaseImpl) Login(_ context.Context, pass string) (*LoginResult, error) {
	if err := password.ComparePassword(u.cfg.PasswordHash, pass); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := u.jwt.GenerateToken(RoleAdmin)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate token")
	}

	return &LoginResult{Token: token, Role: RoleAdmin}, nil
}
