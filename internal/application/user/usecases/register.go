package usecases

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"anishop/internal/domain/user"
	"anishop/internal/shared/errors"
	"anishop/internal/shared/logger"
)

// PasswordHasher abstracts bcrypt so tests stay fast.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	Generate(userID string, role user.Role) (token string, expiresIn int64, err error)
}

type RegisterCommand struct {
	Email       string
	Password    string
	DisplayName string
}

type AuthResult struct {
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

type RegisterUseCase struct {
	users  user.Repository
	hasher PasswordHasher
	tokens TokenIssuer
	logger logger.Interface
}

func NewRegisterUseCase(users user.Repository, hasher PasswordHasher, tokens TokenIssuer, logger logger.Interface) *RegisterUseCase {
	return &RegisterUseCase{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		logger: logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*AuthResult, error) {
	if len(cmd.Password) < 8 {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		return nil, errors.NewInternalError("failed to hash password", err.Error())
	}

	u, err := user.NewUser(uuid.NewString(), strings.TrimSpace(cmd.Email), hash, cmd.DisplayName)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.users.Save(ctx, u); err != nil {
		return nil, err
	}

	token, expiresIn, err := uc.tokens.Generate(u.ID(), user.RoleUser)
	if err != nil {
		uc.logger.Errorw("failed to issue token after registration", "error", err)
		return nil, errors.NewInternalError("failed to issue access token", err.Error())
	}

	uc.logger.Infow("user registered", "user_id", u.ID())
	return &AuthResult{
		UserID:      u.ID(),
		Email:       u.Email(),
		DisplayName: u.DisplayName(),
		Role:        user.RoleUser.String(),
		AccessToken: token,
		ExpiresIn:   expiresIn,
	}, nil
}
