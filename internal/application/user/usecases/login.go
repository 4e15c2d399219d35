package usecases

import (
	"context"

	"anishop/internal/domain/user"
	"anishop/internal/shared/errors"
	"anishop/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginUseCase struct {
	users  user.Repository
	hasher PasswordHasher
	tokens TokenIssuer
	logger logger.Interface
}

func NewLoginUseCase(users user.Repository, hasher PasswordHasher, tokens TokenIssuer, logger logger.Interface) *LoginUseCase {
	return &LoginUseCase{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		logger: logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*AuthResult, error) {
	// Every failure path returns the same error so callers cannot probe
	// which emails are registered.
	invalid := errors.NewUnauthorizedError("invalid email or password")

	u, err := uc.users.FindByEmail(ctx, cmd.Email)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, invalid
		}
		return nil, err
	}

	if err := uc.hasher.Verify(cmd.Password, u.PasswordHash()); err != nil {
		return nil, invalid
	}

	if _, err := uc.users.FindBan(ctx, u.ID()); err == nil {
		uc.logger.Infow("banned user attempted login", "user_id", u.ID())
		return nil, errors.NewForbiddenError("account is banned")
	} else if !errors.IsNotFoundError(err) {
		return nil, err
	}

	role, err := uc.users.GetRole(ctx, u.ID())
	if err != nil {
		return nil, err
	}

	token, expiresIn, err := uc.tokens.Generate(u.ID(), role)
	if err != nil {
		uc.logger.Errorw("failed to issue token", "error", err)
		return nil, errors.NewInternalError("failed to issue access token", err.Error())
	}

	uc.logger.Infow("user logged in", "user_id", u.ID())
	return &AuthResult{
		UserID:      u.ID(),
		Email:       u.Email(),
		DisplayName: u.DisplayName(),
		Role:        role.String(),
		AccessToken: token,
		ExpiresIn:   expiresIn,
	}, nil
}
