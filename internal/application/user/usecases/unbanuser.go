package usecases

import (
	"context"

	"anishop/internal/domain/user"
	"anishop/internal/shared/errors"
	"anishop/internal/shared/logger"
)

type UnbanUserCommand struct {
	UserID string
}

type UnbanUserUseCase struct {
	users  user.Repository
	logger logger.Interface
}

func NewUnbanUserUseCase(users user.Repository, logger logger.Interface) *UnbanUserUseCase {
	return &UnbanUserUseCase{users: users, logger: logger}
}

func (uc *UnbanUserUseCase) Execute(ctx context.Context, cmd UnbanUserCommand) error {
	if cmd.UserID == "" {
		return errors.NewValidationError("user ID is required")
	}

	if err := uc.users.RemoveBan(ctx, cmd.UserID); err != nil {
		return err
	}

	uc.logger.Infow("user unbanned", "user_id", cmd.UserID)
	return nil
}
