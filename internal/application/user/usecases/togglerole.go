package usecases

import (
	"context"

	"anishop/internal/domain/user"
	"anishop/internal/shared/errors"
	"anishop/internal/shared/logger"
)

type ToggleRoleCommand struct {
	UserID string
}

type ToggleRoleResult struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// ToggleRoleUseCase flips a user between admin and plain user. Role changes
// take effect on the user's next token refresh, not on live tokens.
type ToggleRoleUseCase struct {
	users  user.Repository
	logger logger.Interface
}

func NewToggleRoleUseCase(users user.Repository, logger logger.Interface) *ToggleRoleUseCase {
	return &ToggleRoleUseCase{users: users, logger: logger}
}

func (uc *ToggleRoleUseCase) Execute(ctx context.Context, cmd ToggleRoleCommand) (*ToggleRoleResult, error) {
	if cmd.UserID == "" {
		return nil, errors.NewValidationError("user ID is required")
	}

	if _, err := uc.users.FindByID(ctx, cmd.UserID); err != nil {
		return nil, err
	}

	role, err := uc.users.GetRole(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	newRole := role.Toggled()
	if err := uc.users.SetRole(ctx, cmd.UserID, newRole); err != nil {
		uc.logger.Errorw("failed to set role", "error", err, "user_id", cmd.UserID)
		return nil, err
	}

	uc.logger.Infow("user role toggled", "user_id", cmd.UserID, "role", newRole.String())
	return &ToggleRoleResult{UserID: cmd.UserID, Role: newRole.String()}, nil
}
