package usecases

import (
	"context"

	"anishop/internal/domain/user"
	"anishop/internal/shared/errors"
	"anishop/internal/shared/logger"
)

type BanUserCommand struct {
	UserID   string
	Reason   string
	BannedBy string
}

// BanUserUseCase marks an account banned. Banning blocks future logins only;
// it has no effect on the user's existing orders or tickets.
type BanUserUseCase struct {
	users  user.Repository
	logger logger.Interface
}

func NewBanUserUseCase(users user.Repository, logger logger.Interface) *BanUserUseCase {
	return &BanUserUseCase{users: users, logger: logger}
}

func (uc *BanUserUseCase) Execute(ctx context.Context, cmd BanUserCommand) error {
	if _, err := uc.users.FindByID(ctx, cmd.UserID); err != nil {
		return err
	}

	b, err := user.NewBan(cmd.UserID, cmd.Reason, cmd.BannedBy)
	if err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.users.SaveBan(ctx, b); err != nil {
		uc.logger.Errorw("failed to ban user", "error", err, "user_id", cmd.UserID)
		return err
	}

	uc.logger.Infow("user banned", "user_id", cmd.UserID, "banned_by", cmd.BannedBy)
	return nil
}
