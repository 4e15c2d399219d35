package usecases

import (
	"context"

	"anishop/internal/domain/voucher"
	"anishop/internal/shared/errors"
	"anishop/internal/shared/logger"
)

type DeleteVoucherCommand struct {
	ID uint
}

// DeleteVoucherUseCase removes a voucher. Existing orders keep their
// snapshotted fee and dangling voucher reference.
type DeleteVoucherUseCase struct {
	vouchers voucher.Repository
	logger   logger.Interface
}

func NewDeleteVoucherUseCase(vouchers voucher.Repository, logger logger.Interface) *DeleteVoucherUseCase {
	return &DeleteVoucherUseCase{vouchers: vouchers, logger: logger}
}

func (uc *DeleteVoucherUseCase) Execute(ctx context.Context, cmd DeleteVoucherCommand) error {
	if cmd.ID == 0 {
		return errors.NewValidationError("voucher ID is required")
	}

	if err := uc.vouchers.Delete(ctx, cmd.ID); err != nil {
		return err
	}

	uc.logger.Infow("voucher deleted", "voucher_id", cmd.ID)
	return nil
}
