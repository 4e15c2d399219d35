package usecases

import (
	"context"

	"anishop/internal/domain/voucher"
	"anishop/internal/shared/errors"
	"anishop/internal/shared/logger"
)

type ToggleVoucherCommand struct {
	ID       uint
	IsActive bool
}

// ToggleVoucherUseCase flips a voucher's availability for new orders.
// Orders that already snapshotted its fee are unaffected.
type ToggleVoucherUseCase struct {
	vouchers voucher.Repository
	logger   logger.Interface
}

func NewToggleVoucherUseCase(vouchers voucher.Repository, logger logger.Interface) *ToggleVoucherUseCase {
	return &ToggleVoucherUseCase{vouchers: vouchers, logger: logger}
}

func (uc *ToggleVoucherUseCase) Execute(ctx context.Context, cmd ToggleVoucherCommand) (*VoucherView, error) {
	if cmd.ID == 0 {
		return nil, errors.NewValidationError("voucher ID is required")
	}

	v, err := uc.vouchers.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	v.SetActive(cmd.IsActive)
	if err := uc.vouchers.Update(ctx, v); err != nil {
		uc.logger.Errorw("failed to toggle voucher", "error", err, "voucher_id", cmd.ID)
		return nil, err
	}

	uc.logger.Infow("voucher toggled", "code", v.Code(), "is_active", v.IsActive())
	view := NewVoucherView(v)
	return &view, nil
}
