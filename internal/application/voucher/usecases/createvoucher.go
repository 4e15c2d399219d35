package usecases

import (
	"context"
	"time"

	"anishop/internal/domain/voucher"
	"anishop/internal/shared/errors"
	"anishop/internal/shared/logger"
)

type CreateVoucherCommand struct {
	Code        string
	VoucherType string
	FeeAmount   *int64
	Description string
}

type VoucherView struct {
	ID          uint      `json:"id"`
	Code        string    `json:"code"`
	VoucherType string    `json:"voucher_type"`
	FeeAmount   *int64    `json:"fee_amount,omitempty"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewVoucherView(v *voucher.Voucher) VoucherView {
	return VoucherView{
		ID:          v.ID(),
		Code:        v.Code(),
		VoucherType: v.VoucherType().String(),
		FeeAmount:   v.FeeAmount(),
		Description: v.Description(),
		IsActive:    v.IsActive(),
		CreatedAt:   v.CreatedAt(),
	}
}

type CreateVoucherUseCase struct {
	vouchers voucher.Repository
	logger   logger.Interface
}

func NewCreateVoucherUseCase(vouchers voucher.Repository, logger logger.Interface) *CreateVoucherUseCase {
	return &CreateVoucherUseCase{vouchers: vouchers, logger: logger}
}

func (uc *CreateVoucherUseCase) Execute(ctx context.Context, cmd CreateVoucherCommand) (*VoucherView, error) {
	voucherType, err := voucher.NewType(cmd.VoucherType)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	v, err := voucher.NewVoucher(cmd.Code, voucherType, cmd.FeeAmount, cmd.Description)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.vouchers.Save(ctx, v); err != nil {
		uc.logger.Errorw("failed to save voucher", "error", err, "code", v.Code())
		return nil, err
	}

	uc.logger.Infow("voucher created", "code", v.Code(), "type", v.VoucherType().String())
	view := NewVoucherView(v)
	return &view, nil
}
