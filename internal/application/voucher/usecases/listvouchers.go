package usecases

import (
	"context"

	"anishop/internal/domain/voucher"
	"anishop/internal/shared/logger"
)

type ListVouchersQuery struct {
	// ActiveOnly restricts the listing to vouchers usable on new orders,
	// which is all the public surface ever sees.
	ActiveOnly bool
}

type ListVouchersResult struct {
	Vouchers []VoucherView `json:"vouchers"`
}

type ListVouchersUseCase struct {
	vouchers voucher.Repository
	logger   logger.Interface
}

func NewListVouchersUseCase(vouchers voucher.Repository, logger logger.Interface) *ListVouchersUseCase {
	return &ListVouchersUseCase{vouchers: vouchers, logger: logger}
}

func (uc *ListVouchersUseCase) Execute(ctx context.Context, query ListVouchersQuery) (*ListVouchersResult, error) {
	var (
		list []*voucher.Voucher
		err  error
	)
	if query.ActiveOnly {
		list, err = uc.vouchers.ListActive(ctx)
	} else {
		list, err = uc.vouchers.List(ctx)
	}
	if err != nil {
		uc.logger.Errorw("failed to list vouchers", "error", err)
		return nil, err
	}

	views := make([]VoucherView, 0, len(list))
	for _, v := range list {
		views = append(views, NewVoucherView(v))
	}
	return &ListVouchersResult{Vouchers: views}, nil
}
