package usecases

import (
	"context"
	"strings"

	orderdto "anishop/internal/application/order/dto"
	"anishop/internal/domain/order"
	"anishop/internal/domain/setting"
	"anishop/internal/domain/voucher"
	"anishop/internal/shared/errors"
	"anishop/internal/shared/logger"
)

type TrackOrderQuery struct {
	OrderCode string
}

// BankDetails is the transfer information shown when the service fee is
// still unpaid.
type BankDetails struct {
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
}

type VoucherSummary struct {
	Code        string `json:"code"`
	VoucherType string `json:"voucher_type"`
	Description string `json:"description"`
}

type TrackOrderResult struct {
	Order   orderdto.MaskedOrderView `json:"order"`
	Voucher *VoucherSummary          `json:"voucher,omitempty"`
	Bank    *BankDetails             `json:"bank,omitempty"`
}

// TrackOrderUseCase serves the public tracking page. The order itself is
// required; voucher and bank details degrade to absent on read failure.
type TrackOrderUseCase struct {
	orders   order.Repository
	vouchers voucher.Repository
	settings setting.Repository
	logger   logger.Interface
}

func NewTrackOrderUseCase(
	orders order.Repository,
	vouchers voucher.Repository,
	settings setting.Repository,
	logger logger.Interface,
) *TrackOrderUseCase {
	return &TrackOrderUseCase{
		orders:   orders,
		vouchers: vouchers,
		settings: settings,
		logger:   logger,
	}
}

func (uc *TrackOrderUseCase) Execute(ctx context.Context, query TrackOrderQuery) (*TrackOrderResult, error) {
	code := strings.TrimSpace(query.OrderCode)
	if code == "" {
		return nil, errors.NewValidationError("order code is required")
	}

	o, err := uc.orders.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	result := &TrackOrderResult{
		Order: orderdto.NewMaskedOrderView(o),
	}

	if id := o.VoucherID(); id != nil {
		if v, err := uc.vouchers.FindByID(ctx, *id); err == nil {
			result.Voucher = &VoucherSummary{
				Code:        v.Code(),
				VoucherType: v.VoucherType().String(),
				Description: v.Description(),
			}
		} else if !errors.IsNotFoundError(err) {
			uc.logger.Warnw("failed to load voucher for tracking", "error", err, "voucher_id", *id)
		}
	}

	if o.PaymentStatus() == order.PaymentUnpaid {
		result.Bank = uc.loadBankDetails(ctx)
	}

	return result, nil
}

func (uc *TrackOrderUseCase) loadBankDetails(ctx context.Context) *BankDetails {
	values, err := uc.settings.GetMany(ctx, []string{
		setting.KeyBankName, setting.KeyBankAccountNumber, setting.KeyBankAccountName,
	})
	if err != nil {
		uc.logger.Warnw("failed to load bank settings", "error", err)
		return nil
	}
	if values[setting.KeyBankAccountNumber] == "" {
		return nil
	}
	return &BankDetails{
		BankName:      values[setting.KeyBankName],
		AccountNumber: values[setting.KeyBankAccountNumber],
		AccountName:   values[setting.KeyBankAccountName],
	}
}
