package usecases

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"anishop/internal/domain/order"
	"anishop/internal/domain/setting"
	"anishop/internal/domain/voucher"
	"anishop/internal/infrastructure/email"
	"anishop/internal/shared/biztime"
	"anishop/internal/shared/errors"
	"anishop/internal/shared/goroutine"
	"anishop/internal/shared/logger"
)

// ConfirmationSender delivers the best-effort order confirmation mail.
type ConfirmationSender interface {
	SendOrderConfirmation(ctx context.Context, to string, data email.OrderConfirmation) error
}

type PlaceOrderCommand struct {
	UserID        *string
	ProductLink   string
	Quantity      int
	VoucherCode   string
	RecipientName string
	Contact       string
	Address       string
	Email         *string
	Notes         *string
}

type PlaceOrderResult struct {
	ID         uint   `json:"id"`
	OrderCode  string `json:"order_code"`
	Status     string `json:"status"`
	ServiceFee int64  `json:"service_fee"`
}

// PlaceOrderUseCase is the single write path for creating orders. Every
// surface (web, bot) funnels through it, so the daily cap and the voucher
// snapshot behave identically everywhere.
type PlaceOrderUseCase struct {
	orders   order.Repository
	vouchers voucher.Repository
	settings setting.Repository
	codes    order.CodeGenerator
	mailer   ConfirmationSender
	logger   logger.Interface
}

func NewPlaceOrderUseCase(
	orders order.Repository,
	vouchers voucher.Repository,
	settings setting.Repository,
	codes order.CodeGenerator,
	mailer ConfirmationSender,
	logger logger.Interface,
) *PlaceOrderUseCase {
	return &PlaceOrderUseCase{
		orders:   orders,
		vouchers: vouchers,
		settings: settings,
		codes:    codes,
		mailer:   mailer,
		logger:   logger,
	}
}

func (uc *PlaceOrderUseCase) Execute(ctx context.Context, cmd PlaceOrderCommand) (*PlaceOrderResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	if err := uc.checkDailyLimit(ctx); err != nil {
		return nil, err
	}

	serviceFee, voucherID := uc.resolveVoucher(ctx, cmd.VoucherCode)

	code, err := uc.codes.Generate(ctx)
	if err != nil {
		uc.logger.Errorw("failed to generate order code", "error", err)
		return nil, errors.NewInternalError("failed to generate order code", err.Error())
	}

	o, err := order.NewOrder(
		code,
		cmd.UserID,
		cmd.ProductLink,
		cmd.Quantity,
		voucherID,
		cmd.RecipientName,
		cmd.Contact,
		cmd.Address,
		cmd.Email,
		cmd.Notes,
		serviceFee,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	// Single insert, no retry. A duplicate-code race between generation and
	// insert surfaces as a conflict for the caller to retry.
	if err := uc.orders.Save(ctx, o); err != nil {
		uc.logger.Errorw("failed to save order", "error", err, "order_code", code)
		return nil, err
	}

	uc.logger.Infow("order placed",
		"order_code", o.OrderCode(),
		"service_fee", o.ServiceFee(),
		"voucher_id", voucherID,
	)

	uc.sendConfirmation(o)

	return &PlaceOrderResult{
		ID:         o.ID(),
		OrderCode:  o.OrderCode(),
		Status:     o.Status().String(),
		ServiceFee: o.ServiceFee(),
	}, nil
}

func (uc *PlaceOrderUseCase) validateCommand(cmd PlaceOrderCommand) error {
	var missing []string
	if strings.TrimSpace(cmd.ProductLink) == "" {
		missing = append(missing, "product_link")
	}
	if strings.TrimSpace(cmd.RecipientName) == "" {
		missing = append(missing, "recipient_name")
	}
	if strings.TrimSpace(cmd.Contact) == "" {
		missing = append(missing, "contact")
	}
	if strings.TrimSpace(cmd.Address) == "" {
		missing = append(missing, "address")
	}
	if len(missing) > 0 {
		return errors.NewValidationError(fmt.Sprintf("missing required fields: %s", strings.Join(missing, ", ")))
	}
	if cmd.Quantity < 1 {
		return errors.NewValidationError("quantity must be at least 1")
	}
	return nil
}

// checkDailyLimit enforces the storewide daily cap. An absent, zero or
// unreadable limit means unlimited; only the configured-and-reached case
// rejects. The count and the later insert are separate statements, so two
// concurrent requests can both pass at the boundary. The cap is a soft
// protection, not an exact quota.
func (uc *PlaceOrderUseCase) checkDailyLimit(ctx context.Context) error {
	s, err := uc.settings.Get(ctx, setting.KeyDailyOrderLimit)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Warnw("failed to read daily order limit, skipping check", "error", err)
		}
		return nil
	}

	limit, err := strconv.ParseInt(s.Value(), 10, 64)
	if err != nil || limit <= 0 {
		return nil
	}

	count, err := uc.orders.CountCreatedSince(ctx, biztime.StartOfDayUTC(biztime.NowUTC()))
	if err != nil {
		uc.logger.Warnw("failed to count today's orders, skipping limit check", "error", err)
		return nil
	}

	if count >= limit {
		uc.logger.Infow("daily order limit reached", "limit", limit, "count", count)
		return errors.NewRateLimitedError("daily order limit reached, please try again tomorrow")
	}
	return nil
}

// resolveVoucher snapshots the fee implied by the voucher code. Unknown,
// inactive or unreadable vouchers are silently ignored and the order
// proceeds without one.
func (uc *PlaceOrderUseCase) resolveVoucher(ctx context.Context, code string) (int64, *uint) {
	code = strings.TrimSpace(code)
	if code == "" {
		return 0, nil
	}

	v, err := uc.vouchers.FindActiveByCode(ctx, code)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Warnw("failed to resolve voucher, ignoring", "error", err, "voucher_code", code)
		} else {
			uc.logger.Debugw("unknown or inactive voucher ignored", "voucher_code", code)
		}
		return 0, nil
	}

	id := v.ID()
	return v.ResolveFee(), &id
}

func (uc *PlaceOrderUseCase) sendConfirmation(o *order.Order) {
	if uc.mailer == nil || o.Email() == nil || *o.Email() == "" {
		return
	}

	to := *o.Email()
	data := email.OrderConfirmation{
		OrderCode:     o.OrderCode(),
		RecipientName: o.RecipientName(),
		ProductLink:   o.ProductLink(),
		Quantity:      o.Quantity(),
		ServiceFee:    o.ServiceFee(),
		StatusLabel:   order.ProjectStatus(o.Status()).Label,
	}

	goroutine.SafeGo(uc.logger, "order confirmation mail", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := uc.mailer.SendOrderConfirmation(ctx, to, data); err != nil {
			uc.logger.Warnw("failed to send order confirmation", "error", err, "order_code", data.OrderCode)
		}
	})
}
