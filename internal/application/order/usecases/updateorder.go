package usecases

import (
	"context"
	"time"

	orderdto "anishop/internal/application/order/dto"
	"anishop/internal/domain/order"
	"anishop/internal/infrastructure/services"
	"anishop/internal/shared/errors"
	"anishop/internal/shared/goroutine"
	"anishop/internal/shared/logger"
)

// BotNotifier pushes order changes to the bot process.
type BotNotifier interface {
	Enabled() bool
	NotifyOrderUpdate(ctx context.Context, event services.OrderUpdateEvent) error
}

type UpdateOrderCommand struct {
	ID            uint
	RecipientName *string
	Contact       *string
	Address       *string
	Status        *string
	PaymentStatus *string
	TrackingCode  *string
	AdminNotes    *string
	ServiceFee    *int64
}

// UpdateOrderUseCase applies an admin patch. When the status or payment
// status changed, the bot webhook is notified best effort so subscribed
// chats hear about it.
type UpdateOrderUseCase struct {
	orders   order.Repository
	notifier BotNotifier
	logger   logger.Interface
}

func NewUpdateOrderUseCase(orders order.Repository, notifier BotNotifier, logger logger.Interface) *UpdateOrderUseCase {
	return &UpdateOrderUseCase{
		orders:   orders,
		notifier: notifier,
		logger:   logger,
	}
}

func (uc *UpdateOrderUseCase) Execute(ctx context.Context, cmd UpdateOrderCommand) (*orderdto.OrderView, error) {
	if cmd.ID == 0 {
		return nil, errors.NewValidationError("order ID is required")
	}

	o, err := uc.orders.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	prevStatus := o.Status()
	prevPayment := o.PaymentStatus()

	patch := order.AdminPatch{
		RecipientName:  cmd.RecipientName,
		PhoneOrContact: cmd.Contact,
		Address:        cmd.Address,
		TrackingCode:   cmd.TrackingCode,
		AdminNotes:     cmd.AdminNotes,
		ServiceFee:     cmd.ServiceFee,
	}
	if cmd.Status != nil {
		status, err := order.NewStatus(*cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		patch.Status = &status
	}
	if cmd.PaymentStatus != nil {
		ps, err := order.NewPaymentStatus(*cmd.PaymentStatus)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		patch.PaymentStatus = &ps
	}

	if err := o.ApplyAdminPatch(patch); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.orders.Update(ctx, o); err != nil {
		uc.logger.Errorw("failed to update order", "error", err, "order_id", cmd.ID)
		return nil, err
	}

	uc.logger.Infow("order updated",
		"order_code", o.OrderCode(),
		"status", o.Status().String(),
		"payment_status", o.PaymentStatus().String(),
	)

	if o.Status() != prevStatus || o.PaymentStatus() != prevPayment {
		uc.notifyBot(o)
	}

	view := orderdto.NewOrderView(o)
	return &view, nil
}

func (uc *UpdateOrderUseCase) notifyBot(o *order.Order) {
	if uc.notifier == nil || !uc.notifier.Enabled() {
		return
	}

	event := services.OrderUpdateEvent{
		OrderCode:     o.OrderCode(),
		Status:        o.Status().String(),
		PaymentStatus: o.PaymentStatus().String(),
	}
	if tc := o.TrackingCode(); tc != nil {
		event.TrackingCode = *tc
	}

	goroutine.SafeGo(uc.logger, "bot order-update push", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := uc.notifier.NotifyOrderUpdate(ctx, event); err != nil {
			uc.logger.Warnw("failed to push order update to bot", "error", err, "order_code", event.OrderCode)
		}
	})
}
