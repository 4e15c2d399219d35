package usecases

import (
	"context"

	"anishop/internal/domain/order"
	"anishop/internal/shared/errors"
	"anishop/internal/shared/logger"
)

type DeleteOrderCommand struct {
	ID uint
}

// DeleteOrderUseCase removes an order permanently. Support tickets that
// reference its code stay untouched.
type DeleteOrderUseCase struct {
	orders order.Repository
	logger logger.Interface
}

func NewDeleteOrderUseCase(orders order.Repository, logger logger.Interface) *DeleteOrderUseCase {
	return &DeleteOrderUseCase{orders: orders, logger: logger}
}

func (uc *DeleteOrderUseCase) Execute(ctx context.Context, cmd DeleteOrderCommand) error {
	if cmd.ID == 0 {
		return errors.NewValidationError("order ID is required")
	}

	if err := uc.orders.Delete(ctx, cmd.ID); err != nil {
		return err
	}

	uc.logger.Infow("order deleted", "order_id", cmd.ID)
	return nil
}
