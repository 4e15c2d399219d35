package usecases

import (
	"context"

	orderdto "anishop/internal/application/order/dto"
	"anishop/internal/domain/order"
	"anishop/internal/shared/errors"
	"anishop/internal/shared/logger"
)

type GetOrderQuery struct {
	ID        uint
	OrderCode string
}

// GetOrderUseCase returns the unmasked order for admin and bot surfaces.
// Either the ID or the code may be given.
type GetOrderUseCase struct {
	orders order.Repository
	logger logger.Interface
}

func NewGetOrderUseCase(orders order.Repository, logger logger.Interface) *GetOrderUseCase {
	return &GetOrderUseCase{orders: orders, logger: logger}
}

func (uc *GetOrderUseCase) Execute(ctx context.Context, query GetOrderQuery) (*orderdto.OrderView, error) {
	var (
		o   *order.Order
		err error
	)

	switch {
	case query.ID != 0:
		o, err = uc.orders.FindByID(ctx, query.ID)
	case query.OrderCode != "":
		o, err = uc.orders.FindByCode(ctx, query.OrderCode)
	default:
		return nil, errors.NewValidationError("order ID or code is required")
	}
	if err != nil {
		return nil, err
	}

	view := orderdto.NewOrderView(o)
	return &view, nil
}
