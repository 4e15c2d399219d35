package usecases

import (
	"context"

	orderdto "anishop/internal/application/order/dto"
	"anishop/internal/domain/order"
	"anishop/internal/shared/errors"
	"anishop/internal/shared/logger"
)

type ListMyOrdersQuery struct {
	UserID string
}

type ListMyOrdersResult struct {
	Orders []orderdto.OrderView `json:"orders"`
}

// ListMyOrdersUseCase returns the authenticated customer's own orders,
// unmasked since they belong to the caller.
type ListMyOrdersUseCase struct {
	orders order.Repository
	logger logger.Interface
}

func NewListMyOrdersUseCase(orders order.Repository, logger logger.Interface) *ListMyOrdersUseCase {
	return &ListMyOrdersUseCase{orders: orders, logger: logger}
}

func (uc *ListMyOrdersUseCase) Execute(ctx context.Context, query ListMyOrdersQuery) (*ListMyOrdersResult, error) {
	if query.UserID == "" {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	orders, err := uc.orders.FindByUserID(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to list user orders", "error", err, "user_id", query.UserID)
		return nil, err
	}

	views := make([]orderdto.OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, orderdto.NewOrderView(o))
	}
	return &ListMyOrdersResult{Orders: views}, nil
}
