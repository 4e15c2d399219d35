package usecases

import (
	"context"

	orderdto "anishop/internal/application/order/dto"
	"anishop/internal/domain/order"
	"anishop/internal/shared/errors"
	"anishop/internal/shared/logger"
)

type ListOrdersQuery struct {
	Status        string
	PaymentStatus string
	Search        string
	Page          int
	PageSize      int
}

type ListOrdersResult struct {
	Orders []orderdto.OrderView `json:"orders"`
	Total  int64                `json:"total"`
}

type ListOrdersUseCase struct {
	orders order.Repository
	logger logger.Interface
}

func NewListOrdersUseCase(orders order.Repository, logger logger.Interface) *ListOrdersUseCase {
	return &ListOrdersUseCase{orders: orders, logger: logger}
}

func (uc *ListOrdersUseCase) Execute(ctx context.Context, query ListOrdersQuery) (*ListOrdersResult, error) {
	filter := order.Filter{
		Search:   query.Search,
		Page:     query.Page,
		PageSize: query.PageSize,
	}

	if query.Status != "" {
		status, err := order.NewStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}
	if query.PaymentStatus != "" {
		ps, err := order.NewPaymentStatus(query.PaymentStatus)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.PaymentStatus = &ps
	}

	orders, total, err := uc.orders.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list orders", "error", err)
		return nil, err
	}

	views := make([]orderdto.OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, orderdto.NewOrderView(o))
	}
	return &ListOrdersResult{Orders: views, Total: total}, nil
}
