package usecases

import (
	"context"

	"anishop/internal/domain/order"
	"anishop/internal/shared/logger"
)

type GetOrderStatsResult struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Shipping  int64 `json:"shipping"`
	Completed int64 `json:"completed"`
	TotalFees int64 `json:"total_fees"`
}

// GetOrderStatsUseCase aggregates the admin dashboard counters.
type GetOrderStatsUseCase struct {
	orders order.Repository
	logger logger.Interface
}

func NewGetOrderStatsUseCase(orders order.Repository, logger logger.Interface) *GetOrderStatsUseCase {
	return &GetOrderStatsUseCase{orders: orders, logger: logger}
}

func (uc *GetOrderStatsUseCase) Execute(ctx context.Context) (*GetOrderStatsResult, error) {
	stats, err := uc.orders.Stats(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load order stats", "error", err)
		return nil, err
	}

	return &GetOrderStatsResult{
		Total:     stats.Total,
		Pending:   stats.Pending,
		Shipping:  stats.Shipping,
		Completed: stats.Completed,
		TotalFees: stats.TotalFees,
	}, nil
}
