package usecases

import (
	"context"
	"time"

	"anishop/internal/domain/order"
	"anishop/internal/shared/biztime"
	"anishop/internal/shared/logger"
)

// cancelledRetention is how long cancelled orders stay before being purged.
const cancelledRetention = 24 * time.Hour

type CleanupCancelledOrdersResult struct {
	Removed int64 `json:"removed"`
}

// CleanupCancelledOrdersUseCase purges cancelled orders past retention. Both
// the scheduled job and the bot cleanup endpoint call this.
type CleanupCancelledOrdersUseCase struct {
	orders order.Repository
	logger logger.Interface
}

func NewCleanupCancelledOrdersUseCase(orders order.Repository, logger logger.Interface) *CleanupCancelledOrdersUseCase {
	return &CleanupCancelledOrdersUseCase{orders: orders, logger: logger}
}

func (uc *CleanupCancelledOrdersUseCase) Execute(ctx context.Context) (*CleanupCancelledOrdersResult, error) {
	cutoff := biztime.NowUTC().Add(-cancelledRetention)

	removed, err := uc.orders.DeleteCancelledBefore(ctx, cutoff)
	if err != nil {
		uc.logger.Errorw("failed to clean up cancelled orders", "error", err)
		return nil, err
	}

	if removed > 0 {
		uc.logger.Infow("cancelled orders purged", "count", removed)
	}
	return &CleanupCancelledOrdersResult{Removed: removed}, nil
}
