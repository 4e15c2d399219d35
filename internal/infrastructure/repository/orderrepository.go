package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"anishop/internal/domain/order"
	apperrors "anishop/internal/shared/errors"
	"anishop/internal/infrastructure/persistence/mappers"
	"anishop/internal/infrastructure/persistence/models"
	"anishop/internal/shared/db"
)

type OrderRepository struct {
	db     *gorm.DB
	mapper mappers.OrderMapper
}

func NewOrderRepository(database *gorm.DB) *OrderRepository {
	return &OrderRepository{
		db:     database,
		mapper: mappers.NewOrderMapper(),
	}
}

func (r *OrderRepository) Save(ctx context.Context, o *order.Order) error {
	model := r.mapper.ToModel(o)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError(fmt.Sprintf("order code %s already exists", o.OrderCode()))
		}
		return fmt.Errorf("failed to save order: %w", err)
	}

	return o.SetID(model.ID)
}

func (r *OrderRepository) Update(ctx context.Context, o *order.Order) error {
	model := r.mapper.ToModel(o)

	result := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("id = ?", model.ID).
		Select("recipient_name", "phone_or_contact", "address", "status",
			"payment_status", "tracking_code", "admin_notes", "service_fee", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update order: %w", result.Error)
	}

	return nil
}

func (r *OrderRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.OrderModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete order: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("order not found")
	}
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	var model models.OrderModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("order not found")
		}
		return nil, fmt.Errorf("failed to find order: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *OrderRepository) FindByCode(ctx context.Context, code string) (*order.Order, error) {
	var model models.OrderModel
	// BINARY forces an exact, case-sensitive match regardless of collation.
	if err := r.db.WithContext(ctx).
		Where("BINARY order_code = ?", code).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("order not found")
		}
		return nil, fmt.Errorf("failed to find order: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *OrderRepository) FindByUserID(ctx context.Context, userID string) ([]*order.Order, error) {
	var orderModels []models.OrderModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders by user: %w", err)
	}
	return r.toDomainList(orderModels)
}

func (r *OrderRepository) List(ctx context.Context, filter order.Filter) ([]*order.Order, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.OrderModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.PaymentStatus != nil {
		query = query.Where("payment_status = ?", filter.PaymentStatus.String())
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where(
			"order_code LIKE ? OR recipient_name LIKE ? OR phone_or_contact LIKE ?",
			like, like, like,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	var orderModels []models.OrderModel
	if err := query.
		Scopes(db.Paginate(filter.Page, filter.PageSize)).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}

	orders, err := r.toDomainList(orderModels)
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *OrderRepository) CountCreatedSince(ctx context.Context, t time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("created_at >= ?", t.UnixMilli()).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}

func (r *OrderRepository) DeleteCancelledBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("status = ? AND created_at < ?", order.StatusCancelled.String(), cutoff.UnixMilli()).
		Delete(&models.OrderModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete cancelled orders: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *OrderRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("order_code = ?", code).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check order code: %w", err)
	}
	return count > 0, nil
}

func (r *OrderRepository) Stats(ctx context.Context) (*order.Stats, error) {
	stats := &order.Stats{}
	base := r.db.WithContext(ctx).Model(&models.OrderModel{})

	if err := base.Session(&gorm.Session{}).Count(&stats.Total).Error; err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	type statusCount struct {
		Status string
		Count  int64
	}
	var counts []statusCount
	if err := base.Session(&gorm.Session{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&counts).Error; err != nil {
		return nil, fmt.Errorf("failed to count orders by status: %w", err)
	}
	for _, c := range counts {
		switch order.Status(c.Status) {
		case order.StatusPending:
			stats.Pending = c.Count
		case order.StatusShipping:
			stats.Shipping = c.Count
		case order.StatusCompleted:
			stats.Completed = c.Count
		}
	}

	if err := base.Session(&gorm.Session{}).
		Where("payment_status = ?", order.PaymentPaid.String()).
		Select("COALESCE(SUM(service_fee), 0)").
		Scan(&stats.TotalFees).Error; err != nil {
		return nil, fmt.Errorf("failed to sum service fees: %w", err)
	}

	return stats, nil
}

func (r *OrderRepository) toDomainList(orderModels []models.OrderModel) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(orderModels))
	for i := range orderModels {
		o, err := r.mapper.ToDomain(&orderModels[i])
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
