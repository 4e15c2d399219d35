package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"anishop/internal/domain/ticket"
	apperrors "anishop/internal/shared/errors"
	"anishop/internal/infrastructure/persistence/mappers"
	"anishop/internal/infrastructure/persistence/models"
	"anishop/internal/shared/db"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(database *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     database,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)

	result := r.db.WithContext(ctx).
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select("status", "admin_notes", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	return nil
}

func (r *TicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) List(ctx context.Context, page, pageSize int) ([]*ticket.Ticket, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.TicketModel{}).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	var ticketModels []models.TicketModel
	if err := r.db.WithContext(ctx).
		Scopes(db.Paginate(page, pageSize)).
		Order("created_at DESC").
		Find(&ticketModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, 0, len(ticketModels))
	for i := range ticketModels {
		t, err := r.mapper.ToDomain(&ticketModels[i])
		if err != nil {
			return nil, 0, err
		}
		tickets = append(tickets, t)
	}
	return tickets, total, nil
}
