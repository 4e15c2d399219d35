package mappers

import (
	"time"

	"anishop/internal/domain/ticket"
	"anishop/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and
// persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:          t.ID(),
		OrderCode:   t.OrderCode(),
		Description: t.Description(),
		ContactLink: t.ContactLink(),
		ImageURL:    t.ImageURL(),
		Status:      t.Status().String(),
		AdminNotes:  t.AdminNotes(),
		CreatedAt:   t.CreatedAt().UnixMilli(),
		UpdatedAt:   t.UpdatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	return ticket.ReconstructTicket(
		model.ID,
		model.OrderCode,
		model.Description,
		model.ContactLink,
		model.ImageURL,
		ticket.Status(model.Status),
		model.AdminNotes,
		time.UnixMilli(model.CreatedAt).UTC(),
		time.UnixMilli(model.UpdatedAt).UTC(),
	)
}
