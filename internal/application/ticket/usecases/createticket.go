package usecases

import (
	"context"
	"time"

	"anishop/internal/domain/ticket"
	"anishop/internal/shared/errors"
	"anishop/internal/shared/logger"
)

type CreateTicketCommand struct {
	OrderCode   string
	Description string
	ContactLink string
	ImageURL    *string
}

type TicketView struct {
	ID          uint      `json:"id"`
	OrderCode   string    `json:"order_code"`
	Description string    `json:"description"`
	ContactLink string    `json:"contact_link"`
	ImageURL    *string   `json:"image_url,omitempty"`
	Status      string    `json:"status"`
	AdminNotes  *string   `json:"admin_notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewTicketView(t *ticket.Ticket) TicketView {
	return TicketView{
		ID:          t.ID(),
		OrderCode:   t.OrderCode(),
		Description: t.Description(),
		ContactLink: t.ContactLink(),
		ImageURL:    t.ImageURL(),
		Status:      t.Status().String(),
		AdminNotes:  t.AdminNotes(),
		CreatedAt:   t.CreatedAt(),
	}
}

// CreateTicketUseCase files a support request. The order code is accepted
// as-is; a ticket about a deleted or mistyped order is still valid input
// for a human to look at.
type CreateTicketUseCase struct {
	tickets ticket.Repository
	logger  logger.Interface
}

func NewCreateTicketUseCase(tickets ticket.Repository, logger logger.Interface) *CreateTicketUseCase {
	return &CreateTicketUseCase{tickets: tickets, logger: logger}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*TicketView, error) {
	t, err := ticket.NewTicket(cmd.OrderCode, cmd.Description, cmd.ContactLink, cmd.ImageURL)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.tickets.Save(ctx, t); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	uc.logger.Infow("support ticket created", "ticket_id", t.ID(), "order_code", t.OrderCode())
	view := NewTicketView(t)
	return &view, nil
}
