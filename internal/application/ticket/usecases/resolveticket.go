package usecases

import (
	"context"

	"anishop/internal/domain/ticket"
	"anishop/internal/shared/errors"
	"anishop/internal/shared/logger"
)

type ResolveTicketCommand struct {
	ID         uint
	AdminNotes *string
}

type ResolveTicketUseCase struct {
	tickets ticket.Repository
	logger  logger.Interface
}

func NewResolveTicketUseCase(tickets ticket.Repository, logger logger.Interface) *ResolveTicketUseCase {
	return &ResolveTicketUseCase{tickets: tickets, logger: logger}
}

func (uc *ResolveTicketUseCase) Execute(ctx context.Context, cmd ResolveTicketCommand) (*TicketView, error) {
	if cmd.ID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.tickets.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	t.Resolve(cmd.AdminNotes)
	if err := uc.tickets.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to resolve ticket", "error", err, "ticket_id", cmd.ID)
		return nil, err
	}

	uc.logger.Infow("ticket resolved", "ticket_id", t.ID())
	view := NewTicketView(t)
	return &view, nil
}
