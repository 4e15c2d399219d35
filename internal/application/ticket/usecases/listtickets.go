package usecases

import (
	"context"

	"anishop/internal/domain/ticket"
	"anishop/internal/shared/logger"
)

type ListTicketsQuery struct {
	Page     int
	PageSize int
}

type ListTicketsResult struct {
	Tickets []TicketView `json:"tickets"`
	Total   int64        `json:"total"`
}

type ListTicketsUseCase struct {
	tickets ticket.Repository
	logger  logger.Interface
}

func NewListTicketsUseCase(tickets ticket.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{tickets: tickets, logger: logger}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	tickets, total, err := uc.tickets.List(ctx, query.Page, query.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	views := make([]TicketView, 0, len(tickets))
	for _, t := range tickets {
		views = append(views, NewTicketView(t))
	}
	return &ListTicketsResult{Tickets: views, Total: total}, nil
}
