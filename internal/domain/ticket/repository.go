package ticket

import "context"

// Repository persists support tickets. Tickets are never auto-deleted.
type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	FindByID(ctx context.Context, id uint) (*Ticket, error)
	List(ctx context.Context, page, pageSize int) ([]*Ticket, int64, error)
}
