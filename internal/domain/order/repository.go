package order

import (
	"context"
	"time"
)

// Repository persists orders. Implementations live in the infrastructure
// layer; every operation is a single statement against the store, with no
// cross-statement transactions (see the placement flow for the documented
// count/insert race).
type Repository interface {
	Save(ctx context.Context, o *Order) error
	Update(ctx context.Context, o *Order) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*Order, error)
	// FindByCode looks up an order by its code, exact case-sensitive match.
	FindByCode(ctx context.Context, code string) (*Order, error)
	FindByUserID(ctx context.Context, userID string) ([]*Order, error)
	List(ctx context.Context, filter Filter) ([]*Order, int64, error)
	// CountCreatedSince counts orders created at or after t. Used by the
	// daily limit check with the business-timezone start of day.
	CountCreatedSince(ctx context.Context, t time.Time) (int64, error)
	// DeleteCancelledBefore hard-deletes cancelled orders created before the
	// cutoff and returns how many rows were removed.
	DeleteCancelledBefore(ctx context.Context, cutoff time.Time) (int64, error)
	// ExistsByCode reports whether any order already uses the given code.
	ExistsByCode(ctx context.Context, code string) (bool, error)
	Stats(ctx context.Context) (*Stats, error)
}

// Filter narrows admin order listings.
type Filter struct {
	Status        *Status
	PaymentStatus *PaymentStatus
	Search        string
	Page          int
	PageSize      int
}

// Stats aggregates the dashboard counters.
type Stats struct {
	Total     int64
	Pending   int64
	Shipping  int64
	Completed int64
	TotalFees int64
}

// CodeGenerator produces order codes guaranteed unique across all existing
// orders at generation time. The format is opaque to the placement flow.
type CodeGenerator interface {
	Generate(ctx context.Context) (string, error)
}
