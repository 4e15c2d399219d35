package voucher

import "context"

// Repository persists vouchers.
type Repository interface {
	Save(ctx context.Context, v *Voucher) error
	Update(ctx context.Context, v *Voucher) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*Voucher, error)
	// FindActiveByCode resolves a voucher by upper-cased code, returning only
	// active ones. A miss is reported as a not-found error.
	FindActiveByCode(ctx context.Context, code string) (*Voucher, error)
	List(ctx context.Context) ([]*Voucher, error)
	ListActive(ctx context.Context) ([]*Voucher, error)
}
