package user

import "context"

// Repository persists users, roles and bans.
type Repository interface {
	Save(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, page, pageSize int) ([]*User, int64, error)

	GetRole(ctx context.Context, userID string) (Role, error)
	SetRole(ctx context.Context, userID string, role Role) error

	SaveBan(ctx context.Context, b *Ban) error
	RemoveBan(ctx context.Context, userID string) error
	FindBan(ctx context.Context, userID string) (*Ban, error)
	ListBans(ctx context.Context) ([]*Ban, error)
}
