package usecases

import (
	"context"
	"time"

	"anishop/internal/domain/user"
	"anishop/internal/shared/logger"
)

type ListUsersQuery struct {
	Page     int
	PageSize int
}

type UserView struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	IsBanned    bool      `json:"is_banned"`
	BanReason   string    `json:"ban_reason,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type ListUsersResult struct {
	Users []UserView `json:"users"`
	Total int64      `json:"total"`
}

// ListUsersUseCase joins accounts with their role and ban state for the
// admin user table.
type ListUsersUseCase struct {
	users  user.Repository
	logger logger.Interface
}

func NewListUsersUseCase(users user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{users: users, logger: logger}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error) {
	list, total, err := uc.users.List(ctx, query.Page, query.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, err
	}

	bans, err := uc.users.ListBans(ctx)
	if err != nil {
		uc.logger.Warnw("failed to load bans for user list", "error", err)
		bans = nil
	}
	banByUser := make(map[string]*user.Ban, len(bans))
	for _, b := range bans {
		banByUser[b.UserID()] = b
	}

	views := make([]UserView, 0, len(list))
	for _, u := range list {
		role, err := uc.users.GetRole(ctx, u.ID())
		if err != nil {
			role = user.RoleUser
		}

		view := UserView{
			ID:          u.ID(),
			Email:       u.Email(),
			DisplayName: u.DisplayName(),
			Role:        role.String(),
			CreatedAt:   u.CreatedAt(),
		}
		if b, ok := banByUser[u.ID()]; ok {
			view.IsBanned = true
			view.BanReason = b.Reason()
		}
		views = append(views, view)
	}

	return &ListUsersResult{Users: views, Total: total}, nil
}
