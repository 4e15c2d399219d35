package usecases

import (
	"context"
	"fmt"

	"anishop/internal/domain/user"
	"anishop/internal/shared/errors"
)

type mockUserRepo struct {
	byID    map[string]*user.User
	byEmail map[string]*user.User
	roles   map[string]user.Role
	bans    map[string]*user.Ban
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		byID:    make(map[string]*user.User),
		byEmail: make(map[string]*user.User),
		roles:   make(map[string]user.Role),
		bans:    make(map[string]*user.Ban),
	}
}

func (m *mockUserRepo) Save(_ context.Context, u *user.User) error {
	if _, ok := m.byEmail[u.Email()]; ok {
		return errors.NewConflictError("email already registered")
	}
	m.byID[u.ID()] = u
	m.byEmail[u.Email()] = u
	return nil
}

func (m *mockUserRepo) FindByID(_ context.Context, id string) (*user.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return nil, errors.NewNotFoundError("user not found")
	}
	return u, nil
}

func (m *mockUserRepo) FindByEmail(_ context.Context, email string) (*user.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return nil, errors.NewNotFoundError("user not found")
	}
	return u, nil
}

func (m *mockUserRepo) List(_ context.Context, _, _ int) ([]*user.User, int64, error) {
	out := make([]*user.User, 0, len(m.byID))
	for _, u := range m.byID {
		out = append(out, u)
	}
	return out, int64(len(out)), nil
}

func (m *mockUserRepo) GetRole(_ context.Context, userID string) (user.Role, error) {
	if r, ok := m.roles[userID]; ok {
		return r, nil
	}
	return user.RoleUser, nil
}

func (m *mockUserRepo) SetRole(_ context.Context, userID string, role user.Role) error {
	if role == user.RoleUser {
		delete(m.roles, userID)
		return nil
	}
	m.roles[userID] = role
	return nil
}

func (m *mockUserRepo) SaveBan(_ context.Context, b *user.Ban) error {
	m.bans[b.UserID()] = b
	return nil
}

func (m *mockUserRepo) RemoveBan(_ context.Context, userID string) error {
	if _, ok := m.bans[userID]; !ok {
		return errors.NewNotFoundError("ban not found")
	}
	delete(m.bans, userID)
	return nil
}

func (m *mockUserRepo) FindBan(_ context.Context, userID string) (*user.Ban, error) {
	b, ok := m.bans[userID]
	if !ok {
		return nil, errors.NewNotFoundError("ban not found")
	}
	return b, nil
}

func (m *mockUserRepo) ListBans(_ context.Context) ([]*user.Ban, error) {
	out := make([]*user.Ban, 0, len(m.bans))
	for _, b := range m.bans {
		out = append(out, b)
	}
	return out, nil
}

// plainHasher stores passwords with a marker prefix so tests avoid bcrypt.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (plainHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password {
		return fmt.Errorf("password mismatch")
	}
	return nil
}

type staticTokenIssuer struct{}

func (staticTokenIssuer) Generate(userID string, _ user.Role) (string, int64, error) {
	return "token-" + userID, 3600, nil
}
