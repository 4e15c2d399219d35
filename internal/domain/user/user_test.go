package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	u, err := NewUser("uuid-1", "  Alice@Example.COM ", "hash", "Alice")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", u.Email())

	_, err = NewUser("", "a@b.c", "hash", "")
	assert.Error(t, err)
	_, err = NewUser("uuid-1", "not-an-email", "hash", "")
	assert.Error(t, err)
	_, err = NewUser("uuid-1", "a@b.c", "", "")
	assert.Error(t, err)
}

func TestRoleToggled(t *testing.T) {
	assert.Equal(t, RoleUser, RoleAdmin.Toggled())
	assert.Equal(t, RoleAdmin, RoleUser.Toggled())

	_, err := NewRole("superuser")
	assert.Error(t, err)
}

func TestNewBan(t *testing.T) {
	b, err := NewBan("uuid-1", "spam orders", "admin-uuid")
	require.NoError(t, err)
	assert.Equal(t, "spam orders", b.Reason())

	_, err = NewBan("uuid-1", "  ", "admin-uuid")
	assert.Error(t, err)
}
