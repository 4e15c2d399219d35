package ticket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTicket(t *testing.T) {
	tk, err := NewTicket("ANI123456", "hang ve thieu 1 mon", "https://zalo.me/abc", nil)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, tk.Status())
	assert.Nil(t, tk.AdminNotes())

	_, err = NewTicket("", "desc", "contact", nil)
	assert.Error(t, err)
	_, err = NewTicket("ANI123456", "", "contact", nil)
	assert.Error(t, err)
	_, err = NewTicket("ANI123456", "desc", "  ", nil)
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	tk, err := NewTicket("ANI123456", "desc", "contact", nil)
	require.NoError(t, err)

	notes := "da hoan tien"
	tk.Resolve(&notes)
	assert.Equal(t, StatusResolved, tk.Status())
	require.NotNil(t, tk.AdminNotes())
	assert.Equal(t, "da hoan tien", *tk.AdminNotes())

	// resolving again without notes keeps the previous notes
	tk.Resolve(nil)
	assert.Equal(t, StatusResolved, tk.Status())
	require.NotNil(t, tk.AdminNotes())
	assert.Equal(t, "da hoan tien", *tk.AdminNotes())
}
