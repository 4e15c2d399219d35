package voucher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func TestNewVoucher(t *testing.T) {
	t.Run("free voucher", func(t *testing.T) {
		v, err := NewVoucher("freeship", TypeFree, nil, "mien phi")
		require.NoError(t, err)
		assert.Equal(t, "FREESHIP", v.Code())
		assert.True(t, v.IsActive())
		assert.Equal(t, int64(0), v.ResolveFee())
	})

	t.Run("paid voucher", func(t *testing.T) {
		v, err := NewVoucher("VIP20", TypePaid, int64Ptr(20000), "")
		require.NoError(t, err)
		assert.Equal(t, int64(20000), v.ResolveFee())
	})

	t.Run("paid voucher requires positive fee", func(t *testing.T) {
		_, err := NewVoucher("VIP", TypePaid, nil, "")
		assert.Error(t, err)
		_, err = NewVoucher("VIP", TypePaid, int64Ptr(0), "")
		assert.Error(t, err)
		_, err = NewVoucher("VIP", TypePaid, int64Ptr(-100), "")
		assert.Error(t, err)
	})

	t.Run("free voucher rejects fee", func(t *testing.T) {
		_, err := NewVoucher("FREE", TypeFree, int64Ptr(1000), "")
		assert.Error(t, err)
	})

	t.Run("empty code", func(t *testing.T) {
		_, err := NewVoucher("  ", TypeFree, nil, "")
		assert.Error(t, err)
	})
}

func TestSetActive(t *testing.T) {
	v, err := NewVoucher("FLASH", TypeFree, nil, "")
	require.NoError(t, err)

	v.SetActive(false)
	assert.False(t, v.IsActive())
	v.SetActive(true)
	assert.True(t, v.IsActive())
}
