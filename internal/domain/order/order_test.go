package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNewOrder(t *testing.T) {
	t.Run("paid fee starts unpaid", func(t *testing.T) {
		o, err := NewOrder("ANI123456", nil, "https://shop.example/item/1", 2, nil,
			"Nguyen Van A", "0901234567", "12 Le Loi, Q1, HCMC", nil, nil, 20000)
		require.NoError(t, err)
		assert.Equal(t, StatusPending, o.Status())
		assert.Equal(t, PaymentUnpaid, o.PaymentStatus())
		assert.Equal(t, int64(20000), o.ServiceFee())
	})

	t.Run("zero fee starts paid", func(t *testing.T) {
		o, err := NewOrder("ANI123457", nil, "https://shop.example/item/1", 1, nil,
			"Nguyen Van A", "0901234567", "12 Le Loi, Q1, HCMC", nil, nil, 0)
		require.NoError(t, err)
		assert.Equal(t, StatusPending, o.Status())
		assert.Equal(t, PaymentPaid, o.PaymentStatus())
	})

	t.Run("guest order keeps nil user", func(t *testing.T) {
		o, err := NewOrder("ANI123458", nil, "https://shop.example/item/2", 1, nil,
			"Tran B", "@tran_b", "5 Hai Ba Trung, Hanoi", nil, strPtr("size M"), 0)
		require.NoError(t, err)
		assert.Nil(t, o.UserID())
		require.NotNil(t, o.Notes())
		assert.Equal(t, "size M", *o.Notes())
	})

	t.Run("validation failures", func(t *testing.T) {
		tests := []struct {
			name        string
			code        string
			productLink string
			quantity    int
			recipient   string
			contact     string
			address     string
			fee         int64
		}{
			{"empty code", "", "https://x", 1, "A", "0901", "addr", 0},
			{"empty product link", "ANI000001", "", 1, "A", "0901", "addr", 0},
			{"zero quantity", "ANI000001", "https://x", 0, "A", "0901", "addr", 0},
			{"negative quantity", "ANI000001", "https://x", -3, "A", "0901", "addr", 0},
			{"empty recipient", "ANI000001", "https://x", 1, "", "0901", "addr", 0},
			{"empty contact", "ANI000001", "https://x", 1, "A", "", "addr", 0},
			{"empty address", "ANI000001", "https://x", 1, "A", "0901", "", 0},
			{"negative fee", "ANI000001", "https://x", 1, "A", "0901", "addr", -1},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := NewOrder(tt.code, nil, tt.productLink, tt.quantity, nil,
					tt.recipient, tt.contact, tt.address, nil, nil, tt.fee)
				assert.Error(t, err)
			})
		}
	})
}

func TestReconstructOrder(t *testing.T) {
	now := time.Now().UTC()

	t.Run("valid", func(t *testing.T) {
		o, err := ReconstructOrder(7, "ANI765432", strPtr("u-1"), "https://x", 1, nil,
			"A", "0901", "addr", nil, nil, 5000, StatusShipping, PaymentPaid,
			strPtr("GHN123"), nil, now, now)
		require.NoError(t, err)
		assert.Equal(t, uint(7), o.ID())
		assert.Equal(t, StatusShipping, o.Status())
		require.NotNil(t, o.TrackingCode())
		assert.Equal(t, "GHN123", *o.TrackingCode())
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := ReconstructOrder(7, "ANI765432", nil, "https://x", 1, nil,
			"A", "0901", "addr", nil, nil, 0, Status("mystery"), PaymentPaid,
			nil, nil, now, now)
		assert.Error(t, err)
	})
}

func TestApplyAdminPatch(t *testing.T) {
	newOrder := func(t *testing.T) *Order {
		o, err := NewOrder("ANI111111", nil, "https://x", 1, nil,
			"A", "0901", "addr", nil, nil, 10000)
		require.NoError(t, err)
		return o
	}

	t.Run("partial patch only touches set fields", func(t *testing.T) {
		o := newOrder(t)
		st := StatusCancelled
		require.NoError(t, o.ApplyAdminPatch(AdminPatch{Status: &st}))
		assert.Equal(t, StatusCancelled, o.Status())
		assert.Equal(t, "A", o.RecipientName())
		assert.Equal(t, PaymentUnpaid, o.PaymentStatus())
	})

	t.Run("any status may move to any other", func(t *testing.T) {
		o := newOrder(t)
		for _, st := range AllStatuses() {
			st := st
			require.NoError(t, o.ApplyAdminPatch(AdminPatch{Status: &st}))
			assert.Equal(t, st, o.Status())
		}
		back := StatusPending
		require.NoError(t, o.ApplyAdminPatch(AdminPatch{Status: &back}))
		assert.Equal(t, StatusPending, o.Status())
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		o := newOrder(t)
		bad := Status("teleported")
		assert.Error(t, o.ApplyAdminPatch(AdminPatch{Status: &bad}))

		badPay := PaymentStatus("iou")
		assert.Error(t, o.ApplyAdminPatch(AdminPatch{PaymentStatus: &badPay}))

		negFee := int64(-5)
		assert.Error(t, o.ApplyAdminPatch(AdminPatch{ServiceFee: &negFee}))
	})

	t.Run("admin fee change does not rederive payment status", func(t *testing.T) {
		o := newOrder(t)
		zero := int64(0)
		require.NoError(t, o.ApplyAdminPatch(AdminPatch{ServiceFee: &zero}))
		assert.Equal(t, PaymentUnpaid, o.PaymentStatus())
	})
}
