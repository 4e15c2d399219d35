package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"anishop/internal/domain/order"
	"anishop/internal/domain/voucher"
	apperrors "anishop/internal/shared/errors"
	"anishop/internal/infrastructure/persistence/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.OrderModel{},
		&models.VoucherModel{},
		&models.SiteSettingModel{},
	)
	require.NoError(t, err)

	return db
}

func createTestOrder(t *testing.T, code string, fee int64) *order.Order {
	o, err := order.NewOrder(
		code, nil, "https://example.com/item", 1, nil,
		"Nguyen Van A", "0901234567", "12 Le Loi, Q1, HCMC",
		nil, nil, fee,
	)
	require.NoError(t, err)
	return o
}

func TestOrderRepository_Save(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	t.Run("save assigns id", func(t *testing.T) {
		o := createTestOrder(t, "ANI100001", 0)
		err := repo.Save(ctx, o)
		assert.NoError(t, err)
		assert.NotZero(t, o.ID())
	})

	t.Run("duplicate order code is a conflict", func(t *testing.T) {
		o1 := createTestOrder(t, "ANI100002", 0)
		require.NoError(t, repo.Save(ctx, o1))

		o2 := createTestOrder(t, "ANI100002", 0)
		err := repo.Save(ctx, o2)
		assert.Error(t, err)
		assert.True(t, apperrors.IsConflictError(err))
	})
}

func TestOrderRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	o := createTestOrder(t, "ANI100010", 20000)
	require.NoError(t, repo.Save(ctx, o))

	shipping := order.StatusShipping
	tracking := "GHN123456"
	err := o.ApplyAdminPatch(order.AdminPatch{
		Status:       &shipping,
		TrackingCode: &tracking,
	})
	require.NoError(t, err)
	require.NoError(t, repo.Update(ctx, o))

	found, err := repo.FindByID(ctx, o.ID())
	require.NoError(t, err)
	assert.Equal(t, order.StatusShipping, found.Status())
	require.NotNil(t, found.TrackingCode())
	assert.Equal(t, "GHN123456", *found.TrackingCode())
	// The patch must not touch fields it does not name.
	assert.Equal(t, "https://example.com/item", found.ProductLink())
	assert.Equal(t, int64(20000), found.ServiceFee())
}

func TestOrderRepository_FindByUserID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	userID := "7b6d4f1e-1111-2222-3333-444455556666"
	o, err := order.NewOrder(
		"ANI100020", &userID, "https://example.com/item", 2, nil,
		"Tran Thi B", "0912345678", "45 Nguyen Trai, Q5, HCMC",
		nil, nil, 0,
	)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, o))

	guest := createTestOrder(t, "ANI100021", 0)
	require.NoError(t, repo.Save(ctx, guest))

	orders, err := repo.FindByUserID(ctx, userID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "ANI100020", orders[0].OrderCode())
}

func TestOrderRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	o1 := createTestOrder(t, "ANI100030", 0)
	require.NoError(t, repo.Save(ctx, o1))

	o2 := createTestOrder(t, "ANI100031", 15000)
	require.NoError(t, repo.Save(ctx, o2))
	cancelled := order.StatusCancelled
	require.NoError(t, o2.ApplyAdminPatch(order.AdminPatch{Status: &cancelled}))
	require.NoError(t, repo.Update(ctx, o2))

	t.Run("no filter returns everything", func(t *testing.T) {
		orders, total, err := repo.List(ctx, order.Filter{Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, orders, 2)
	})

	t.Run("filter by status", func(t *testing.T) {
		status := order.StatusCancelled
		orders, total, err := repo.List(ctx, order.Filter{
			Status: &status, Page: 1, PageSize: 10,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, orders, 1)
		assert.Equal(t, "ANI100031", orders[0].OrderCode())
	})

	t.Run("search matches order code substring", func(t *testing.T) {
		orders, total, err := repo.List(ctx, order.Filter{
			Search: "100030", Page: 1, PageSize: 10,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, orders, 1)
		assert.Equal(t, "ANI100030", orders[0].OrderCode())
	})

	t.Run("pagination caps the page", func(t *testing.T) {
		orders, total, err := repo.List(ctx, order.Filter{Page: 1, PageSize: 1})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, orders, 1)
	})
}

func TestOrderRepository_CountCreatedSince(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	o := createTestOrder(t, "ANI100040", 0)
	require.NoError(t, repo.Save(ctx, o))

	count, err := repo.CountCreatedSince(ctx, time.Now().UTC().Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = repo.CountCreatedSince(ctx, time.Now().UTC().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestOrderRepository_DeleteCancelledBefore(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	// Reconstruct a stale cancelled order so created_at lands in the past.
	old := time.Now().UTC().Add(-48 * time.Hour)
	stale, err := order.ReconstructOrder(
		0, "ANI100050", nil, "https://example.com/item", 1, nil,
		"Nguyen Van A", "0901234567", "12 Le Loi, Q1, HCMC",
		nil, nil, 0,
		order.StatusCancelled, order.PaymentPaid,
		nil, nil, old, old,
	)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, stale))

	fresh := createTestOrder(t, "ANI100051", 0)
	require.NoError(t, repo.Save(ctx, fresh))
	cancelled := order.StatusCancelled
	require.NoError(t, fresh.ApplyAdminPatch(order.AdminPatch{Status: &cancelled}))
	require.NoError(t, repo.Update(ctx, fresh))

	removed, err := repo.DeleteCancelledBefore(ctx, time.Now().UTC().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	_, err = repo.FindByID(ctx, stale.ID())
	assert.True(t, apperrors.IsNotFoundError(err))

	// Recently cancelled orders survive the sweep.
	_, err = repo.FindByID(ctx, fresh.ID())
	assert.NoError(t, err)
}

func TestOrderRepository_ExistsByCode(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	o := createTestOrder(t, "ANI100060", 0)
	require.NoError(t, repo.Save(ctx, o))

	exists, err := repo.ExistsByCode(ctx, "ANI100060")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByCode(ctx, "ANI999999")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestOrderRepository_Stats(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	free := createTestOrder(t, "ANI100070", 0)
	require.NoError(t, repo.Save(ctx, free))

	paid := createTestOrder(t, "ANI100071", 20000)
	require.NoError(t, repo.Save(ctx, paid))
	paidStatus := order.PaymentPaid
	completed := order.StatusCompleted
	require.NoError(t, paid.ApplyAdminPatch(order.AdminPatch{
		Status:        &completed,
		PaymentStatus: &paidStatus,
	}))
	require.NoError(t, repo.Update(ctx, paid))

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Total)
	assert.Equal(t, int64(1), stats.Pending)
	assert.Equal(t, int64(1), stats.Completed)
	// Free orders are paid at creation, so both fees count; only the paid
	// voucher order contributes a non-zero amount.
	assert.Equal(t, int64(20000), stats.TotalFees)
}

func TestVoucherRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVoucherRepository(db)
	ctx := context.Background()

	fee := int64(20000)
	paid, err := voucher.NewVoucher("vip20", voucher.TypePaid, &fee, "Gói ưu tiên")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, paid))

	free, err := voucher.NewVoucher("FREESHIP", voucher.TypeFree, nil, "Miễn phí dịch vụ")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, free))

	t.Run("code is stored upper-cased", func(t *testing.T) {
		found, err := repo.FindActiveByCode(ctx, "vip20")
		require.NoError(t, err)
		assert.Equal(t, "VIP20", found.Code())
		require.NotNil(t, found.FeeAmount())
		assert.Equal(t, int64(20000), *found.FeeAmount())
	})

	t.Run("inactive voucher is invisible to active lookup", func(t *testing.T) {
		free.SetActive(false)
		require.NoError(t, repo.Update(ctx, free))

		_, err := repo.FindActiveByCode(ctx, "FREESHIP")
		assert.True(t, apperrors.IsNotFoundError(err))

		active, err := repo.ListActive(ctx)
		require.NoError(t, err)
		require.Len(t, active, 1)
		assert.Equal(t, "VIP20", active[0].Code())

		all, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("duplicate code is a conflict", func(t *testing.T) {
		dup, err := voucher.NewVoucher("VIP20", voucher.TypePaid, &fee, "")
		require.NoError(t, err)
		err = repo.Save(ctx, dup)
		assert.True(t, apperrors.IsConflictError(err))
	})
}
