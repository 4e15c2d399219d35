package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anishop/internal/domain/order"
	"anishop/internal/shared/logger"
)

func TestTrackOrderMasksContactAndAddress(t *testing.T) {
	orders := newMockOrderRepo()
	vouchers := newMockVoucherRepo()
	settings := newMockSettingRepo()
	uc := NewTrackOrderUseCase(orders, vouchers, settings, logger.NewLogger())

	o, err := order.NewOrder("ANI777777", nil, "https://shop.example/item/7", 1, nil,
		"Nguyen Van A", "0123456789", "12 Le Loi, Q1, HCMC", nil, nil, 0)
	require.NoError(t, err)
	require.NoError(t, orders.Save(context.Background(), o))

	result, err := uc.Execute(context.Background(), TrackOrderQuery{OrderCode: "ANI777777"})
	require.NoError(t, err)

	assert.Equal(t, "0123******", result.Order.PhoneOrContact)
	assert.Equal(t, "12 Le Loi, Q1, ***", result.Order.Address)
	assert.Equal(t, "Chờ duyệt", result.Order.Status.Label)
	assert.Nil(t, result.Bank, "paid order needs no bank details")
}

func TestTrackOrderUnpaidShowsBankDetails(t *testing.T) {
	orders := newMockOrderRepo()
	vouchers := newMockVoucherRepo()
	settings := newMockSettingRepo()
	settings.values["bank_name"] = "VCB"
	settings.values["bank_account_number"] = "0071000123456"
	settings.values["bank_account_name"] = "ANISHOP"
	uc := NewTrackOrderUseCase(orders, vouchers, settings, logger.NewLogger())

	o, err := order.NewOrder("ANI777778", nil, "https://shop.example/item/7", 1, nil,
		"Nguyen Van A", "0123456789", "12 Le Loi, Q1, HCMC", nil, nil, 15000)
	require.NoError(t, err)
	require.NoError(t, orders.Save(context.Background(), o))

	result, err := uc.Execute(context.Background(), TrackOrderQuery{OrderCode: "ANI777778"})
	require.NoError(t, err)

	require.NotNil(t, result.Bank)
	assert.Equal(t, "VCB", result.Bank.BankName)
	assert.Equal(t, "0071000123456", result.Bank.AccountNumber)
}

func TestTrackOrderExactCodeMatch(t *testing.T) {
	orders := newMockOrderRepo()
	uc := NewTrackOrderUseCase(orders, newMockVoucherRepo(), newMockSettingRepo(), logger.NewLogger())

	o, err := order.NewOrder("ANI777779", nil, "https://x", 1, nil, "A", "0901", "addr", nil, nil, 0)
	require.NoError(t, err)
	require.NoError(t, orders.Save(context.Background(), o))

	_, err = uc.Execute(context.Background(), TrackOrderQuery{OrderCode: "ani777779"})
	require.Error(t, err)

	_, err = uc.Execute(context.Background(), TrackOrderQuery{OrderCode: "ANI777779"})
	require.NoError(t, err)
}
