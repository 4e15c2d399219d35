package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anishop/internal/domain/order"
	"anishop/internal/shared/logger"
)

func seedOrder(t *testing.T, repo *mockOrderRepo, fee int64) *order.Order {
	t.Helper()
	o, err := order.NewOrder("ANI555555", nil, "https://shop.example/item/9", 1, nil,
		"Tran B", "0909999999", "5 Hai Ba Trung, Hanoi", nil, nil, fee)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), o))
	return o
}

func waitForEvents(t *testing.T, notifier *mockBotNotifier, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if len(notifier.events) >= want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	require.Len(t, notifier.events, want)
}

func TestUpdateOrderStatusChangeNotifiesBot(t *testing.T) {
	orders := newMockOrderRepo()
	notifier := &mockBotNotifier{enabled: true}
	uc := NewUpdateOrderUseCase(orders, notifier, logger.NewLogger())

	o := seedOrder(t, orders, 10000)

	status := "shipping"
	view, err := uc.Execute(context.Background(), UpdateOrderCommand{
		ID:     o.ID(),
		Status: &status,
	})
	require.NoError(t, err)
	assert.Equal(t, "shipping", view.Status.Code)
	assert.Equal(t, "Đang giao", view.Status.Label)

	waitForEvents(t, notifier, 1)
	assert.Equal(t, "ANI555555", notifier.events[0].OrderCode)
	assert.Equal(t, "shipping", notifier.events[0].Status)
}

func TestUpdateOrderNoChangeSkipsNotification(t *testing.T) {
	orders := newMockOrderRepo()
	notifier := &mockBotNotifier{enabled: true}
	uc := NewUpdateOrderUseCase(orders, notifier, logger.NewLogger())

	o := seedOrder(t, orders, 10000)

	notes := "khach hen giao buoi chieu"
	_, err := uc.Execute(context.Background(), UpdateOrderCommand{
		ID:         o.ID(),
		AdminNotes: &notes,
	})
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, notifier.events)
}

func TestUpdateOrderRejectsInvalidStatus(t *testing.T) {
	orders := newMockOrderRepo()
	uc := NewUpdateOrderUseCase(orders, &mockBotNotifier{}, logger.NewLogger())

	o := seedOrder(t, orders, 0)

	bad := "levitating"
	_, err := uc.Execute(context.Background(), UpdateOrderCommand{ID: o.ID(), Status: &bad})
	require.Error(t, err)
	assert.Empty(t, orders.updated)
}

func TestUpdateOrderNotFound(t *testing.T) {
	orders := newMockOrderRepo()
	uc := NewUpdateOrderUseCase(orders, &mockBotNotifier{}, logger.NewLogger())

	status := "ordered"
	_, err := uc.Execute(context.Background(), UpdateOrderCommand{ID: 404, Status: &status})
	require.Error(t, err)
}
