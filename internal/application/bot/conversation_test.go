package bot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orderdto "anishop/internal/application/order/dto"
	"anishop/internal/domain/order"
	"anishop/internal/infrastructure/telegram"
	"anishop/internal/shared/errors"
	"anishop/internal/shared/logger"
)

const testChatID = int64(42)

type conversationFixture struct {
	handler  *ConversationHandler
	sender   *capturingSender
	sessions *memSessionStore
	subs     *memSubscriptionStore
	backend  *fakeBackend
}

func newConversationFixture() *conversationFixture {
	sender := &capturingSender{}
	sessions := newMemSessionStore()
	subs := newMemSubscriptionStore()
	backend := &fakeBackend{
		placeResult: &PlacedOrder{OrderCode: "ANI123456", ID: 1, Status: "pending", ServiceFee: 20000},
	}
	return &conversationFixture{
		handler:  NewConversationHandler(sender, sessions, subs, backend, logger.NewLogger()),
		sender:   sender,
		sessions: sessions,
		subs:     subs,
		backend:  backend,
	}
}

func (f *conversationFixture) say(t *testing.T, text string) {
	t.Helper()
	f.handler.HandleUpdate(context.Background(), telegram.Update{
		UpdateID: 1,
		Message: &telegram.Message{
			Chat: telegram.Chat{ID: testChatID},
			Text: text,
		},
	})
}

func TestOrderConversation(t *testing.T) {
	t.Run("completes the full flow and submits", func(t *testing.T) {
		f := newConversationFixture()

		f.say(t, "/order")
		f.say(t, "https://example.com/item/123")
		f.say(t, "2")
		f.say(t, "màu đỏ, size M")
		f.say(t, "Nguyen Van A")
		f.say(t, "12 Le Loi, Q1, HCMC")
		f.say(t, "0901234567")

		require.Len(t, f.backend.placeRequests, 1)
		req := f.backend.placeRequests[0]
		assert.Equal(t, "https://example.com/item/123", req.ProductLink)
		assert.Equal(t, 2, req.Quantity)
		require.NotNil(t, req.Notes)
		assert.Equal(t, "màu đỏ, size M", *req.Notes)
		assert.Equal(t, "Nguyen Van A", req.RecipientName)
		assert.Equal(t, "12 Le Loi, Q1, HCMC", req.Address)
		assert.Equal(t, "0901234567", req.PhoneOrContact)

		assert.Contains(t, f.sender.last(), "ANI123456")
		assert.Contains(t, f.sender.last(), "20.000₫")

		session, err := f.sessions.Get(context.Background(), testChatID)
		require.NoError(t, err)
		assert.Nil(t, session, "session should be cleared after submit")

		codes, err := f.subs.OrdersForChat(context.Background(), testChatID)
		require.NoError(t, err)
		assert.Equal(t, []string{"ANI123456"}, codes)
	})

	t.Run("skips notes with a dash", func(t *testing.T) {
		f := newConversationFixture()

		f.say(t, "/order")
		f.say(t, "https://example.com/item")
		f.say(t, "1")
		f.say(t, "-")
		f.say(t, "B")
		f.say(t, "addr")
		f.say(t, "contact")

		require.Len(t, f.backend.placeRequests, 1)
		assert.Nil(t, f.backend.placeRequests[0].Notes)
	})

	t.Run("re-asks on a non-http product link", func(t *testing.T) {
		f := newConversationFixture()

		f.say(t, "/order")
		f.say(t, "not a link")

		session, err := f.sessions.Get(context.Background(), testChatID)
		require.NoError(t, err)
		require.NotNil(t, session)
		assert.Equal(t, StepProductLink, session.Step)
	})

	t.Run("re-asks on invalid quantity", func(t *testing.T) {
		f := newConversationFixture()

		f.say(t, "/order")
		f.say(t, "https://example.com/item")
		for _, input := range []string{"abc", "0", "-3"} {
			f.say(t, input)
			session, err := f.sessions.Get(context.Background(), testChatID)
			require.NoError(t, err)
			require.NotNil(t, session)
			assert.Equal(t, StepQuantity, session.Step)
		}
	})

	t.Run("cancel returns to idle from any step", func(t *testing.T) {
		f := newConversationFixture()

		f.say(t, "/order")
		f.say(t, "https://example.com/item")
		f.say(t, "/cancel")

		session, err := f.sessions.Get(context.Background(), testChatID)
		require.NoError(t, err)
		assert.Nil(t, session)

		f.say(t, "stray text")
		assert.Empty(t, f.backend.placeRequests)
	})

	t.Run("daily limit failure gets its own message", func(t *testing.T) {
		f := newConversationFixture()
		f.backend.placeErr = errors.NewRateLimitedError("daily order limit reached")

		f.say(t, "/order")
		f.say(t, "https://example.com/item")
		f.say(t, "1")
		f.say(t, "-")
		f.say(t, "B")
		f.say(t, "addr")
		f.say(t, "contact")

		assert.Contains(t, f.sender.last(), "ngày mai")

		session, err := f.sessions.Get(context.Background(), testChatID)
		require.NoError(t, err)
		assert.Nil(t, session)
	})

	t.Run("command with bot mention still matches", func(t *testing.T) {
		f := newConversationFixture()
		f.say(t, "/order@AniShopBot")

		session, err := f.sessions.Get(context.Background(), testChatID)
		require.NoError(t, err)
		require.NotNil(t, session)
		assert.Equal(t, StepProductLink, session.Step)
	})
}

func TestTrackCommand(t *testing.T) {
	trackingCode := "GHN123"
	view := &orderdto.OrderView{
		OrderCode:     "ANI654321",
		Quantity:      1,
		ServiceFee:    15000,
		Status:        orderdto.NewStatusView(order.StatusShipping),
		PaymentStatus: orderdto.NewPaymentStatusView(order.PaymentPaid),
		TrackingCode:  &trackingCode,
	}

	t.Run("shows order details and subscribes", func(t *testing.T) {
		f := newConversationFixture()
		f.backend.getResult = view

		f.say(t, "/track ANI654321")

		last := f.sender.last()
		assert.Contains(t, last, "ANI654321")
		assert.Contains(t, last, "Đang giao")
		assert.Contains(t, last, "GHN123")
		assert.Contains(t, last, "15.000₫")

		codes, err := f.subs.OrdersForChat(context.Background(), testChatID)
		require.NoError(t, err)
		assert.Equal(t, []string{"ANI654321"}, codes)
	})

	t.Run("tk alias works", func(t *testing.T) {
		f := newConversationFixture()
		f.backend.getResult = view

		f.say(t, "/tk ANI654321")
		assert.Contains(t, f.sender.last(), "ANI654321")
	})

	t.Run("unknown order", func(t *testing.T) {
		f := newConversationFixture()
		f.backend.getErr = errors.NewNotFoundError("order not found")

		f.say(t, "/track ANI000000")
		assert.Contains(t, f.sender.last(), "Không tìm thấy")
	})

	t.Run("no argument and no subscriptions prints usage", func(t *testing.T) {
		f := newConversationFixture()
		f.say(t, "/track")
		assert.Contains(t, f.sender.last(), "/track <mã đơn hàng>")
	})

	t.Run("no argument lists subscribed orders", func(t *testing.T) {
		f := newConversationFixture()
		require.NoError(t, f.subs.Subscribe(context.Background(), testChatID, "ANI111111"))

		f.say(t, "/track")
		assert.Contains(t, f.sender.last(), "ANI111111")
	})
}

func TestUpdatePusher(t *testing.T) {
	t.Run("pushes to all subscribed chats", func(t *testing.T) {
		sender := &capturingSender{}
		subs := newMemSubscriptionStore()
		require.NoError(t, subs.Subscribe(context.Background(), 1, "ANI123456"))
		require.NoError(t, subs.Subscribe(context.Background(), 2, "ANI123456"))

		pusher := NewUpdatePusher(sender, subs, logger.NewLogger())
		notified, err := pusher.HandleOrderUpdate(context.Background(), OrderUpdate{
			OrderCode:     "ANI123456",
			Status:        "shipping",
			PaymentStatus: "paid",
		})
		require.NoError(t, err)
		assert.Equal(t, 2, notified)
		require.Len(t, sender.sent, 2)
		assert.Contains(t, sender.sent[0].text, "Đang giao")
		assert.Contains(t, sender.sent[0].text, "Đã thanh toán")
	})

	t.Run("no subscribers is a no-op", func(t *testing.T) {
		sender := &capturingSender{}
		pusher := NewUpdatePusher(sender, newMemSubscriptionStore(), logger.NewLogger())

		notified, err := pusher.HandleOrderUpdate(context.Background(), OrderUpdate{
			OrderCode:     "ANI999999",
			Status:        "completed",
			PaymentStatus: "paid",
		})
		require.NoError(t, err)
		assert.Zero(t, notified)
		assert.Empty(t, sender.sent)
	})
}
