package bot

import (
	"context"

	"anishop/internal/shared/logger"
)

// OrderUpdate is the payload the storefront posts to the bot webhook when an
// admin changes an order's status or payment status.
type OrderUpdate struct {
	OrderCode     string  `json:"order_code" binding:"required"`
	Status        string  `json:"status" binding:"required"`
	PaymentStatus string  `json:"payment_status" binding:"required"`
	TrackingCode  *string `json:"tracking_code,omitempty"`
}

// UpdatePusher fans an order update out to every chat subscribed to the
// order code. Delivery is best effort per chat.
type UpdatePusher struct {
	bot    Sender
	subs   SubscriptionStore
	logger logger.Interface
}

func NewUpdatePusher(bot Sender, subs SubscriptionStore, logger logger.Interface) *UpdatePusher {
	return &UpdatePusher{bot: bot, subs: subs, logger: logger}
}

// HandleOrderUpdate returns how many chats were notified.
func (p *UpdatePusher) HandleOrderUpdate(ctx context.Context, ev OrderUpdate) (int, error) {
	chatIDs, err := p.subs.ChatsForOrder(ctx, ev.OrderCode)
	if err != nil {
		return 0, err
	}
	if len(chatIDs) == 0 {
		return 0, nil
	}

	text := orderUpdateMessage(ev)
	notified := 0
	for _, chatID := range chatIDs {
		if err := p.bot.SendMessage(ctx, chatID, text); err != nil {
			p.logger.Warnw("failed to push order update", "error", err, "chat_id", chatID, "order_code", ev.OrderCode)
			continue
		}
		notified++
	}

	p.logger.Infow("order update pushed", "order_code", ev.OrderCode, "chats", notified)
	return notified, nil
}
