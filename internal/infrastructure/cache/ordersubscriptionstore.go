package cache

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const (
	orderChatsPrefix = "bot:order:chats:"
	chatOrdersPrefix = "bot:chat:orders:"
)

// OrderSubscriptionStore keeps the chat↔order-code subscription sets used to
// push status updates. A chat subscribes when it places or tracks an order.
type OrderSubscriptionStore struct {
	client *redis.Client
}

func NewOrderSubscriptionStore(client *redis.Client) *OrderSubscriptionStore {
	return &OrderSubscriptionStore{client: client}
}

// Subscribe links a chat to an order code in both directions.
func (s *OrderSubscriptionStore) Subscribe(ctx context.Context, chatID int64, orderCode string) error {
	pipe := s.client.Pipeline()
	pipe.SAdd(ctx, orderChatsPrefix+orderCode, chatID)
	pipe.SAdd(ctx, chatOrdersPrefix+strconv.FormatInt(chatID, 10), orderCode)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to subscribe chat to order: %w", err)
	}
	return nil
}

// ChatsForOrder returns the chat IDs subscribed to an order code.
func (s *OrderSubscriptionStore) ChatsForOrder(ctx context.Context, orderCode string) ([]int64, error) {
	members, err := s.client.SMembers(ctx, orderChatsPrefix+orderCode).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load order subscribers: %w", err)
	}

	chatIDs := make([]int64, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			continue
		}
		chatIDs = append(chatIDs, id)
	}
	return chatIDs, nil
}

// OrdersForChat returns the order codes a chat is subscribed to.
func (s *OrderSubscriptionStore) OrdersForChat(ctx context.Context, chatID int64) ([]string, error) {
	codes, err := s.client.SMembers(ctx, chatOrdersPrefix+strconv.FormatInt(chatID, 10)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load chat subscriptions: %w", err)
	}
	return codes, nil
}
