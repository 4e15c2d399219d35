package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"anishop/internal/application/bot"
)

const (
	botSessionPrefix = "bot:session:"
	botSessionTTL    = 30 * time.Minute
)

// BotSessionStore keeps conversation state in redis so the bot survives
// restarts mid-conversation. Sessions expire after 30 minutes of inactivity.
type BotSessionStore struct {
	client *redis.Client
}

func NewBotSessionStore(client *redis.Client) *BotSessionStore {
	return &BotSessionStore{client: client}
}

func (s *BotSessionStore) Get(ctx context.Context, chatID int64) (*bot.Session, error) {
	val, err := s.client.Get(ctx, s.key(chatID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get bot session: %w", err)
	}

	var session bot.Session
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, fmt.Errorf("failed to decode bot session: %w", err)
	}
	return &session, nil
}

// Save writes the session and refreshes its TTL.
func (s *BotSessionStore) Save(ctx context.Context, session *bot.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode bot session: %w", err)
	}
	if err := s.client.Set(ctx, s.key(session.ChatID), data, botSessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to save bot session: %w", err)
	}
	return nil
}

func (s *BotSessionStore) Delete(ctx context.Context, chatID int64) error {
	if err := s.client.Del(ctx, s.key(chatID)).Err(); err != nil {
		return fmt.Errorf("failed to delete bot session: %w", err)
	}
	return nil
}

func (s *BotSessionStore) key(chatID int64) string {
	return fmt.Sprintf("%s%d", botSessionPrefix, chatID)
}
