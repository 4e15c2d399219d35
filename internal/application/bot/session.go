package bot

import "context"

// Conversation steps, in the order the bot asks them. The step stored in a
// session names the question the bot is waiting on.
const (
	StepProductLink   = "product_link"
	StepQuantity      = "quantity"
	StepNotes         = "notes"
	StepRecipientName = "recipient_name"
	StepAddress       = "address"
	StepContact       = "contact"
)

// OrderDraft accumulates the answers collected so far.
type OrderDraft struct {
	ProductLink   string `json:"product_link,omitempty"`
	Quantity      int    `json:"quantity,omitempty"`
	Notes         string `json:"notes,omitempty"`
	RecipientName string `json:"recipient_name,omitempty"`
	Address       string `json:"address,omitempty"`
	Contact       string `json:"contact,omitempty"`
}

// Session is the per-chat conversation state. An absent session means the
// chat is idle; cancelling deletes the session from any step.
type Session struct {
	ChatID int64      `json:"chat_id"`
	Step   string     `json:"step"`
	Draft  OrderDraft `json:"draft"`
}

// SessionStore persists sessions keyed by chat ID. Get returns (nil, nil)
// when the chat has no active session.
type SessionStore interface {
	Get(ctx context.Context, chatID int64) (*Session, error)
	Save(ctx context.Context, session *Session) error
	Delete(ctx context.Context, chatID int64) error
}

// SubscriptionStore links chats to the order codes they should receive
// status pushes for.
type SubscriptionStore interface {
	Subscribe(ctx context.Context, chatID int64, orderCode string) error
	ChatsForOrder(ctx context.Context, orderCode string) ([]int64, error)
	OrdersForChat(ctx context.Context, chatID int64) ([]string, error)
}

// Sender sends chat messages. Satisfied by the Telegram client.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}
