package bot

import (
	"context"
	"sync"

	orderdto "anishop/internal/application/order/dto"
)

type memSessionStore struct {
	mu       sync.Mutex
	sessions map[int64]*Session
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: make(map[int64]*Session)}
}

func (s *memSessionStore) Get(_ context.Context, chatID int64) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[chatID]
	if !ok {
		return nil, nil
	}
	copied := *session
	return &copied, nil
}

func (s *memSessionStore) Save(_ context.Context, session *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *session
	s.sessions[session.ChatID] = &copied
	return nil
}

func (s *memSessionStore) Delete(_ context.Context, chatID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, chatID)
	return nil
}

type memSubscriptionStore struct {
	chatsByOrder map[string][]int64
	ordersByChat map[int64][]string
}

func newMemSubscriptionStore() *memSubscriptionStore {
	return &memSubscriptionStore{
		chatsByOrder: make(map[string][]int64),
		ordersByChat: make(map[int64][]string),
	}
}

func (s *memSubscriptionStore) Subscribe(_ context.Context, chatID int64, orderCode string) error {
	s.chatsByOrder[orderCode] = append(s.chatsByOrder[orderCode], chatID)
	s.ordersByChat[chatID] = append(s.ordersByChat[chatID], orderCode)
	return nil
}

func (s *memSubscriptionStore) ChatsForOrder(_ context.Context, orderCode string) ([]int64, error) {
	return s.chatsByOrder[orderCode], nil
}

func (s *memSubscriptionStore) OrdersForChat(_ context.Context, chatID int64) ([]string, error) {
	return s.ordersByChat[chatID], nil
}

type sentMessage struct {
	chatID int64
	text   string
}

type capturingSender struct {
	sent    []sentMessage
	sendErr error
}

func (s *capturingSender) SendMessage(_ context.Context, chatID int64, text string) error {
	if s.sendErr != nil {
		return s.sendErr
	}
	s.sent = append(s.sent, sentMessage{chatID: chatID, text: text})
	return nil
}

func (s *capturingSender) last() string {
	if len(s.sent) == 0 {
		return ""
	}
	return s.sent[len(s.sent)-1].text
}

type fakeBackend struct {
	placeRequests []PlaceOrderRequest
	placeResult   *PlacedOrder
	placeErr      error

	getResult *orderdto.OrderView
	getErr    error
}

func (b *fakeBackend) PlaceOrder(_ context.Context, req PlaceOrderRequest) (*PlacedOrder, error) {
	b.placeRequests = append(b.placeRequests, req)
	if b.placeErr != nil {
		return nil, b.placeErr
	}
	return b.placeResult, nil
}

func (b *fakeBackend) GetOrder(_ context.Context, _ string) (*orderdto.OrderView, error) {
	if b.getErr != nil {
		return nil, b.getErr
	}
	return b.getResult, nil
}
