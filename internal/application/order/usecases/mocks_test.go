package usecases

import (
	"context"
	"time"

	"anishop/internal/domain/order"
	"anishop/internal/domain/setting"
	"anishop/internal/domain/voucher"
	"anishop/internal/infrastructure/email"
	"anishop/internal/infrastructure/services"
	"anishop/internal/shared/errors"
)

type mockOrderRepo struct {
	saved       []*order.Order
	saveErr     error
	orders      map[string]*order.Order
	ordersByID  map[uint]*order.Order
	countSince  int64
	countErr    error
	deleted     []uint
	removed     int64
	updateErr   error
	updated     []*order.Order
	nextID      uint
	statsResult *order.Stats
}

func newMockOrderRepo() *mockOrderRepo {
	return &mockOrderRepo{
		orders:     make(map[string]*order.Order),
		ordersByID: make(map[uint]*order.Order),
		nextID:     1,
	}
}

func (m *mockOrderRepo) Save(ctx context.Context, o *order.Order) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	if _, exists := m.orders[o.OrderCode()]; exists {
		return errors.NewConflictError("order code already exists")
	}
	_ = o.SetID(m.nextID)
	m.nextID++
	m.saved = append(m.saved, o)
	m.orders[o.OrderCode()] = o
	m.ordersByID[o.ID()] = o
	return nil
}

func (m *mockOrderRepo) Update(ctx context.Context, o *order.Order) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updated = append(m.updated, o)
	return nil
}

func (m *mockOrderRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := m.ordersByID[id]; !ok {
		return errors.NewNotFoundError("order not found")
	}
	m.deleted = append(m.deleted, id)
	delete(m.ordersByID, id)
	return nil
}

func (m *mockOrderRepo) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	if o, ok := m.ordersByID[id]; ok {
		return o, nil
	}
	return nil, errors.NewNotFoundError("order not found")
}

func (m *mockOrderRepo) FindByCode(ctx context.Context, code string) (*order.Order, error) {
	if o, ok := m.orders[code]; ok {
		return o, nil
	}
	return nil, errors.NewNotFoundError("order not found")
}

func (m *mockOrderRepo) FindByUserID(ctx context.Context, userID string) ([]*order.Order, error) {
	var result []*order.Order
	for _, o := range m.ordersByID {
		if o.UserID() != nil && *o.UserID() == userID {
			result = append(result, o)
		}
	}
	return result, nil
}

func (m *mockOrderRepo) List(ctx context.Context, filter order.Filter) ([]*order.Order, int64, error) {
	var result []*order.Order
	for _, o := range m.ordersByID {
		result = append(result, o)
	}
	return result, int64(len(result)), nil
}

func (m *mockOrderRepo) CountCreatedSince(ctx context.Context, t time.Time) (int64, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	return m.countSince, nil
}

func (m *mockOrderRepo) DeleteCancelledBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return m.removed, nil
}

func (m *mockOrderRepo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	_, ok := m.orders[code]
	return ok, nil
}

func (m *mockOrderRepo) Stats(ctx context.Context) (*order.Stats, error) {
	if m.statsResult != nil {
		return m.statsResult, nil
	}
	return &order.Stats{}, nil
}

type mockVoucherRepo struct {
	byCode map[string]*voucher.Voucher
	byID   map[uint]*voucher.Voucher
	err    error
}

func newMockVoucherRepo() *mockVoucherRepo {
	return &mockVoucherRepo{
		byCode: make(map[string]*voucher.Voucher),
		byID:   make(map[uint]*voucher.Voucher),
	}
}

func (m *mockVoucherRepo) add(v *voucher.Voucher) {
	if v.IsActive() {
		m.byCode[v.Code()] = v
	}
	m.byID[v.ID()] = v
}

func (m *mockVoucherRepo) Save(ctx context.Context, v *voucher.Voucher) error   { return nil }
func (m *mockVoucherRepo) Update(ctx context.Context, v *voucher.Voucher) error { return nil }
func (m *mockVoucherRepo) Delete(ctx context.Context, id uint) error            { return nil }

func (m *mockVoucherRepo) FindByID(ctx context.Context, id uint) (*voucher.Voucher, error) {
	if v, ok := m.byID[id]; ok {
		return v, nil
	}
	return nil, errors.NewNotFoundError("voucher not found")
}

func (m *mockVoucherRepo) FindActiveByCode(ctx context.Context, code string) (*voucher.Voucher, error) {
	if m.err != nil {
		return nil, m.err
	}
	if v, ok := m.byCode[code]; ok {
		return v, nil
	}
	return nil, errors.NewNotFoundError("voucher not found")
}

func (m *mockVoucherRepo) List(ctx context.Context) ([]*voucher.Voucher, error)       { return nil, nil }
func (m *mockVoucherRepo) ListActive(ctx context.Context) ([]*voucher.Voucher, error) { return nil, nil }

type mockSettingRepo struct {
	values map[string]string
	getErr error
}

func newMockSettingRepo() *mockSettingRepo {
	return &mockSettingRepo{values: make(map[string]string)}
}

func (m *mockSettingRepo) Upsert(ctx context.Context, s *setting.SiteSetting) error {
	m.values[s.Key()] = s.Value()
	return nil
}

func (m *mockSettingRepo) Get(ctx context.Context, key string) (*setting.SiteSetting, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if v, ok := m.values[key]; ok {
		return setting.ReconstructSiteSetting(key, v, time.Now()), nil
	}
	return nil, errors.NewNotFoundError("setting not found")
}

func (m *mockSettingRepo) GetAll(ctx context.Context) ([]*setting.SiteSetting, error) {
	var result []*setting.SiteSetting
	for k, v := range m.values {
		result = append(result, setting.ReconstructSiteSetting(k, v, time.Now()))
	}
	return result, nil
}

func (m *mockSettingRepo) GetMany(ctx context.Context, keys []string) (map[string]string, error) {
	result := make(map[string]string)
	for _, k := range keys {
		if v, ok := m.values[k]; ok {
			result[k] = v
		}
	}
	return result, nil
}

type mockCodeGenerator struct {
	codes []string
	next  int
	err   error
}

func (m *mockCodeGenerator) Generate(ctx context.Context) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	if m.next < len(m.codes) {
		code := m.codes[m.next]
		m.next++
		return code, nil
	}
	return "ANI999999", nil
}

type mockMailer struct {
	sent []string
}

func (m *mockMailer) SendOrderConfirmation(ctx context.Context, to string, data email.OrderConfirmation) error {
	m.sent = append(m.sent, to)
	return nil
}

type mockBotNotifier struct {
	enabled bool
	events  []services.OrderUpdateEvent
}

func (m *mockBotNotifier) Enabled() bool { return m.enabled }

func (m *mockBotNotifier) NotifyOrderUpdate(ctx context.Context, event services.OrderUpdateEvent) error {
	m.events = append(m.events, event)
	return nil
}
