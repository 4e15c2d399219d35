package order

import (
	"fmt"
	"strings"
	"time"

	"anishop/internal/shared/biztime"
)

// Order is an intermediated purchase request. It is created once by the
// placement flow and mutated only through admin transitions afterwards.
type Order struct {
	id             uint
	orderCode      string
	userID         *string
	productLink    string
	quantity       int
	voucherID      *uint
	recipientName  string
	phoneOrContact string
	address        string
	email          *string
	notes          *string
	serviceFee     int64
	status         Status
	paymentStatus  PaymentStatus
	trackingCode   *string
	adminNotes     *string
	createdAt      time.Time
	updatedAt      time.Time
}

// NewOrder creates an order in its initial state. The service fee is the
// voucher snapshot resolved by the placement flow (0 when no voucher or a
// free voucher applies). The initial payment status derives from the fee:
// a positive fee starts unpaid, a zero fee starts paid.
func NewOrder(
	orderCode string,
	userID *string,
	productLink string,
	quantity int,
	voucherID *uint,
	recipientName string,
	phoneOrContact string,
	address string,
	email *string,
	notes *string,
	serviceFee int64,
) (*Order, error) {
	if strings.TrimSpace(orderCode) == "" {
		return nil, fmt.Errorf("order code is required")
	}
	if strings.TrimSpace(productLink) == "" {
		return nil, fmt.Errorf("product link is required")
	}
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1")
	}
	if strings.TrimSpace(recipientName) == "" {
		return nil, fmt.Errorf("recipient name is required")
	}
	if strings.TrimSpace(phoneOrContact) == "" {
		return nil, fmt.Errorf("contact is required")
	}
	if strings.TrimSpace(address) == "" {
		return nil, fmt.Errorf("address is required")
	}
	if serviceFee < 0 {
		return nil, fmt.Errorf("service fee cannot be negative")
	}

	paymentStatus := PaymentPaid
	if serviceFee > 0 {
		paymentStatus = PaymentUnpaid
	}

	now := biztime.NowUTC()
	return &Order{
		orderCode:      orderCode,
		userID:         userID,
		productLink:    productLink,
		quantity:       quantity,
		voucherID:      voucherID,
		recipientName:  recipientName,
		phoneOrContact: phoneOrContact,
		address:        address,
		email:          email,
		notes:          notes,
		serviceFee:     serviceFee,
		status:         StatusPending,
		paymentStatus:  paymentStatus,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// ReconstructOrder rebuilds an order from the persistence layer.
func ReconstructOrder(
	id uint,
	orderCode string,
	userID *string,
	productLink string,
	quantity int,
	voucherID *uint,
	recipientName string,
	phoneOrContact string,
	address string,
	email *string,
	notes *string,
	serviceFee int64,
	status Status,
	paymentStatus PaymentStatus,
	trackingCode *string,
	adminNotes *string,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	if id == 0 {
		return nil, fmt.Errorf("order ID cannot be zero")
	}
	if orderCode == "" {
		return nil, fmt.Errorf("order code is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid order status: %s", status)
	}
	if !paymentStatus.IsValid() {
		return nil, fmt.Errorf("invalid payment status: %s", paymentStatus)
	}

	return &Order{
		id:             id,
		orderCode:      orderCode,
		userID:         userID,
		productLink:    productLink,
		quantity:       quantity,
		voucherID:      voucherID,
		recipientName:  recipientName,
		phoneOrContact: phoneOrContact,
		address:        address,
		email:          email,
		notes:          notes,
		serviceFee:     serviceFee,
		status:         status,
		paymentStatus:  paymentStatus,
		trackingCode:   trackingCode,
		adminNotes:     adminNotes,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (o *Order) ID() uint               { return o.id }
func (o *Order) OrderCode() string      { return o.orderCode }
func (o *Order) UserID() *string        { return o.userID }
func (o *Order) ProductLink() string    { return o.productLink }
func (o *Order) Quantity() int          { return o.quantity }
func (o *Order) VoucherID() *uint       { return o.voucherID }
func (o *Order) RecipientName() string  { return o.recipientName }
func (o *Order) PhoneOrContact() string { return o.phoneOrContact }
func (o *Order) Address() string        { return o.address }
func (o *Order) Email() *string         { return o.email }
func (o *Order) Notes() *string         { return o.notes }
func (o *Order) ServiceFee() int64      { return o.serviceFee }
func (o *Order) Status() Status         { return o.status }

func (o *Order) PaymentStatus() PaymentStatus { return o.paymentStatus }
func (o *Order) TrackingCode() *string        { return o.trackingCode }
func (o *Order) AdminNotes() *string          { return o.adminNotes }
func (o *Order) CreatedAt() time.Time         { return o.createdAt }
func (o *Order) UpdatedAt() time.Time         { return o.updatedAt }

// SetID sets the order ID (only for persistence layer use).
func (o *Order) SetID(id uint) error {
	if o.id != 0 {
		return fmt.Errorf("order ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("order ID cannot be zero")
	}
	o.id = id
	return nil
}

// AdminPatch is the set of fields the admin mutation surface may change.
// Nil fields are left untouched. There is deliberately no transition-graph
// guard on status changes; any status can move to any other.
type AdminPatch struct {
	RecipientName  *string
	PhoneOrContact *string
	Address        *string
	Status         *Status
	PaymentStatus  *PaymentStatus
	TrackingCode   *string
	AdminNotes     *string
	ServiceFee     *int64
}

// ApplyAdminPatch applies an admin update to the order. Status and payment
// status values are validated; everything else is written as given.
func (o *Order) ApplyAdminPatch(patch AdminPatch) error {
	if patch.Status != nil && !patch.Status.IsValid() {
		return fmt.Errorf("invalid order status: %s", *patch.Status)
	}
	if patch.PaymentStatus != nil && !patch.PaymentStatus.IsValid() {
		return fmt.Errorf("invalid payment status: %s", *patch.PaymentStatus)
	}
	if patch.ServiceFee != nil && *patch.ServiceFee < 0 {
		return fmt.Errorf("service fee cannot be negative")
	}

	if patch.RecipientName != nil {
		o.recipientName = *patch.RecipientName
	}
	if patch.PhoneOrContact != nil {
		o.phoneOrContact = *patch.PhoneOrContact
	}
	if patch.Address != nil {
		o.address = *patch.Address
	}
	if patch.Status != nil {
		o.status = *patch.Status
	}
	if patch.PaymentStatus != nil {
		o.paymentStatus = *patch.PaymentStatus
	}
	if patch.TrackingCode != nil {
		o.trackingCode = patch.TrackingCode
	}
	if patch.AdminNotes != nil {
		o.adminNotes = patch.AdminNotes
	}
	if patch.ServiceFee != nil {
		o.serviceFee = *patch.ServiceFee
	}

	o.updatedAt = biztime.NowUTC()
	return nil
}
