package dto

import (
	"time"

	"anishop/internal/domain/order"
	"anishop/internal/shared/utils"
)

// StatusView is the projected rendering of a status code.
type StatusView struct {
	Code    string `json:"code"`
	Label   string `json:"label"`
	Color   string `json:"color"`
	Emoji   string `json:"emoji"`
	Ordinal int    `json:"ordinal"`
}

func NewStatusView(s order.Status) StatusView {
	p := order.ProjectStatus(s)
	return StatusView{
		Code:    s.String(),
		Label:   p.Label,
		Color:   p.Color,
		Emoji:   p.Emoji,
		Ordinal: p.Ordinal,
	}
}

func NewPaymentStatusView(p order.PaymentStatus) StatusView {
	pr := order.ProjectPaymentStatus(p)
	return StatusView{
		Code:    p.String(),
		Label:   pr.Label,
		Color:   pr.Color,
		Emoji:   pr.Emoji,
		Ordinal: pr.Ordinal,
	}
}

// OrderView is the full order representation for admin and bot surfaces.
type OrderView struct {
	ID             uint       `json:"id"`
	OrderCode      string     `json:"order_code"`
	UserID         *string    `json:"user_id,omitempty"`
	ProductLink    string     `json:"product_link"`
	Quantity       int        `json:"quantity"`
	VoucherID      *uint      `json:"voucher_id,omitempty"`
	RecipientName  string     `json:"recipient_name"`
	PhoneOrContact string     `json:"phone_or_contact"`
	Address        string     `json:"address"`
	Email          *string    `json:"email,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
	ServiceFee     int64      `json:"service_fee"`
	Status         StatusView `json:"status"`
	PaymentStatus  StatusView `json:"payment_status"`
	TrackingCode   *string    `json:"tracking_code,omitempty"`
	AdminNotes     *string    `json:"admin_notes,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func NewOrderView(o *order.Order) OrderView {
	return OrderView{
		ID:             o.ID(),
		OrderCode:      o.OrderCode(),
		UserID:         o.UserID(),
		ProductLink:    o.ProductLink(),
		Quantity:       o.Quantity(),
		VoucherID:      o.VoucherID(),
		RecipientName:  o.RecipientName(),
		PhoneOrContact: o.PhoneOrContact(),
		Address:        o.Address(),
		Email:          o.Email(),
		Notes:          o.Notes(),
		ServiceFee:     o.ServiceFee(),
		Status:         NewStatusView(o.Status()),
		PaymentStatus:  NewPaymentStatusView(o.PaymentStatus()),
		TrackingCode:   o.TrackingCode(),
		AdminNotes:     o.AdminNotes(),
		CreatedAt:      o.CreatedAt(),
		UpdatedAt:      o.UpdatedAt(),
	}
}

// MaskedOrderView is the public tracking representation. Recipient contact
// and address are partially hidden; product link and fee stay visible so the
// customer can verify what they ordered.
type MaskedOrderView struct {
	OrderCode      string     `json:"order_code"`
	ProductLink    string     `json:"product_link"`
	Quantity       int        `json:"quantity"`
	RecipientName  string     `json:"recipient_name"`
	PhoneOrContact string     `json:"phone_or_contact"`
	Address        string     `json:"address"`
	ServiceFee     int64      `json:"service_fee"`
	Status         StatusView `json:"status"`
	PaymentStatus  StatusView `json:"payment_status"`
	TrackingCode   *string    `json:"tracking_code,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func NewMaskedOrderView(o *order.Order) MaskedOrderView {
	return MaskedOrderView{
		OrderCode:      o.OrderCode(),
		ProductLink:    o.ProductLink(),
		Quantity:       o.Quantity(),
		RecipientName:  o.RecipientName(),
		PhoneOrContact: utils.MaskContact(o.PhoneOrContact()),
		Address:        utils.MaskAddress(o.Address()),
		ServiceFee:     o.ServiceFee(),
		Status:         NewStatusView(o.Status()),
		PaymentStatus:  NewPaymentStatusView(o.PaymentStatus()),
		TrackingCode:   o.TrackingCode(),
		CreatedAt:      o.CreatedAt(),
		UpdatedAt:      o.UpdatedAt(),
	}
}
