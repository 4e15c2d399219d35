package mappers

import (
	"time"

	"anishop/internal/domain/order"
	"anishop/internal/infrastructure/persistence/models"
)

// OrderMapper handles the conversion between Order domain entities and
// persistence models.
type OrderMapper interface {
	ToModel(o *order.Order) *models.OrderModel
	ToDomain(model *models.OrderModel) (*order.Order, error)
}

type OrderMapperImpl struct{}

func NewOrderMapper() OrderMapper {
	return &OrderMapperImpl{}
}

func (m *OrderMapperImpl) ToModel(o *order.Order) *models.OrderModel {
	return &models.OrderModel{
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
		Status:         o.Status().String(),
		PaymentStatus:  o.PaymentStatus().String(),
		TrackingCode:   o.TrackingCode(),
		AdminNotes:     o.AdminNotes(),
		CreatedAt:      o.CreatedAt().UnixMilli(),
		UpdatedAt:      o.UpdatedAt().UnixMilli(),
	}
}

func (m *OrderMapperImpl) ToDomain(model *models.OrderModel) (*order.Order, error) {
	return order.ReconstructOrder(
		model.ID,
		model.OrderCode,
		model.UserID,
		model.ProductLink,
		model.Quantity,
		model.VoucherID,
		model.RecipientName,
		model.PhoneOrContact,
		model.Address,
		model.Email,
		model.Notes,
		model.ServiceFee,
		order.Status(model.Status),
		order.PaymentStatus(model.PaymentStatus),
		model.TrackingCode,
		model.AdminNotes,
		time.UnixMilli(model.CreatedAt).UTC(),
		time.UnixMilli(model.UpdatedAt).UTC(),
	)
}
