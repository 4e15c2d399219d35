package mappers

import (
	"time"

	"anishop/internal/domain/voucher"
	"anishop/internal/infrastructure/persistence/models"
)

// VoucherMapper handles the conversion between Voucher domain entities and
// persistence models.
type VoucherMapper interface {
	ToModel(v *voucher.Voucher) *models.VoucherModel
	ToDomain(model *models.VoucherModel) (*voucher.Voucher, error)
}

type VoucherMapperImpl struct{}

func NewVoucherMapper() VoucherMapper {
	return &VoucherMapperImpl{}
}

func (m *VoucherMapperImpl) ToModel(v *voucher.Voucher) *models.VoucherModel {
	return &models.VoucherModel{
		ID:          v.ID(),
		Code:        v.Code(),
		VoucherType: v.VoucherType().String(),
		FeeAmount:   v.FeeAmount(),
		Description: v.Description(),
		IsActive:    v.IsActive(),
		CreatedAt:   v.CreatedAt().UnixMilli(),
		UpdatedAt:   v.UpdatedAt().UnixMilli(),
	}
}

func (m *VoucherMapperImpl) ToDomain(model *models.VoucherModel) (*voucher.Voucher, error) {
	return voucher.ReconstructVoucher(
		model.ID,
		model.Code,
		voucher.Type(model.VoucherType),
		model.FeeAmount,
		model.Description,
		model.IsActive,
		time.UnixMilli(model.CreatedAt).UTC(),
		time.UnixMilli(model.UpdatedAt).UTC(),
	)
}
