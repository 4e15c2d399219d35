package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"anishop/internal/domain/voucher"
	apperrors "anishop/internal/shared/errors"
	"anishop/internal/infrastructure/persistence/mappers"
	"anishop/internal/infrastructure/persistence/models"
)

type VoucherRepository struct {
	db     *gorm.DB
	mapper mappers.VoucherMapper
}

func NewVoucherRepository(database *gorm.DB) *VoucherRepository {
	return &VoucherRepository{
		db:     database,
		mapper: mappers.NewVoucherMapper(),
	}
}

func (r *VoucherRepository) Save(ctx context.Context, v *voucher.Voucher) error {
	model := r.mapper.ToModel(v)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError(fmt.Sprintf("voucher code %s already exists", v.Code()))
		}
		return fmt.Errorf("failed to save voucher: %w", err)
	}

	return v.SetID(model.ID)
}

func (r *VoucherRepository) Update(ctx context.Context, v *voucher.Voucher) error {
	model := r.mapper.ToModel(v)

	result := r.db.WithContext(ctx).
		Model(&models.VoucherModel{}).
		Where("id = ?", model.ID).
		Select("voucher_type", "fee_amount", "description", "is_active", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update voucher: %w", result.Error)
	}

	return nil
}

func (r *VoucherRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.VoucherModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete voucher: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("voucher not found")
	}
	return nil
}

func (r *VoucherRepository) FindByID(ctx context.Context, id uint) (*voucher.Voucher, error) {
	var model models.VoucherModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("voucher not found")
		}
		return nil, fmt.Errorf("failed to find voucher: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *VoucherRepository) FindActiveByCode(ctx context.Context, code string) (*voucher.Voucher, error) {
	var model models.VoucherModel
	if err := r.db.WithContext(ctx).
		Where("code = ? AND is_active = ?", strings.ToUpper(code), true).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("voucher not found")
		}
		return nil, fmt.Errorf("failed to find voucher: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *VoucherRepository) List(ctx context.Context) ([]*voucher.Voucher, error) {
	var voucherModels []models.VoucherModel
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&voucherModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list vouchers: %w", err)
	}
	return r.toDomainList(voucherModels)
}

func (r *VoucherRepository) ListActive(ctx context.Context) ([]*voucher.Voucher, error) {
	var voucherModels []models.VoucherModel
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&voucherModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list active vouchers: %w", err)
	}
	return r.toDomainList(voucherModels)
}

func (r *VoucherRepository) toDomainList(voucherModels []models.VoucherModel) ([]*voucher.Voucher, error) {
	vouchers := make([]*voucher.Voucher, 0, len(voucherModels))
	for i := range voucherModels {
		v, err := r.mapper.ToDomain(&voucherModels[i])
		if err != nil {
			return nil, err
		}
		vouchers = append(vouchers, v)
	}
	return vouchers, nil
}
