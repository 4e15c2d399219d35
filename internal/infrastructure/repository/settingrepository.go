package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"anishop/internal/domain/setting"
	apperrors "anishop/internal/shared/errors"
	"anishop/internal/infrastructure/persistence/mappers"
	"anishop/internal/infrastructure/persistence/models"
)

type SettingRepository struct {
	db     *gorm.DB
	mapper mappers.SettingMapper
}

func NewSettingRepository(database *gorm.DB) *SettingRepository {
	return &SettingRepository{
		db:     database,
		mapper: mappers.NewSettingMapper(),
	}
}

// Upsert writes one key. Each key is an independent statement so a failing
// key never rolls back its siblings.
func (r *SettingRepository) Upsert(ctx context.Context, s *setting.SiteSetting) error {
	model := r.mapper.ToModel(s)

	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(model).Error; err != nil {
		return fmt.Errorf("failed to upsert setting %s: %w", s.Key(), err)
	}
	return nil
}

func (r *SettingRepository) Get(ctx context.Context, key string) (*setting.SiteSetting, error) {
	var model models.SiteSettingModel
	if err := r.db.WithContext(ctx).
		Where("`key` = ?", key).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("setting %s not found", key))
		}
		return nil, fmt.Errorf("failed to get setting: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *SettingRepository) GetAll(ctx context.Context) ([]*setting.SiteSetting, error) {
	var settingModels []models.SiteSettingModel
	if err := r.db.WithContext(ctx).
		Order("`key` ASC").
		Find(&settingModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}

	settings := make([]*setting.SiteSetting, 0, len(settingModels))
	for i := range settingModels {
		settings = append(settings, r.mapper.ToDomain(&settingModels[i]))
	}
	return settings, nil
}

func (r *SettingRepository) GetMany(ctx context.Context, keys []string) (map[string]string, error) {
	var settingModels []models.SiteSettingModel
	if err := r.db.WithContext(ctx).
		Where("`key` IN ?", keys).
		Find(&settingModels).Error; err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	values := make(map[string]string, len(settingModels))
	for i := range settingModels {
		values[settingModels[i].Key] = settingModels[i].Value
	}
	return values, nil
}
