package mappers

import (
	"time"

	"anishop/internal/domain/setting"
	"anishop/internal/infrastructure/persistence/models"
)

// SettingMapper handles the conversion between SiteSetting domain entities
// and persistence models.
type SettingMapper interface {
	ToModel(s *setting.SiteSetting) *models.SiteSettingModel
	ToDomain(model *models.SiteSettingModel) *setting.SiteSetting
}

type SettingMapperImpl struct{}

func NewSettingMapper() SettingMapper {
	return &SettingMapperImpl{}
}

func (m *SettingMapperImpl) ToModel(s *setting.SiteSetting) *models.SiteSettingModel {
	return &models.SiteSettingModel{
		Key:       s.Key(),
		Value:     s.Value(),
		UpdatedAt: s.UpdatedAt().UnixMilli(),
	}
}

func (m *SettingMapperImpl) ToDomain(model *models.SiteSettingModel) *setting.SiteSetting {
	return setting.ReconstructSiteSetting(model.Key, model.Value, time.UnixMilli(model.UpdatedAt).UTC())
}
