package models

type SiteSettingModel struct {
	Key       string `gorm:"primaryKey;size:100"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (SiteSettingModel) TableName() string {
	return "site_settings"
}
