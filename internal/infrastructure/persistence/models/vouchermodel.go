package models

type VoucherModel struct {
	ID          uint   `gorm:"primaryKey"`
	Code        string `gorm:"uniqueIndex;size:50;not null"`
	VoucherType string `gorm:"size:10;not null"`
	FeeAmount   *int64
	Description string `gorm:"type:text"`
	IsActive    bool   `gorm:"not null;default:true;index"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (VoucherModel) TableName() string {
	return "vouchers"
}
