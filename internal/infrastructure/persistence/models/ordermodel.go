package models

type OrderModel struct {
	ID             uint    `gorm:"primaryKey"`
	OrderCode      string  `gorm:"uniqueIndex;size:20;not null"`
	UserID         *string `gorm:"size:36;index"`
	ProductLink    string  `gorm:"type:text;not null"`
	Quantity       int     `gorm:"not null"`
	VoucherID      *uint   `gorm:"index"`
	RecipientName  string  `gorm:"size:200;not null"`
	PhoneOrContact string  `gorm:"size:200;not null"`
	Address        string  `gorm:"type:text;not null"`
	Email          *string `gorm:"size:255"`
	Notes          *string `gorm:"type:text"`
	ServiceFee     int64   `gorm:"not null;default:0"`
	Status         string  `gorm:"size:20;not null;index"`
	PaymentStatus  string  `gorm:"size:20;not null;index"`
	TrackingCode   *string `gorm:"size:100"`
	AdminNotes     *string `gorm:"type:text"`
	CreatedAt      int64   `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt      int64   `gorm:"autoUpdateTime:milli;not null"`

	// Note: no foreign key constraints. The voucher reference is a snapshot
	// pointer; deleting a voucher must not cascade into orders.
}

func (OrderModel) TableName() string {
	return "orders"
}
