package models

type TicketModel struct {
	ID          uint    `gorm:"primaryKey"`
	OrderCode   string  `gorm:"size:20;not null;index"`
	Description string  `gorm:"type:text;not null"`
	ContactLink string  `gorm:"size:500;not null"`
	ImageURL    *string `gorm:"size:500"`
	Status      string  `gorm:"size:20;not null;index"`
	AdminNotes  *string `gorm:"type:text"`
	CreatedAt   int64   `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt   int64   `gorm:"autoUpdateTime:milli;not null"`

	// OrderCode is a free reference, not a foreign key. Tickets outlive the
	// orders they mention.
}

func (TicketModel) TableName() string {
	return "support_tickets"
}
