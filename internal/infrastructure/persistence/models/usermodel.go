package models

type UserModel struct {
	ID           string `gorm:"primaryKey;size:36"`
	Email        string `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	DisplayName  string `gorm:"size:200"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (UserModel) TableName() string {
	return "users"
}

type UserRoleModel struct {
	UserID    string `gorm:"primaryKey;size:36"`
	Role      string `gorm:"size:20;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (UserRoleModel) TableName() string {
	return "user_roles"
}

type BannedUserModel struct {
	UserID   string `gorm:"primaryKey;size:36"`
	Reason   string `gorm:"type:text;not null"`
	BannedAt int64  `gorm:"not null"`
	BannedBy string `gorm:"size:36"`
}

func (BannedUserModel) TableName() string {
	return "banned_users"
}
