package mappers

import (
	"time"

	"anishop/internal/domain/user"
	"anishop/internal/infrastructure/persistence/models"
)

// UserMapper handles the conversion between user aggregate entities and
// persistence models.
type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
	BanToModel(b *user.Ban) *models.BannedUserModel
	BanToDomain(model *models.BannedUserModel) *user.Ban
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		DisplayName:  u.DisplayName(),
		CreatedAt:    u.CreatedAt().UnixMilli(),
		UpdatedAt:    u.UpdatedAt().UnixMilli(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	return user.ReconstructUser(
		model.ID,
		model.Email,
		model.PasswordHash,
		model.DisplayName,
		time.UnixMilli(model.CreatedAt).UTC(),
		time.UnixMilli(model.UpdatedAt).UTC(),
	)
}

func (m *UserMapperImpl) BanToModel(b *user.Ban) *models.BannedUserModel {
	return &models.BannedUserModel{
		UserID:   b.UserID(),
		Reason:   b.Reason(),
		BannedAt: b.BannedAt().UnixMilli(),
		BannedBy: b.BannedBy(),
	}
}

func (m *UserMapperImpl) BanToDomain(model *models.BannedUserModel) *user.Ban {
	return user.ReconstructBan(model.UserID, model.Reason, time.UnixMilli(model.BannedAt).UTC(), model.BannedBy)
}
