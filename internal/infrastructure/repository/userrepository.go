package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"anishop/internal/domain/user"
	apperrors "anishop/internal/shared/errors"
	"anishop/internal/infrastructure/persistence/mappers"
	"anishop/internal/infrastructure/persistence/models"
	"anishop/internal/shared/db"
)

type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{
		db:     database,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *UserRepository) Save(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("email is already registered")
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(email)).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) List(ctx context.Context, page, pageSize int) ([]*user.User, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.UserModel{}).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	var userModels []models.UserModel
	if err := r.db.WithContext(ctx).
		Scopes(db.Paginate(page, pageSize)).
		Order("created_at DESC").
		Find(&userModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*user.User, 0, len(userModels))
	for i := range userModels {
		u, err := r.mapper.ToDomain(&userModels[i])
		if err != nil {
			return nil, 0, err
		}
		users = append(users, u)
	}
	return users, total, nil
}

// GetRole returns the stored role; absence of a row means a plain user.
func (r *UserRepository) GetRole(ctx context.Context, userID string) (user.Role, error) {
	var model models.UserRoleModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return user.RoleUser, nil
		}
		return "", fmt.Errorf("failed to get role: %w", err)
	}

	role, err := user.NewRole(model.Role)
	if err != nil {
		return user.RoleUser, nil
	}
	return role, nil
}

func (r *UserRepository) SetRole(ctx context.Context, userID string, role user.Role) error {
	if role == user.RoleUser {
		// Plain user is the default; drop the row instead of storing it.
		if err := r.db.WithContext(ctx).
			Where("user_id = ?", userID).
			Delete(&models.UserRoleModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear role: %w", err)
		}
		return nil
	}

	model := &models.UserRoleModel{UserID: userID, Role: role.String()}
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to set role: %w", err)
	}
	return nil
}

func (r *UserRepository) SaveBan(ctx context.Context, b *user.Ban) error {
	model := r.mapper.BanToModel(b)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to save ban: %w", err)
	}
	return nil
}

func (r *UserRepository) RemoveBan(ctx context.Context, userID string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.BannedUserModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to remove ban: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("ban not found")
	}
	return nil
}

func (r *UserRepository) FindBan(ctx context.Context, userID string) (*user.Ban, error) {
	var model models.BannedUserModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("ban not found")
		}
		return nil, fmt.Errorf("failed to find ban: %w", err)
	}
	return r.mapper.BanToDomain(&model), nil
}

func (r *UserRepository) ListBans(ctx context.Context) ([]*user.Ban, error) {
	var banModels []models.BannedUserModel
	if err := r.db.WithContext(ctx).Find(&banModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list bans: %w", err)
	}

	bans := make([]*user.Ban, 0, len(banModels))
	for i := range banModels {
		bans = append(bans, r.mapper.BanToDomain(&banModels[i]))
	}
	return bans, nil
}
