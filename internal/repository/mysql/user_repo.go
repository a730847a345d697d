package mysql

import (
	"context"

	"ocean/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	return r.DB.WithContext(ctx).Create(user).Error
}

func (r *UserRepository) FindByID(ctx context.Context, id uint64) (*model.User, error) {
	var user model.User
	err := r.DB.WithContext(ctx).First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByToken(ctx context.Context, token string) (*model.User, error) {
	var user model.User
	err := r.DB.WithContext(ctx).Where("token = ?", token).First(&user).Error
	return &user, err
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id uint64, name string, groupID uint64) error {
	return r.DB.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]any{"name": name, "group_id": groupID}).Error
}

func (r *UserRepository) UpdateToken(ctx context.Context, id uint64, token string) error {
	return r.DB.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Update("token", token).Error
}
