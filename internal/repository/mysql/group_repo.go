package mysql

import (
	"context"

	"ocean/internal/model"

	"gorm.io/gorm"
)

type GroupRepository struct {
	DB *gorm.DB
}

// FindByCode returns gorm.ErrRecordNotFound when no group carries the code;
// callers surface that as a domain error.
func (r *GroupRepository) FindByCode(ctx context.Context, code string) (*model.Group, error) {
	var group model.Group
	err := r.DB.WithContext(ctx).Where("code = ?", code).First(&group).Error
	return &group, err
}

func (r *GroupRepository) FindByID(ctx context.Context, id uint64) (*model.Group, error) {
	var group model.Group
	err := r.DB.WithContext(ctx).First(&group, id).Error
	return &group, err
}
