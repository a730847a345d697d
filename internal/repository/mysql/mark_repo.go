package mysql

import (
	"context"

	"ocean/internal/model"

	"gorm.io/gorm"
)

type MarkRepository struct {
	DB *gorm.DB
}

func (r *MarkRepository) Create(ctx context.Context, mark *model.Mark) error {
	return r.DB.WithContext(ctx).Create(mark).Error
}

func (r *MarkRepository) CountByUser(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Mark{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
