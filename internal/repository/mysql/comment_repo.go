package mysql

import (
	"context"
	"time"

	"ocean/internal/model"

	"gorm.io/gorm"
)

type CommentRepository struct {
	DB *gorm.DB
}

// CommentRow is one listed comment with its author name merged in.
type CommentRow struct {
	ID        uint64    `gorm:"column:id" json:"id"`
	UserID    uint64    `gorm:"column:user_id" json:"user_id"`
	UserName  *string   `gorm:"column:user_name" json:"user_name"`
	Message   string    `gorm:"column:message" json:"message"`
	CreatedAt time.Time `gorm:"column:created_at" json:"create_ts"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"update_ts"`
}

func (r *CommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	return r.DB.WithContext(ctx).Create(comment).Error
}

func (r *CommentRepository) ListByMandela(ctx context.Context, mandelaID uint64, offset, limit int) ([]CommentRow, error) {
	var rows []CommentRow
	err := r.DB.WithContext(ctx).Table("comments").
		Select("comments.id, comments.user_id, users.name AS user_name, comments.message, comments.created_at, comments.updated_at").
		Joins("INNER JOIN users ON users.id = comments.user_id").
		Where("comments.mandela_id = ?", mandelaID).
		Order("comments.id asc").
		Offset(offset).
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// CountByMandela is always a scoped count query, never a row readback.
func (r *CommentRepository) CountByMandela(ctx context.Context, mandelaID uint64) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Comment{}).
		Where("mandela_id = ?", mandelaID).
		Count(&count).Error
	return count, err
}

func (r *CommentRepository) Update(ctx context.Context, id uint64, message string) error {
	return r.DB.WithContext(ctx).Model(&model.Comment{}).
		Where("id = ?", id).
		Update("message", message).Error
}

func (r *CommentRepository) DeleteByIDs(ctx context.Context, ids []uint64) error {
	return r.DB.WithContext(ctx).Delete(&model.Comment{}, ids).Error
}
