package mysql

import (
	"context"

	"ocean/internal/model"

	"gorm.io/gorm"
)

type TopicRepository struct {
	DB *gorm.DB
}

func (r *TopicRepository) Create(ctx context.Context, topic *model.Topic) error {
	return r.DB.WithContext(ctx).Create(topic).Error
}

func (r *TopicRepository) FindByID(ctx context.Context, id uint64) (*model.Topic, error) {
	var topic model.Topic
	err := r.DB.WithContext(ctx).First(&topic, id).Error
	return &topic, err
}

func (r *TopicRepository) ListAll(ctx context.Context) ([]model.Topic, error) {
	var list []model.Topic
	err := r.DB.WithContext(ctx).Order("id desc").Find(&list).Error
	return list, err
}

func (r *TopicRepository) DeleteByIDs(ctx context.Context, ids []uint64) error {
	return r.DB.WithContext(ctx).Delete(&model.Topic{}, ids).Error
}
