package service

import (
	"context"
	"errors"

	"ocean/internal/model"
	"ocean/internal/repository/mysql"
	"ocean/internal/rpc"

	"gorm.io/gorm"
)

type TopicService struct {
	repo *mysql.TopicRepository
}

func NewTopicService(db *gorm.DB) *TopicService {
	return &TopicService{repo: &mysql.TopicRepository{DB: db}}
}

func (s *TopicService) Create(ctx context.Context, title, description string, userID uint64) (uint64, error) {
	topic := &model.Topic{Title: title, Description: description, UserID: userID}
	if err := s.repo.Create(ctx, topic); err != nil {
		return 0, err
	}
	return topic.ID, nil
}

func (s *TopicService) GetOne(ctx context.Context, id uint64) (*model.Topic, error) {
	topic, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, rpc.NotFound("topic")
	}
	if err != nil {
		return nil, err
	}
	return topic, nil
}

func (s *TopicService) GetAll(ctx context.Context) ([]model.Topic, error) {
	return s.repo.ListAll(ctx)
}

func (s *TopicService) Delete(ctx context.Context, ids []uint64) error {
	return s.repo.DeleteByIDs(ctx, ids)
}
