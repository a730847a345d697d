package service

import (
	"context"

	"ocean/internal/model"
	"ocean/internal/repository/mysql"

	"gorm.io/gorm"
)

type CommentService struct {
	repo *mysql.CommentRepository
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{repo: &mysql.CommentRepository{DB: db}}
}

// CommentListing carries one page plus the live total for the mandela.
type CommentListing struct {
	TotalCount int64              `json:"total_count"`
	Comments   []mysql.CommentRow `json:"comments"`
}

func (s *CommentService) Create(ctx context.Context, mandelaID, userID uint64, message string) error {
	return s.repo.Create(ctx, &model.Comment{MandelaID: mandelaID, UserID: userID, Message: message})
}

func (s *CommentService) GetAll(ctx context.Context, mandelaID uint64, offset, limit int) (*CommentListing, error) {
	rows, err := s.repo.ListByMandela(ctx, mandelaID, offset, limit)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.CountByMandela(ctx, mandelaID)
	if err != nil {
		return nil, err
	}
	return &CommentListing{TotalCount: total, Comments: rows}, nil
}

func (s *CommentService) Update(ctx context.Context, id uint64, message string) error {
	return s.repo.Update(ctx, id, message)
}

func (s *CommentService) Delete(ctx context.Context, ids []uint64) error {
	return s.repo.DeleteByIDs(ctx, ids)
}
