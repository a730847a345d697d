package mysql

import (
	"context"

	"ocean/internal/model"

	"gorm.io/gorm"
)

type VoteRepository struct {
	DB *gorm.DB
}

func (r *VoteRepository) Create(ctx context.Context, vote *model.Vote) error {
	return r.DB.WithContext(ctx).Create(vote).Error
}

// Tally groups all votes for the mandela by value. Recomputed live on every
// call; nothing is cached.
func (r *VoteRepository) Tally(ctx context.Context, mandelaID uint64) (map[int8]int64, error) {
	var rows []struct {
		Value int8  `gorm:"column:value"`
		Count int64 `gorm:"column:count"`
	}
	err := r.DB.WithContext(ctx).Model(&model.Vote{}).
		Select("value, COUNT(*) AS count").
		Where("mandela_id = ?", mandelaID).
		Group("value").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	tally := make(map[int8]int64, len(rows))
	for _, row := range rows {
		tally[row.Value] = row.Count
	}
	return tally, nil
}

func (r *VoteRepository) HasVoted(ctx context.Context, mandelaID, userID uint64) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Vote{}).
		Where("mandela_id = ? AND user_id = ?", mandelaID, userID).
		Count(&count).Error
	return count > 0, err
}
