package model

import "time"

// Vote is one cast poll response. One row per cast; at-most-one-per-user is
// best effort on the caller side, never enforced here.
type Vote struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	MandelaID uint64    `gorm:"not null;index" json:"mandela_id"`
	UserID    uint64    `gorm:"not null;index" json:"user_id"`
	Value     int8      `gorm:"not null" json:"vote"`
	CreatedAt time.Time `json:"create_ts"`
}

func (Vote) TableName() string {
	return "mandela_votes"
}
