package model

import "time"

type Comment struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	MandelaID uint64    `gorm:"not null;index" json:"mandela_id"`
	UserID    uint64    `gorm:"not null;index" json:"user_id"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `json:"create_ts"`
	UpdatedAt time.Time `json:"update_ts"`
}
