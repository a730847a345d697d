package model

import "time"

type User struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Name      *string   `gorm:"size:64" json:"name"`
	Token     string    `gorm:"size:128;index" json:"-"`
	GroupID   uint64    `gorm:"not null;index" json:"group_id"`
	CreatedAt time.Time `json:"create_ts"`
	UpdatedAt time.Time `json:"update_ts"`
}

// Group is immutable reference data looked up by its short code.
type Group struct {
	ID   uint64 `gorm:"primaryKey" json:"id"`
	Code string `gorm:"uniqueIndex;size:16;not null" json:"code"`
	Name string `gorm:"size:64" json:"name"`
}

func (Group) TableName() string {
	return "user_groups"
}
