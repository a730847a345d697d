package model

import "time"

// ActivityOutbox rows are written in the same transaction as the entity
// write and drained to the activity relay afterwards.
type ActivityOutbox struct {
	ID        uint64 `gorm:"primaryKey"`
	EventType string `gorm:"size:16;not null"` // create / delete
	MandelaID uint64 `gorm:"not null"`
	UserID    uint64 `gorm:"not null"`
	Payload   string `gorm:"type:json;not null"`
	Status    int8   `gorm:"not null;default:0"` // 0=pending,1=sent,2=failed
	Retry     int    `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ActivityOutbox) TableName() string {
	return "activity_outbox"
}
