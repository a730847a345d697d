package model

import "time"

// Mark records that a user has acknowledged a mandela. CreatedAt is the
// acknowledgment instant. There is no uniqueness on (mandela_id, user_id);
// repeated marks are accepted.
type Mark struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	MandelaID uint64    `gorm:"not null;index" json:"mandela_id"`
	UserID    uint64    `gorm:"not null;index" json:"user_id"`
	CreatedAt time.Time `json:"create_ts"`
}
