package model

import (
	"time"

	"gorm.io/datatypes"
)

// Mandela is the primary content record: listed, detailed, commented on,
// voted on and marked.
type Mandela struct {
	ID          uint64         `gorm:"primaryKey" json:"id"`
	TitleMode   int            `gorm:"not null;default:0" json:"title_mode"`
	Title       string         `gorm:"size:200;not null" json:"title"`
	What        string         `gorm:"size:200" json:"what"`
	Before      string         `gorm:"column:before_text;size:200" json:"before"`
	After       string         `gorm:"column:after_text;size:200" json:"after"`
	Description string         `gorm:"type:text" json:"description"`
	Images      datatypes.JSON `gorm:"type:json" json:"images"`
	Videos      datatypes.JSON `gorm:"type:json" json:"videos"`
	Links       datatypes.JSON `gorm:"type:json" json:"links"`
	UserID      uint64         `gorm:"not null;index" json:"user_id"`
	CreatedAt   time.Time      `json:"create_ts"`
	UpdatedAt   time.Time      `json:"update_ts"`
}

func (Mandela) TableName() string {
	return "mandels"
}

// MandelaCategory is a small integer tag; many per mandela, replaced
// wholesale on update.
type MandelaCategory struct {
	ID        uint64 `gorm:"primaryKey"`
	MandelaID uint64 `gorm:"not null;index"`
	Number    int32  `gorm:"not null"`
}

func (MandelaCategory) TableName() string {
	return "mandela_categories"
}
