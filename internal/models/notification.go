package models

import "time"

type Notification struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"index" json:"user_id"`

	Title   string `gorm:"size:100;not null" json:"title"`
	Message string `gorm:"size:500;not null" json:"message"`
	Type    string `gorm:"size:40;not null" json:"type"`
	Data    string `gorm:"type:text" json:"data"`

	IsRead bool       `gorm:"default:false" json:"is_read"`
	ReadAt *time.Time `json:"read_at"`

	CreatedAt time.Time `json:"created_at"`
}
