package models

import "time"

// Service is a wash package offered by the business. The scheduling core
// treats it as immutable; EstimatedMinutes drives slot occupation.
type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name             string  `gorm:"size:100;not null" json:"name"`
	Description      string  `gorm:"size:255" json:"description"`
	Price            float64 `json:"price"`
	EstimatedMinutes int     `gorm:"default:60" json:"estimated_minutes"`
	IsActive         bool    `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
