package models

import "time"

type Vehicle struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OwnerID uint `json:"owner_id"`
	Owner   User `gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"owner"`

	Make        string `gorm:"size:50" json:"make"`
	Model       string `gorm:"size:50" json:"model"`
	PlateNumber string `gorm:"size:20" json:"plate_number"`
	Type        string `gorm:"size:20" json:"type"`
	Color       string `gorm:"size:20" json:"color"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
