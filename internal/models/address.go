package models

import "time"

type Address struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	Building      string `gorm:"size:50" json:"building"`
	Apartment     string `gorm:"size:20" json:"apartment"`
	StreetAddress string `gorm:"size:255" json:"street_address"`
	Area          string `gorm:"size:100" json:"area"`
	City          string `gorm:"size:50" json:"city"`
	Emirate       string `gorm:"size:50" json:"emirate"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
