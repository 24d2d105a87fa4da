package models

import "time"

// Booking is the aggregate root of the scheduling core. Date is a
// calendar day in the operating zone; TimeSlot is the display label of
// the start slot. Multi-slot services occupy subsequent catalog slots
// implicitly (see slot arithmetic in the booking use cases).
type Booking struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"size:36;uniqueIndex" json:"code"`

	CustomerID uint `json:"customer_id"`
	Customer   User `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer"`

	VehicleID uint    `json:"vehicle_id"`
	Vehicle   Vehicle `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"vehicle"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	AddressID uint    `json:"address_id"`
	Address   Address `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"address"`

	AssignedEmployeeID *uint     `gorm:"index" json:"assigned_employee_id"`
	AssignedEmployee   *Employee `gorm:"foreignKey:AssignedEmployeeID" json:"assigned_employee,omitempty"`

	Date     time.Time `gorm:"index" json:"date"`
	TimeSlot string    `gorm:"size:20;index" json:"time_slot"`

	Status        string `gorm:"size:20;default:'pending'" json:"status"`
	PaymentStatus string `gorm:"size:20;default:'Unpaid'" json:"payment_status"`
	PaymentMethod string `gorm:"size:20;default:'Card'" json:"payment_method"`

	TotalPrice float64 `json:"total_price"`

	IsReviewed       bool       `gorm:"default:false" json:"is_reviewed"`
	ReminderNotified bool       `gorm:"default:false" json:"reminder_notified"`
	ReminderSentAt   *time.Time `json:"reminder_sent_at"`
	PaidAt           *time.Time `json:"paid_at"`

	CancellationReason string `gorm:"size:255" json:"cancellation_reason"`
	AdditionalNotes    string `gorm:"type:text" json:"additional_notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
