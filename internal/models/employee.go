package models

import "time"

type Employee struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"uniqueIndex" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	CompletedJobs int `gorm:"default:0" json:"completed_jobs"`

	AvailabilitySlots []AvailabilitySlot `gorm:"foreignKey:EmployeeID" json:"availability_slots"`
	Reviews           []EmployeeReview   `gorm:"foreignKey:EmployeeID" json:"reviews"`
	Flags             []EmployeeFlag     `gorm:"foreignKey:EmployeeID" json:"flags"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AvailabilitySlot is one row of the sparse availability ledger. An
// employee with no rows at all is treated as implicitly available.
type AvailabilitySlot struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	EmployeeID uint `gorm:"index:idx_avail_emp_date_slot,unique" json:"employee_id"`

	Date        time.Time `gorm:"index:idx_avail_emp_date_slot,unique" json:"date"`
	TimeSlot    string    `gorm:"size:20;index:idx_avail_emp_date_slot,unique" json:"time_slot"`
	IsAvailable bool      `gorm:"default:true" json:"is_available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type EmployeeReview struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	EmployeeID uint `gorm:"index" json:"employee_id"`
	BookingID  uint `json:"booking_id"`

	Rating int    `json:"rating"`
	Review string `gorm:"size:500" json:"review"`

	CreatedAt time.Time `json:"created_at"`
}

type EmployeeFlag struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	EmployeeID uint `gorm:"index" json:"employee_id"`

	Reason     string     `gorm:"size:255;not null" json:"reason"`
	Date       time.Time  `json:"date"`
	IssuedByID uint       `json:"issued_by_id"`
	BookingID  *uint      `json:"booking_id"`
	Resolved   bool       `gorm:"default:false" json:"resolved"`
	ResolvedAt *time.Time `json:"resolved_at"`
	ResolvedBy *uint      `json:"resolved_by"`

	CreatedAt time.Time `json:"created_at"`
}
