package booking

import "time"

type AvailabilityInput struct {
	Date      time.Time
	TimeSlot  string
	ServiceID uint
}

// Availability is the admission verdict for a start slot. For multi-slot
// services the figures report the bottleneck across every required slot.
type Availability struct {
	Available          bool     `json:"available"`
	Capacity           int      `json:"capacity"`
	CurrentBookings    int      `json:"current_bookings"`
	AvailableEmployees int      `json:"available_employees"`
	RequiredSlots      []string `json:"required_slots,omitempty"`
}

type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotLimited   SlotStatus = "limited"
	SlotFull      SlotStatus = "full"
)

// DaySlot is the per-slot UI row of the day view.
type DaySlot struct {
	TimeSlot        string     `json:"time_slot"`
	Available       bool       `json:"available"`
	Capacity        int        `json:"capacity"`
	CurrentBookings int        `json:"current_bookings"`
	Status          SlotStatus `json:"status"`
	RequiredSlots   []string   `json:"required_slots,omitempty"`
}
