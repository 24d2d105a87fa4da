// Package slots holds the immutable catalog of operating time slots.
// Catalog order corresponds to clock order; adjacency in the catalog
// equals adjacency in time.
package slots

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

type TimeSlot struct {
	ID          string `json:"id"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	DisplayTime string `json:"display_time"`
}

var displayRe = regexp.MustCompile(`^\d{2}:\d{2} - \d{2}:\d{2}$`)

// Catalog is an ordered, finite sequence of operating slots.
type Catalog struct {
	slots   []TimeSlot
	byLabel map[string]int
}

// Default is the reference configuration: eleven 75-minute blocks.
func Default() *Catalog {
	return MustNew([]TimeSlot{
		{ID: "slot-1", StartTime: "06:30", EndTime: "07:45", DisplayTime: "06:30 - 07:45"},
		{ID: "slot-2", StartTime: "07:45", EndTime: "09:00", DisplayTime: "07:45 - 09:00"},
		{ID: "slot-3", StartTime: "09:00", EndTime: "10:15", DisplayTime: "09:00 - 10:15"},
		{ID: "slot-4", StartTime: "10:15", EndTime: "11:30", DisplayTime: "10:15 - 11:30"},
		{ID: "slot-5", StartTime: "11:30", EndTime: "12:45", DisplayTime: "11:30 - 12:45"},
		{ID: "slot-6", StartTime: "12:45", EndTime: "14:00", DisplayTime: "12:45 - 14:00"},
		{ID: "slot-7", StartTime: "14:00", EndTime: "15:15", DisplayTime: "14:00 - 15:15"},
		{ID: "slot-8", StartTime: "15:15", EndTime: "16:30", DisplayTime: "15:15 - 16:30"},
		{ID: "slot-9", StartTime: "16:30", EndTime: "17:45", DisplayTime: "16:30 - 17:45"},
		{ID: "slot-10", StartTime: "17:45", EndTime: "19:00", DisplayTime: "17:45 - 19:00"},
		{ID: "slot-11", StartTime: "19:00", EndTime: "20:15", DisplayTime: "19:00 - 20:15"},
	})
}

// New validates that the catalog is in clock order before use.
func New(list []TimeSlot) (*Catalog, error) {
	byLabel := make(map[string]int, len(list))
	prev := -1
	for i, s := range list {
		if !displayRe.MatchString(s.DisplayTime) {
			return nil, fmt.Errorf("slot %q: bad display label %q", s.ID, s.DisplayTime)
		}
		start, err := minutesOfDay(s.StartTime)
		if err != nil {
			return nil, fmt.Errorf("slot %q: %w", s.ID, err)
		}
		if start <= prev {
			return nil, fmt.Errorf("slot %q: catalog out of clock order", s.ID)
		}
		prev = start
		byLabel[s.DisplayTime] = i
	}
	return &Catalog{slots: list, byLabel: byLabel}, nil
}

func MustNew(list []TimeSlot) *Catalog {
	c, err := New(list)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) Len() int {
	return len(c.slots)
}

func (c *Catalog) At(i int) TimeSlot {
	return c.slots[i]
}

func (c *Catalog) All() []TimeSlot {
	return c.slots
}

// IndexOf returns the catalog position of a display label, or -1.
func (c *Catalog) IndexOf(display string) int {
	if i, ok := c.byLabel[display]; ok {
		return i
	}
	return -1
}

func (c *Catalog) IsValidLabel(display string) bool {
	return c.IndexOf(display) >= 0
}

// RequiredSlots returns the ceil(duration/slotLength) consecutive display
// labels a service occupies starting at the given label, truncated at the
// catalog end. Unknown labels fall back to a single-slot occupation.
func (c *Catalog) RequiredSlots(startDisplay string, durationMinutes, slotLengthMinutes int) []string {
	startIdx := c.IndexOf(startDisplay)
	if startIdx < 0 {
		return []string{startDisplay}
	}

	needed := (durationMinutes + slotLengthMinutes - 1) / slotLengthMinutes
	if needed < 1 {
		needed = 1
	}

	occupied := []string{startDisplay}
	for i := 1; i < needed && startIdx+i < len(c.slots); i++ {
		occupied = append(occupied, c.slots[startIdx+i].DisplayTime)
	}
	return occupied
}

// StartOnDay anchors a slot's start time to the given calendar day.
func (c *Catalog) StartOnDay(display string, day time.Time, loc *time.Location) (time.Time, bool) {
	i := c.IndexOf(display)
	if i < 0 {
		return time.Time{}, false
	}
	mins, err := minutesOfDay(c.slots[i].StartTime)
	if err != nil {
		return time.Time{}, false
	}
	local := day.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), mins/60, mins%60, 0, 0, loc), true
}

func minutesOfDay(hhmm string) (int, error) {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("bad time %q", hhmm)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, err
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, err
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("bad time %q", hhmm)
	}
	return h*60 + m, nil
}
