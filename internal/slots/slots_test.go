package slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	assert.Equal(t, 11, c.Len())
	assert.Equal(t, "06:30 - 07:45", c.At(0).DisplayTime)
	assert.Equal(t, "19:00 - 20:15", c.At(10).DisplayTime)

	assert.Equal(t, 0, c.IndexOf("06:30 - 07:45"))
	assert.Equal(t, -1, c.IndexOf("06:30-07:45"))
	assert.True(t, c.IsValidLabel("14:00 - 15:15"))
	assert.False(t, c.IsValidLabel("garbage"))
}

func TestNewRejectsOutOfOrderCatalog(t *testing.T) {
	_, err := New([]TimeSlot{
		{ID: "a", StartTime: "09:00", EndTime: "10:15", DisplayTime: "09:00 - 10:15"},
		{ID: "b", StartTime: "07:45", EndTime: "09:00", DisplayTime: "07:45 - 09:00"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clock order")
}

func TestNewRejectsBadDisplayLabel(t *testing.T) {
	_, err := New([]TimeSlot{
		{ID: "a", StartTime: "09:00", EndTime: "10:15", DisplayTime: "9:00-10:15"},
	})
	require.Error(t, err)
}

func TestRequiredSlots(t *testing.T) {
	c := Default()

	tests := []struct {
		name     string
		start    string
		duration int
		want     []string
	}{
		{"fits one slot", "09:00 - 10:15", 60, []string{"09:00 - 10:15"}},
		{"exactly one slot", "09:00 - 10:15", 75, []string{"09:00 - 10:15"}},
		{"spills into second", "09:00 - 10:15", 76, []string{"09:00 - 10:15", "10:15 - 11:30"}},
		{"three slots", "09:00 - 10:15", 200, []string{"09:00 - 10:15", "10:15 - 11:30", "11:30 - 12:45"}},
		{"truncated at catalog end", "19:00 - 20:15", 150, []string{"19:00 - 20:15"}},
		{"zero duration", "09:00 - 10:15", 0, []string{"09:00 - 10:15"}},
		{"unknown label", "99:00 - 99:15", 150, []string{"99:00 - 99:15"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := c.RequiredSlots(tc.start, tc.duration, 75)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestStartOnDay(t *testing.T) {
	c := Default()
	loc, err := time.LoadLocation("Asia/Dubai")
	require.NoError(t, err)

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, loc)

	start, ok := c.StartOnDay("14:00 - 15:15", day, loc)
	require.True(t, ok)
	assert.Equal(t, 14, start.Hour())
	assert.Equal(t, 0, start.Minute())
	assert.True(t, start.Equal(time.Date(2026, 3, 10, 14, 0, 0, 0, loc)))

	_, ok = c.StartOnDay("not a slot", day, loc)
	require.False(t, ok)
}
