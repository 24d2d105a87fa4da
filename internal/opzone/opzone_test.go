package opzone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationFallsBackToDefault(t *testing.T) {
	assert.Equal(t, DefaultTimezone, Location("Not/AZone").String())
	assert.Equal(t, DefaultTimezone, Location("").String())
	assert.Equal(t, "Europe/Berlin", Location("Europe/Berlin").String())
}

func TestDayBounds(t *testing.T) {
	z := New(DefaultTimezone)

	// 23:30 UTC is already the next calendar day in Dubai (UTC+4)
	utc := time.Date(2026, 3, 10, 23, 30, 0, 0, time.UTC)

	start := z.DayStart(utc)
	assert.Equal(t, 11, start.Day())
	assert.Equal(t, 0, start.Hour())

	end := z.DayEnd(utc)
	assert.Equal(t, 11, end.Day())
	assert.Equal(t, 23, end.Hour())
	assert.True(t, end.After(start))
}

func TestSameDayAcrossZones(t *testing.T) {
	z := New(DefaultTimezone)

	// both instants land on March 11 in Dubai
	a := time.Date(2026, 3, 10, 21, 0, 0, 0, time.UTC)
	b := time.Date(2026, 3, 11, 10, 0, 0, 0, time.UTC)
	assert.True(t, z.SameDay(a, b))

	c := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	assert.False(t, z.SameDay(a, c))
}

func TestParseDate(t *testing.T) {
	z := New(DefaultTimezone)

	d, err := z.ParseDate("2026-03-10")
	require.NoError(t, err)
	assert.Equal(t, 2026, d.Year())
	assert.Equal(t, time.March, d.Month())
	assert.Equal(t, 10, d.Day())
	assert.Equal(t, z.Loc(), d.Location())

	_, err = z.ParseDate("10/03/2026")
	require.Error(t, err)
}

func TestFormatHelpers(t *testing.T) {
	z := New(DefaultTimezone)
	d := time.Date(2026, 3, 5, 0, 0, 0, 0, z.Loc())

	assert.Equal(t, "Mar 5, 2026", z.FormatDay(d))
	assert.Equal(t, "2026-03-05", z.DateString(d))
}

func TestIsPastDay(t *testing.T) {
	z := New(DefaultTimezone)

	assert.True(t, z.IsPastDay(z.Now().AddDate(0, 0, -1)))
	assert.False(t, z.IsPastDay(z.Now()))
	assert.False(t, z.IsPastDay(z.Now().AddDate(0, 0, 1)))
}
