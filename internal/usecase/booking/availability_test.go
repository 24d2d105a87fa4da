package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/gulfwash/carwash-scheduler/internal/domain/booking"
	"github.com/gulfwash/carwash-scheduler/internal/models"
)

func TestEvaluateDefaultCapacityWithNoEmployees(t *testing.T) {
	repo := newFakeRepo()
	env, _ := testEnv(repo)

	_, day := tomorrow(env)
	avail, err := Evaluate(context.Background(), repo, env.Catalog, env.Zone, env.Params, domain.AvailabilityInput{
		Date: day, TimeSlot: slotMorning,
	}, false)
	require.NoError(t, err)

	assert.True(t, avail.Available)
	assert.Equal(t, 5, avail.Capacity)
	assert.Equal(t, 5, avail.AvailableEmployees)
	assert.Equal(t, 0, avail.CurrentBookings)
}

func TestEvaluateReportsBottleneckSlot(t *testing.T) {
	repo := newFakeRepo()
	env, _ := testEnv(repo)

	// 150 minutes: requires 09:00 and 10:15
	repo.addService(2, "Full Detailing", 150, 199.0)

	_, day := tomorrow(env)
	// two employees cover the first slot, only one covers the second
	repo.addEmployee(20,
		models.AvailabilitySlot{Date: day, TimeSlot: slotMorning, IsAvailable: true},
		models.AvailabilitySlot{Date: day, TimeSlot: "10:15 - 11:30", IsAvailable: true},
	)
	repo.addEmployee(21,
		models.AvailabilitySlot{Date: day, TimeSlot: slotMorning, IsAvailable: true},
	)

	avail, err := Evaluate(context.Background(), repo, env.Catalog, env.Zone, env.Params, domain.AvailabilityInput{
		Date: day, TimeSlot: slotMorning, ServiceID: 2,
	}, false)
	require.NoError(t, err)

	assert.True(t, avail.Available)
	assert.Equal(t, 1, avail.Capacity)
	assert.Equal(t, 1, avail.AvailableEmployees)
	assert.Equal(t, []string{slotMorning, "10:15 - 11:30"}, avail.RequiredSlots)
}

func TestEvaluateTurnsUnavailableWhenFull(t *testing.T) {
	repo := newFakeRepo()
	env, _ := testEnv(repo)

	_, day := tomorrow(env)
	emp := repo.addEmployee(20, models.AvailabilitySlot{
		Date: day, TimeSlot: slotMorning, IsAvailable: true,
	})

	repo.bookings = append(repo.bookings, &models.Booking{
		ID: 1, AssignedEmployeeID: &emp.ID, Date: day,
		TimeSlot: slotMorning, Status: string(domain.StatusConfirmed),
	})

	avail, err := Evaluate(context.Background(), repo, env.Catalog, env.Zone, env.Params, domain.AvailabilityInput{
		Date: day, TimeSlot: slotMorning,
	}, false)
	require.NoError(t, err)

	assert.False(t, avail.Available)
	assert.Equal(t, 1, avail.Capacity)
	assert.Equal(t, 1, avail.CurrentBookings)
}

func TestListDaySlotsStatuses(t *testing.T) {
	repo := newFakeRepo()
	env, _ := testEnv(repo)

	_, day := tomorrow(env)
	// four implicitly available employees: capacity 4 everywhere
	for i := 0; i < 4; i++ {
		repo.addEmployee(uint(20 + i))
	}

	// 09:00 full (4/4), 10:15 limited (3/4 >= 0.7), 11:30 untouched
	for i := 0; i < 4; i++ {
		repo.bookings = append(repo.bookings, &models.Booking{
			ID: uint(i + 1), Date: day, TimeSlot: slotMorning,
			Status: string(domain.StatusConfirmed),
		})
	}
	for i := 0; i < 3; i++ {
		repo.bookings = append(repo.bookings, &models.Booking{
			ID: uint(i + 10), Date: day, TimeSlot: "10:15 - 11:30",
			Status: string(domain.StatusConfirmed),
		})
	}

	out, err := NewListDaySlots(env).Execute(context.Background(), day, 0)
	require.NoError(t, err)
	require.Len(t, out, env.Catalog.Len())

	byLabel := make(map[string]domain.DaySlot, len(out))
	for _, s := range out {
		byLabel[s.TimeSlot] = s
	}

	assert.Equal(t, domain.SlotFull, byLabel[slotMorning].Status)
	assert.Equal(t, domain.SlotLimited, byLabel["10:15 - 11:30"].Status)
	assert.Equal(t, domain.SlotAvailable, byLabel["11:30 - 12:45"].Status)
}

func TestFindBestEmployeeHonorsBudget(t *testing.T) {
	repo := newFakeRepo()
	env, _ := testEnv(repo)

	_, day := tomorrow(env)
	full := repo.addEmployee(20)
	free := repo.addEmployee(21)

	repo.bookings = append(repo.bookings, &models.Booking{
		ID: 1, AssignedEmployeeID: &full.ID, Date: day,
		TimeSlot: slotMorning, Status: string(domain.StatusConfirmed),
	})

	emp, err := findBestEmployee(context.Background(), repo, env.Zone, env.Params, day, []string{slotMorning})
	require.NoError(t, err)
	require.NotNil(t, emp)
	assert.Equal(t, free.ID, emp.ID)
}

func TestFindBestEmployeeNoneLeft(t *testing.T) {
	repo := newFakeRepo()
	env, _ := testEnv(repo)

	_, day := tomorrow(env)
	full := repo.addEmployee(20)
	repo.bookings = append(repo.bookings, &models.Booking{
		ID: 1, AssignedEmployeeID: &full.ID, Date: day,
		TimeSlot: slotMorning, Status: string(domain.StatusConfirmed),
	})

	emp, err := findBestEmployee(context.Background(), repo, env.Zone, env.Params, day, []string{slotMorning})
	require.NoError(t, err)
	assert.Nil(t, emp)
}
