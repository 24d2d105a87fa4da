package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/gulfwash/carwash-scheduler/internal/domain/booking"
	"github.com/gulfwash/carwash-scheduler/internal/models"
)

func TestListByEmployeeAcceptsUserRef(t *testing.T) {
	repo := newFakeRepo()
	env, _ := testEnv(repo)

	emp := repo.addEmployee(20)
	b := seedBooking(repo, env, domain.StatusConfirmed, &emp.ID)

	q := NewQueries(env)

	// by employee id
	byEmp, err := q.ListByEmployee(context.Background(), emp.ID)
	require.NoError(t, err)
	require.Len(t, byEmp, 1)
	assert.Equal(t, b.ID, byEmp[0].ID)

	// by the user id behind the profile
	byUser, err := q.ListByEmployee(context.Background(), 20)
	require.NoError(t, err)
	require.Len(t, byUser, 1)
	assert.Equal(t, b.ID, byUser[0].ID)
}

func TestAvailableEmployeesRequiresExplicitRow(t *testing.T) {
	repo := newFakeRepo()
	env, _ := testEnv(repo)

	_, day := tomorrow(env)
	listed := repo.addEmployee(20, models.AvailabilitySlot{
		Date: day, TimeSlot: slotMorning, IsAvailable: true,
	})
	repo.addEmployee(21, models.AvailabilitySlot{
		Date: day, TimeSlot: slotMorning, IsAvailable: false,
	})
	repo.addEmployee(22) // implicit availability does not surface here

	out, err := NewQueries(env).AvailableEmployees(context.Background(), day, slotMorning)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, listed.ID, out[0].EmployeeID)
}

func TestPublishAvailabilityUpserts(t *testing.T) {
	repo := newFakeRepo()
	env, _ := testEnv(repo)

	emp := repo.addEmployee(20)
	dateStr, _ := tomorrow(env)

	uc := NewPublishAvailability(env)
	out, err := uc.Execute(context.Background(), emp.ID, []AvailabilityRowInput{
		{Date: dateStr, TimeSlot: slotMorning, IsAvailable: true},
		{Date: dateStr, TimeSlot: "10:15 - 11:30", IsAvailable: false},
	})
	require.NoError(t, err)
	require.Len(t, out.AvailabilitySlots, 2)

	// publishing again flips in place instead of duplicating
	out, err = uc.Execute(context.Background(), emp.ID, []AvailabilityRowInput{
		{Date: dateStr, TimeSlot: slotMorning, IsAvailable: false},
	})
	require.NoError(t, err)
	require.Len(t, out.AvailabilitySlots, 2)
	assert.False(t, out.AvailabilitySlots[0].IsAvailable)
}

func TestPublishAvailabilityValidatesInput(t *testing.T) {
	repo := newFakeRepo()
	env, _ := testEnv(repo)

	emp := repo.addEmployee(20)
	dateStr, _ := tomorrow(env)

	uc := NewPublishAvailability(env)

	_, err := uc.Execute(context.Background(), emp.ID, []AvailabilityRowInput{
		{Date: "03/10/2026", TimeSlot: slotMorning, IsAvailable: true},
	})
	require.Error(t, err)

	_, err = uc.Execute(context.Background(), emp.ID, []AvailabilityRowInput{
		{Date: dateStr, TimeSlot: "nope", IsAvailable: true},
	})
	require.Error(t, err)

	_, err = uc.Execute(context.Background(), 999, nil)
	require.Error(t, err)
}
