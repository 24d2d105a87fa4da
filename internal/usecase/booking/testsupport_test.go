package booking

import (
	"context"
	"sync"
	"time"

	domain "github.com/gulfwash/carwash-scheduler/internal/domain/booking"
	"github.com/gulfwash/carwash-scheduler/internal/httperr"
	"github.com/gulfwash/carwash-scheduler/internal/models"
	"github.com/gulfwash/carwash-scheduler/internal/notify"
	"github.com/gulfwash/carwash-scheduler/internal/opzone"
	"github.com/gulfwash/carwash-scheduler/internal/slots"
)

// fakeRepo is an in-memory Repository. It mirrors the SQL count
// semantics: cancelled bookings never occupy a slot.
type fakeRepo struct {
	mu sync.Mutex

	services  map[uint]*models.Service
	users     map[uint]*models.User
	employees []*models.Employee
	bookings  []*models.Booking
	reviews   []models.EmployeeReview
	flags     []models.EmployeeFlag

	nextBookingID  uint
	nextEmployeeID uint
	nextFlagID     uint
	nextRowID      uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		services: make(map[uint]*models.Service),
		users:    make(map[uint]*models.User),
	}
}

func (f *fakeRepo) addService(id uint, name string, minutes int, price float64) {
	f.services[id] = &models.Service{ID: id, Name: name, EstimatedMinutes: minutes, Price: price}
}

func (f *fakeRepo) addUser(id uint, role models.Role) *models.User {
	u := &models.User{ID: id, Role: role}
	f.users[id] = u
	return u
}

func (f *fakeRepo) addEmployee(userID uint, rows ...models.AvailabilitySlot) *models.Employee {
	f.nextEmployeeID++
	for i := range rows {
		f.nextRowID++
		rows[i].ID = f.nextRowID
		rows[i].EmployeeID = f.nextEmployeeID
	}
	e := &models.Employee{ID: f.nextEmployeeID, UserID: userID, AvailabilitySlots: rows}
	f.employees = append(f.employees, e)
	return e
}

func (f *fakeRepo) InTx(ctx context.Context, fn func(tx domain.Repository) error) error {
	return fn(f)
}

func (f *fakeRepo) GetService(ctx context.Context, id uint) (*models.Service, error) {
	if s, ok := f.services[id]; ok {
		return s, nil
	}
	return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
}

func (f *fakeRepo) ListServices(ctx context.Context) ([]models.Service, error) {
	out := make([]models.Service, 0, len(f.services))
	for _, s := range f.services {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeRepo) CreateBooking(ctx context.Context, b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextBookingID++
	b.ID = f.nextBookingID
	f.bookings = append(f.bookings, b)
	return nil
}

func (f *fakeRepo) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	for _, b := range f.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, httperr.ErrBusiness(httperr.CodeBookingNotFound)
}

func (f *fakeRepo) UpdateBooking(ctx context.Context, b *models.Booking) error {
	for i, have := range f.bookings {
		if have.ID == b.ID {
			f.bookings[i] = b
			return nil
		}
	}
	return httperr.ErrBusiness(httperr.CodeBookingNotFound)
}

func (f *fakeRepo) DeleteBooking(ctx context.Context, id uint) error {
	for i, b := range f.bookings {
		if b.ID == id {
			f.bookings = append(f.bookings[:i], f.bookings[i+1:]...)
			return nil
		}
	}
	return httperr.ErrBusiness(httperr.CodeBookingNotFound)
}

func (f *fakeRepo) ListBookings(ctx context.Context) ([]models.Booking, error) {
	out := make([]models.Booking, 0, len(f.bookings))
	for _, b := range f.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeRepo) ListBookingsByCustomer(ctx context.Context, customerID uint) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.CustomerID == customerID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListBookingsByEmployee(ctx context.Context, employeeID uint) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.AssignedEmployeeID != nil && *b.AssignedEmployeeID == employeeID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func inRange(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}

func (f *fakeRepo) CountSlotBookings(ctx context.Context, dayStart, dayEnd time.Time, slot string, locking bool) (int, error) {
	count := 0
	for _, b := range f.bookings {
		if inRange(b.Date, dayStart, dayEnd) && b.TimeSlot == slot && b.Status != string(domain.StatusCancelled) {
			count++
		}
	}
	return count, nil
}

func (f *fakeRepo) CountEmployeeSlotBookings(ctx context.Context, employeeID uint, dayStart, dayEnd time.Time, slot string) (int, error) {
	count := 0
	for _, b := range f.bookings {
		if b.AssignedEmployeeID != nil && *b.AssignedEmployeeID == employeeID &&
			inRange(b.Date, dayStart, dayEnd) && b.TimeSlot == slot && b.Status != string(domain.StatusCancelled) {
			count++
		}
	}
	return count, nil
}

func (f *fakeRepo) CountEmployeeDayBookings(ctx context.Context, employeeID uint, dayStart, dayEnd time.Time) (int, error) {
	count := 0
	for _, b := range f.bookings {
		if b.AssignedEmployeeID != nil && *b.AssignedEmployeeID == employeeID &&
			inRange(b.Date, dayStart, dayEnd) && b.Status != string(domain.StatusCancelled) {
			count++
		}
	}
	return count, nil
}

func (f *fakeRepo) ListDueReminders(ctx context.Context, from, to time.Time) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Status == string(domain.StatusConfirmed) && !b.ReminderNotified &&
			b.AssignedEmployeeID != nil && inRange(b.Date, from, to) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	out := make([]models.Employee, 0, len(f.employees))
	for _, e := range f.employees {
		out = append(out, *e)
	}
	return out, nil
}

func (f *fakeRepo) GetEmployee(ctx context.Context, id uint) (*models.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, httperr.ErrBusiness(httperr.CodeEmployeeNotFound)
}

func (f *fakeRepo) GetEmployeeByUser(ctx context.Context, userID uint) (*models.Employee, error) {
	for _, e := range f.employees {
		if e.UserID == userID {
			return e, nil
		}
	}
	return nil, httperr.ErrBusiness(httperr.CodeEmployeeNotFound)
}

func (f *fakeRepo) CreateEmployee(ctx context.Context, e *models.Employee) error {
	f.nextEmployeeID++
	e.ID = f.nextEmployeeID
	f.employees = append(f.employees, e)
	return nil
}

func (f *fakeRepo) UpsertAvailabilitySlot(ctx context.Context, row *models.AvailabilitySlot) error {
	for _, e := range f.employees {
		if e.ID != row.EmployeeID {
			continue
		}
		for i := range e.AvailabilitySlots {
			have := &e.AvailabilitySlots[i]
			if have.Date.Equal(row.Date) && have.TimeSlot == row.TimeSlot {
				have.IsAvailable = row.IsAvailable
				return nil
			}
		}
		f.nextRowID++
		row.ID = f.nextRowID
		e.AvailabilitySlots = append(e.AvailabilitySlots, *row)
		return nil
	}
	return httperr.ErrBusiness(httperr.CodeEmployeeNotFound)
}

func (f *fakeRepo) AddReview(ctx context.Context, r *models.EmployeeReview) error {
	f.reviews = append(f.reviews, *r)
	return nil
}

func (f *fakeRepo) AddFlag(ctx context.Context, fl *models.EmployeeFlag) error {
	f.nextFlagID++
	fl.ID = f.nextFlagID
	f.flags = append(f.flags, *fl)
	return nil
}

func (f *fakeRepo) ListFlags(ctx context.Context, employeeID uint) ([]models.EmployeeFlag, error) {
	var out []models.EmployeeFlag
	for _, fl := range f.flags {
		if fl.EmployeeID == employeeID {
			out = append(out, fl)
		}
	}
	return out, nil
}

func (f *fakeRepo) UpdateFlag(ctx context.Context, fl *models.EmployeeFlag) error {
	for i := range f.flags {
		if f.flags[i].ID == fl.ID {
			f.flags[i] = *fl
			return nil
		}
	}
	return httperr.ErrBusiness(httperr.CodeFlagNotFound)
}

func (f *fakeRepo) GetUser(ctx context.Context, id uint) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, httperr.ErrBusiness(httperr.CodeBookingNotFound)
}

func (f *fakeRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, httperr.ErrBusiness(httperr.CodeBookingNotFound)
}

func (f *fakeRepo) ListUsersByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		if u.Role == role {
			out = append(out, *u)
		}
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// fakeSink records pushed notifications.
type fakeSink struct {
	mu       sync.Mutex
	messages []notify.Message
}

func (s *fakeSink) Push(msg notify.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
}

func (s *fakeSink) byType(typ notify.Type) []notify.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []notify.Message
	for _, m := range s.messages {
		if m.Type == typ {
			out = append(out, m)
		}
	}
	return out
}

func testEnv(repo *fakeRepo) (*Env, *fakeSink) {
	sink := &fakeSink{}
	env := &Env{
		Repo:    repo,
		Catalog: slots.Default(),
		Zone:    opzone.New(opzone.DefaultTimezone),
		Notify:  sink,
		Params: Params{
			WindowDays:        7,
			PerEmployeeBudget: 1,
			SlotLengthMinutes: 75,
			DefaultCapacity:   5,
		},
	}
	return env, sink
}

// tomorrow returns the next calendar day as YYYY-MM-DD, always inside
// the booking window.
func tomorrow(env *Env) (string, time.Time) {
	day := env.Zone.DayStart(env.Zone.Now()).AddDate(0, 0, 1)
	return env.Zone.DateString(day), day
}
