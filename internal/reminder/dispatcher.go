// Package reminder runs the periodic scan that emits the one-shot
// "starting in ~15 minutes" notifications.
package reminder

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gulfwash/carwash-scheduler/internal/models"
	"github.com/gulfwash/carwash-scheduler/internal/notify"
	"github.com/gulfwash/carwash-scheduler/internal/opzone"
	"github.com/gulfwash/carwash-scheduler/internal/slots"
)

const leaderKey = "carwash:reminder:leader"

// Store is the slice of persistence the dispatcher needs.
type Store interface {
	ListDueReminders(ctx context.Context, from, to time.Time) ([]models.Booking, error)
	GetEmployee(ctx context.Context, id uint) (*models.Employee, error)
	UpdateBooking(ctx context.Context, b *models.Booking) error
}

type Config struct {
	Tick          time.Duration
	LeadMinutes   float64
	WindowMinutes float64
}

func DefaultConfig() Config {
	return Config{
		Tick:          time.Minute,
		LeadMinutes:   15,
		WindowMinutes: 0.5,
	}
}

// Dispatcher is a supervised single-instance task. When a redis client
// is configured, a SetNX lease keeps scaled-out replicas from emitting
// duplicate reminders; without redis the deployment must run one copy.
type Dispatcher struct {
	store   Store
	sink    notify.Sink
	catalog *slots.Catalog
	zone    *opzone.Zone
	cfg     Config
	log     zerolog.Logger
	rdb     *redis.Client

	instanceID string
	now        func() time.Time

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
}

func NewDispatcher(
	store Store,
	sink notify.Sink,
	catalog *slots.Catalog,
	zone *opzone.Zone,
	cfg Config,
	log zerolog.Logger,
	rdb *redis.Client,
) *Dispatcher {
	d := &Dispatcher{
		store:      store,
		sink:       sink,
		catalog:    catalog,
		zone:       zone,
		cfg:        cfg,
		log:        log,
		rdb:        rdb,
		instanceID: uuid.NewString(),
		stopCh:     make(chan struct{}),
	}
	d.now = zone.Now
	return d
}

// Start runs the tick loop until the context is cancelled or Stop is
// called.
func (d *Dispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	if d.running {
		d.mu.Unlock()
		return
	}
	d.running = true
	d.mu.Unlock()

	d.log.Info().
		Dur("tick", d.cfg.Tick).
		Float64("lead_minutes", d.cfg.LeadMinutes).
		Msg("reminder dispatcher started")

	ticker := time.NewTicker(d.cfg.Tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			d.log.Info().Msg("reminder dispatcher stopped by context")
			return
		case <-d.stopCh:
			d.log.Info().Msg("reminder dispatcher stopped")
			return
		case <-ticker.C:
			if d.isLeader(ctx) {
				d.Tick(ctx)
			}
		}
	}
}

func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.running {
		d.running = false
		close(d.stopCh)
	}
	d.mu.Unlock()
}

func (d *Dispatcher) isLeader(ctx context.Context) bool {
	if d.rdb == nil {
		return true
	}

	ok, err := d.rdb.SetNX(ctx, leaderKey, d.instanceID, 2*d.cfg.Tick).Result()
	if err != nil {
		// redis down: fall back to running and accept the duplicate risk
		d.log.Warn().Err(err).Msg("reminder leader lease unavailable")
		return true
	}
	if ok {
		return true
	}
	holder, err := d.rdb.Get(ctx, leaderKey).Result()
	if err != nil {
		return false
	}
	if holder == d.instanceID {
		d.rdb.Expire(ctx, leaderKey, 2*d.cfg.Tick)
		return true
	}
	return false
}

// Tick scans the near window once. Per-booking failures are logged and
// never abort the scan.
func (d *Dispatcher) Tick(ctx context.Context) {
	now := d.now()
	// Booking dates are midnight-anchored; anchor the lower bound to the
	// day containing now-1h or today's bookings would never match.
	from := d.zone.DayStart(now.Add(-time.Hour))
	to := now.Add(24 * time.Hour)

	bookings, err := d.store.ListDueReminders(ctx, from, to)
	if err != nil {
		d.log.Error().Err(err).Msg("reminder scan query failed")
		return
	}

	for i := range bookings {
		d.process(ctx, &bookings[i], now)
	}
}

func (d *Dispatcher) process(ctx context.Context, b *models.Booking, now time.Time) {
	scheduled, ok := d.catalog.StartOnDay(b.TimeSlot, b.Date, d.zone.Loc())
	if !ok {
		d.log.Warn().Uint("booking_id", b.ID).Str("time_slot", b.TimeSlot).Msg("booking has unknown time slot")
		return
	}

	delta := scheduled.Sub(now).Minutes()
	if delta < d.cfg.LeadMinutes-d.cfg.WindowMinutes || delta > d.cfg.LeadMinutes+d.cfg.WindowMinutes {
		return
	}

	data := map[string]any{"booking_id": b.ID, "booking_code": b.Code}

	d.sink.Push(notify.Message{
		UserID: b.CustomerID,
		Title:  "Upcoming Booking",
		Text:   fmt.Sprintf("Your booking is scheduled at %s, starting in %d minutes.", b.TimeSlot, int(d.cfg.LeadMinutes)),
		Type:   notify.TypeReminder,
		Data:   data,
	})

	if b.AssignedEmployeeID != nil {
		emp, err := d.store.GetEmployee(ctx, *b.AssignedEmployeeID)
		if err != nil {
			d.log.Error().Err(err).Uint("booking_id", b.ID).Msg("reminder employee lookup failed")
		} else {
			d.sink.Push(notify.Message{
				UserID: emp.UserID,
				Title:  "Upcoming Job",
				Text:   fmt.Sprintf("You have a job scheduled at %s, starting in %d minutes.", b.TimeSlot, int(d.cfg.LeadMinutes)),
				Type:   notify.TypeReminder,
				Data:   data,
			})
		}
	}

	sentAt := now
	b.ReminderNotified = true
	b.ReminderSentAt = &sentAt
	if err := d.store.UpdateBooking(ctx, b); err != nil {
		d.log.Error().Err(err).Uint("booking_id", b.ID).Msg("failed to mark booking as reminded")
	}
}
