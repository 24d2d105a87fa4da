package notify

import (
	"sync"

	"github.com/rs/zerolog"
)

// Dispatcher decouples notification writes from the request path with a
// bounded queue and a single worker goroutine.
type Dispatcher struct {
	service *Service
	queue   chan Message
	log     zerolog.Logger

	mu     sync.Mutex
	closed bool
}

func NewDispatcher(service *Service, log zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		service: service,
		queue:   make(chan Message, 100),
		log:     log,
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for msg := range d.queue {
		if err := d.service.Create(msg); err != nil {
			d.log.Error().Err(err).
				Uint("user_id", msg.UserID).
				Str("type", string(msg.Type)).
				Msg("notification write failed")
		}
	}
}

func (d *Dispatcher) Push(msg Message) {
	// a Push racing Close must never hit the closed channel
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		d.log.Warn().
			Uint("user_id", msg.UserID).
			Str("type", string(msg.Type)).
			Msg("notification dispatcher closed, dropping")
		return
	}

	select {
	case d.queue <- msg:
	default:
		// queue full, drop rather than block the request path
		d.log.Warn().
			Uint("user_id", msg.UserID).
			Str("type", string(msg.Type)).
			Msg("notification queue full, dropping")
	}
}

// Close stops accepting new messages. The worker drains what is already
// queued and exits.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}
	d.closed = true
	close(d.queue)
}

var _ Sink = (*Dispatcher)(nil)
