package audit

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Actions recorded for client and reservation mutations.
const (
	ActionClientCreated      = "client.created"
	ActionClientUpdated      = "client.updated"
	ActionClientDeleted      = "client.deleted"
	ActionReservationCreated = "reservation.created"
	ActionReservationUpdated = "reservation.updated"
	ActionReservationCancel  = "reservation.cancelled"
	ActionReservationDeleted = "reservation.deleted"
	ActionPhotoUploaded      = "reservation.photo_uploaded"
)

const (
	EntityClient      = "client"
	EntityReservation = "reservation"
)

const defaultQueueSize = 100

type Event struct {
	Action     string     `json:"action"`
	Entity     string     `json:"entity"`
	EntityID   *uuid.UUID `json:"entityId,omitempty"`
	Metadata   any        `json:"metadata,omitempty"`
	OccurredAt time.Time  `json:"occurredAt"`
}

// Sink receives every dispatched event.
type Sink interface {
	Write(ctx context.Context, ev Event) error
}

type Dispatcher struct {
	sinks []Sink
	queue chan Event
	log   *slog.Logger

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func NewDispatcher(log *slog.Logger, sinks ...Sink) *Dispatcher {
	if log == nil {
		log = slog.Default()
	}

	d := &Dispatcher{
		sinks: sinks,
		queue: make(chan Event, defaultQueueSize),
		log:   log,
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		for _, s := range d.sinks {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if err := s.Write(ctx, ev); err != nil {
				d.log.Error("audit sink failed",
					"action", ev.Action,
					"entity", ev.Entity,
					"err", err,
				)
			}
			cancel()
		}
	}
}

// Dispatch never blocks the request: a full queue drops the event.
// A nil Dispatcher is a no-op.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now().UTC()
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event", "action", ev.Action)
	}
}

// Close stops accepting events and waits until the queue is drained or ctx ends.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
