package audit

import (
	"sync"

	"github.com/rs/zerolog"
)

type Event struct {
	Action    string
	Entity    string
	EntityID  uint
	RequestID string
}

type Dispatcher struct {
	sink  Sink
	log   zerolog.Logger
	queue chan Event

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func NewDispatcher(sink Sink, log zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		log:   log,
		queue: make(chan Event, 100),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		if err := d.sink.Record(ev); err != nil {
			d.log.Error().Err(err).Str("action", ev.Action).Msg("audit error")
		}
	}
}

// Dispatch never blocks: a full queue drops the event, and so does a
// dispatcher that is already closed.
func (d *Dispatcher) Dispatch(ev Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.log.Warn().Str("action", ev.Action).Msg("audit dispatcher closed, dropping event")
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.log.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
	}
}

// Close stops accepting events and waits for the queue to drain.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	<-d.done
}
