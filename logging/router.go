package logging

import (
	"context"
	"log"
	"os"
	"time"
)

type Clock interface {
	Now() time.Time
}

type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

type Sink interface {
	Write(Event) error
	Close(context.Context) error
}

type NamedSink struct {
	Name string
	Sink Sink
}

// Router fans events out to its sinks synchronously. The library it serves
// is single-threaded, so there is no queue: Publish writes to every sink
// before returning, dropping events below the minimum severity.
type Router struct {
	sinks       []NamedSink
	clock       Clock
	fallback    *log.Logger
	minSeverity Severity
	fields      map[string]any
	closed      bool

	eventsTotal  uint64
	droppedTotal uint64
}

type RouterStats struct {
	EventsTotal  uint64
	DroppedTotal uint64
}

func NewRouter(clock Clock, cfg Config, namedSinks []NamedSink) *Router {
	if clock == nil {
		clock = ClockFunc(time.Now)
	}
	return &Router{
		sinks:       namedSinks,
		clock:       clock,
		fallback:    log.New(os.Stderr, "[logging] ", log.LstdFlags),
		minSeverity: cfg.MinimumSeverity,
		fields:      cfg.CloneFields(),
	}
}

func (r *Router) Publish(_ context.Context, event Event) {
	if r == nil || r.closed {
		return
	}
	if event.Severity < r.minSeverity {
		return
	}

	if event.Time.IsZero() {
		event.Time = r.clock.Now()
	}
	if len(r.fields) > 0 {
		if event.Extra == nil {
			event.Extra = make(map[string]any, len(r.fields))
		}
		for k, v := range r.fields {
			if _, exists := event.Extra[k]; !exists {
				event.Extra[k] = v
			}
		}
	}

	r.eventsTotal++
	for _, named := range r.sinks {
		if named.Sink == nil {
			continue
		}
		if err := named.Sink.Write(event); err != nil {
			r.droppedTotal++
			r.fallback.Printf("sink %s rejected event %s: %v", named.Name, event.Type, err)
		}
	}
}

func (r *Router) Stats() RouterStats {
	if r == nil {
		return RouterStats{}
	}
	return RouterStats{EventsTotal: r.eventsTotal, DroppedTotal: r.droppedTotal}
}

func (r *Router) Close(ctx context.Context) error {
	if r == nil || r.closed {
		return nil
	}
	r.closed = true

	var firstErr error
	for _, named := range r.sinks {
		if named.Sink == nil {
			continue
		}
		if err := named.Sink.Close(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
