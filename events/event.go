package events

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Event is event Description
type Event struct {
	Name string
	Args []interface{}
}

// IDEventSource type to identify event sources
type IDEventSource = uint64

// EventSource is definition of the source of events.
// A source closes its Events channel when it has nothing more to send.
type EventSource interface {
	Name() string
	Events() chan *Event
	Close()
}

// EventSources is set of event sources
type EventSources = []EventSource

// EventSourceMultiplexer merges event sources into one ordered stream.
// Closing it stops reading every source, including the ones whose Close
// does not close their channel.
type EventSourceMultiplexer struct {
	mu    sync.Mutex
	idSeq IDEventSource

	multiplexer  chan event
	done         chan struct{}
	closeOnce    sync.Once
	eventSources map[IDEventSource]EventSource
}

// NewEventSourceMultiplexer creates new EventSourceMultiplexer
func NewEventSourceMultiplexer() *EventSourceMultiplexer {
	return &EventSourceMultiplexer{
		multiplexer:  make(chan event, 64),
		done:         make(chan struct{}),
		eventSources: make(map[IDEventSource]EventSource),
	}
}

// NextEvent gets next event. Events of removed sources are skipped.
func (esm *EventSourceMultiplexer) NextEvent(ctx context.Context) (*Event, error) {
	for {
		var e event
		select {
		case e = <-esm.multiplexer:
		case <-ctx.Done():
			return nil, ctx.Err()
		}

		esm.mu.Lock()
		es, ok := esm.eventSources[e.idEventSource]
		esm.mu.Unlock()
		if !ok { // The event is still relevant?
			continue
		}

		log.Tracef("NextEvent: Source=%s, Name=%s", es.Name(), e.event.Name)
		return e.event, nil
	}
}

// AddEventSource adds new event source
func (esm *EventSourceMultiplexer) AddEventSource(eventSource EventSource) IDEventSource {
	esm.mu.Lock()
	id := esm.idSeq
	esm.idSeq++
	esm.eventSources[id] = eventSource
	esm.mu.Unlock()

	go esm.runEventSource(id, eventSource)

	return id
}

// RemoveEventSource removes event source
func (esm *EventSourceMultiplexer) RemoveEventSource(id IDEventSource) {
	esm.mu.Lock()
	eventSource, ok := esm.eventSources[id]
	delete(esm.eventSources, id)
	esm.mu.Unlock()

	if ok {
		eventSource.Close()
	}
}

// Len returns the number of registered sources
func (esm *EventSourceMultiplexer) Len() int {
	esm.mu.Lock()
	defer esm.mu.Unlock()
	return len(esm.eventSources)
}

// Close removes all sources and stops forwarding
func (esm *EventSourceMultiplexer) Close() {
	esm.closeOnce.Do(func() {
		close(esm.done)
	})

	esm.mu.Lock()
	sources := esm.eventSources
	esm.eventSources = make(map[IDEventSource]EventSource)
	esm.mu.Unlock()

	for _, eventSource := range sources {
		eventSource.Close()
	}
}

type event struct {
	idEventSource IDEventSource
	event         *Event
}

func (esm *EventSourceMultiplexer) runEventSource(id IDEventSource, eventSource EventSource) {
	log.Debugf("EventSource '%s' running", eventSource.Name())
	defer log.Debugf("EventSource '%s' stopped", eventSource.Name())

	for {
		var e *Event
		var ok bool
		select {
		case e, ok = <-eventSource.Events():
			if !ok {
				return
			}
		case <-esm.done:
			return
		}

		select {
		case esm.multiplexer <- event{id, e}:
		case <-esm.done:
			return
		}
	}
}
