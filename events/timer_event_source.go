package events

import (
	"sync"
	"time"
)

type timerEventSource struct {
	name      string
	eventChan chan *Event
	timer     *time.Timer
	once      sync.Once
}

// NewTimerEventSource creates an event source that sends a single event after d.
// Closing it before d elapses cancels the event.
func NewTimerEventSource(name string, d time.Duration, e *Event) EventSource {
	es := &timerEventSource{
		name:      name,
		eventChan: make(chan *Event, 1),
	}

	es.timer = time.AfterFunc(d, func() {
		es.eventChan <- e
		es.finish()
	})

	return es
}

func (es *timerEventSource) Name() string {
	return es.name
}

func (es *timerEventSource) Events() chan *Event {
	return es.eventChan
}

func (es *timerEventSource) Close() {
	if es.timer.Stop() {
		es.finish()
	}
}

func (es *timerEventSource) finish() {
	es.once.Do(func() {
		close(es.eventChan)
	})
}
