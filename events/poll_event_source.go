package events

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// PollFunc returns the event to send, or nil when there is nothing new
type PollFunc func() *Event

type pollEventSource struct {
	name      string
	eventChan chan *Event
	period    time.Duration
	poll      PollFunc
	quit      chan struct{}
	once      sync.Once
}

// NewPollEventSource creates an event source that calls poll every period
func NewPollEventSource(name string, period time.Duration, poll PollFunc) EventSource {
	es := &pollEventSource{
		name:      name,
		eventChan: make(chan *Event),
		period:    period,
		poll:      poll,
		quit:      make(chan struct{}),
	}

	logrus.Tracef("Starting %s poller", name)
	go es.run()
	return es
}

func (es *pollEventSource) Name() string {
	return es.name
}

func (es *pollEventSource) Events() chan *Event {
	return es.eventChan
}

func (es *pollEventSource) Close() {
	es.once.Do(func() {
		close(es.quit)
	})
}

func (es *pollEventSource) run() {
	defer close(es.eventChan)

	t := time.NewTicker(es.period)
	defer t.Stop()
	for {
		if e := es.poll(); e != nil {
			select {
			case es.eventChan <- e:
			case <-es.quit:
				return
			}
		}

		select {
		case <-t.C:
		case <-es.quit:
			return
		}
	}
}
