package events

type chanEventSource struct {
	name      string
	eventChan chan *Event
}

// NewChanEventSource wraps a channel owned by the caller.
// The caller closes the channel when the source is exhausted.
func NewChanEventSource(name string, eventChan chan *Event) EventSource {
	return &chanEventSource{
		name:      name,
		eventChan: eventChan,
	}
}

func (es *chanEventSource) Name() string {
	return es.name
}

func (es *chanEventSource) Events() chan *Event {
	return es.eventChan
}

func (es *chanEventSource) Close() {
}
