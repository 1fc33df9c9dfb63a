package events

import (
	"errors"
	"fmt"
)

// PointerMovedEventData is the PointerMovedEvent data
type PointerMovedEventData struct {
	X, Y float64
}

const (
	// PointerMovedEventName is the event name for pointer move/enter notifications
	PointerMovedEventName = "PointerMoved"
)

// NewPointerMovedEvent creates PointerMovedEvent
func NewPointerMovedEvent(x, y float64) *Event {
	return &Event{
		Name: PointerMovedEventName,
		Args: []interface{}{
			PointerMovedEventData{x, y},
		},
	}
}

// GetPointerMovedEventData gets PointerMovedEvent data
func (event *Event) GetPointerMovedEventData() (PointerMovedEventData, error) {
	if event.Name != PointerMovedEventName {
		return PointerMovedEventData{},
			fmt.Errorf("The event must be named %s", PointerMovedEventName)
	}

	if len(event.Args) != 1 {
		return PointerMovedEventData{},
			errors.New("Event does not data")
	}

	data, ok := event.Args[0].(PointerMovedEventData)
	if !ok {
		return PointerMovedEventData{},
			errors.New("Event does not contain pointer coordinates")
	}

	return data, nil
}
