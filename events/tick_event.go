package events

const (
	// TickEventName means the scheduled state is due
	TickEventName = "Tick"
	// QuitEventName asks the character loop to stop
	QuitEventName = "Quit"
)

// NewTickEvent creates TickEvent
func NewTickEvent() *Event {
	return &Event{Name: TickEventName}
}

// NewQuitEvent creates QuitEvent
func NewQuitEvent() *Event {
	return &Event{Name: QuitEventName}
}
