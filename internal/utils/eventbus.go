package utils

type Event struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// EventBus fans entity change events out to a single consumer. Publish never blocks;
// events are dropped when the buffer is full.
type EventBus struct {
	events chan Event
}

func NewEventBus() *EventBus {
	return NewEventBusWithBuffer(100)
}

func NewEventBusWithBuffer(size int) *EventBus {
	return &EventBus{
		events: make(chan Event, size),
	}
}

func (eb *EventBus) Publish(event string, data interface{}) bool {
	e := Event{Event: event, Data: data}
	select {
	case eb.events <- e:
		return true
	default:
		return false
	}
}

func (eb *EventBus) SubscribeCh() <-chan Event {
	return eb.events
}
