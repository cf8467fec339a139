package input

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"
)

// Action is a logical input action, independent of the device that produced it.
type Action int

const (
	Move Action = iota
	Run
	Jump
)

func (a Action) String() string {
	switch a {
	case Move:
		return "move"
	case Run:
		return "run"
	case Jump:
		return "jump"
	default:
		return "unknown"
	}
}

type Phase int

const (
	Started Phase = iota
	Performed
	Canceled
)

func (p Phase) String() string {
	switch p {
	case Started:
		return "started"
	case Performed:
		return "performed"
	case Canceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Event carries the latest value of an action. Value is set for Move,
// Pressed for Run and Jump.
type Event struct {
	Action  Action
	Phase   Phase
	Value   mgl32.Vec2
	Pressed bool
}

type Handler func(Event)

// Source delivers action events to subscribed handlers.
type Source interface {
	Subscribe(action Action, handler Handler) *Subscription
}

// Subscription is the registration of one handler. Close releases it and is safe
// to call more than once.
type Subscription struct {
	bus    *Bus
	action Action
	id     uint64
}

func (s *Subscription) Close() error {
	if s == nil || s.bus == nil {
		return nil
	}
	s.bus.unsubscribe(s.action, s.id)
	s.bus = nil
	return nil
}

type entry struct {
	id      uint64
	handler Handler
}

// Bus is an in-process Source. Publish runs handlers synchronously in
// subscription order.
type Bus struct {
	nextID   uint64
	handlers map[Action][]entry
}

func NewBus() *Bus {
	return &Bus{handlers: make(map[Action][]entry)}
}

func (b *Bus) Subscribe(action Action, handler Handler) *Subscription {
	if handler == nil {
		return &Subscription{}
	}
	b.nextID++
	b.handlers[action] = append(b.handlers[action], entry{id: b.nextID, handler: handler})
	return &Subscription{bus: b, action: action, id: b.nextID}
}

func (b *Bus) unsubscribe(action Action, id uint64) {
	b.handlers[action] = slices.DeleteFunc(b.handlers[action], func(e entry) bool {
		return e.id == id
	})
}

func (b *Bus) Publish(evt Event) {
	// handlers may close their own subscription while running
	for _, e := range slices.Clone(b.handlers[evt.Action]) {
		e.handler(evt)
	}
}

// Subscribers returns the number of live handlers for an action.
func (b *Bus) Subscribers(action Action) int {
	return len(b.handlers[action])
}
