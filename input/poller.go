package input

import "github.com/go-gl/mathgl/mgl32"

// Snapshot is the raw device state for one tick.
type Snapshot struct {
	Move mgl32.Vec2
	Run  bool
	Jump bool
}

type Device interface {
	Sample() Snapshot
}

// Poller turns per-tick device snapshots into started/performed/canceled events.
type Poller struct {
	device Device
	prev   Snapshot
}

func NewPoller(device Device) *Poller {
	return &Poller{device: device}
}

func (p *Poller) Poll(b *Bus) {
	if p == nil || p.device == nil || b == nil {
		return
	}
	cur := p.device.Sample()

	if cur.Move != p.prev.Move {
		zero := mgl32.Vec2{}
		switch {
		case p.prev.Move == zero:
			b.Publish(Event{Action: Move, Phase: Started, Value: cur.Move})
			b.Publish(Event{Action: Move, Phase: Performed, Value: cur.Move})
		case cur.Move == zero:
			b.Publish(Event{Action: Move, Phase: Canceled, Value: cur.Move})
		default:
			b.Publish(Event{Action: Move, Phase: Performed, Value: cur.Move})
		}
	}
	publishButton(b, Run, p.prev.Run, cur.Run)
	publishButton(b, Jump, p.prev.Jump, cur.Jump)

	p.prev = cur
}

// Reset forgets the previous snapshot so the next Poll reports every held input as
// newly started. Call it when new subscribers replace old ones mid-press.
func (p *Poller) Reset() {
	if p == nil {
		return
	}
	p.prev = Snapshot{}
}

func publishButton(b *Bus, action Action, prev, cur bool) {
	if prev == cur {
		return
	}
	if cur {
		b.Publish(Event{Action: action, Phase: Started, Pressed: true})
		b.Publish(Event{Action: action, Phase: Performed, Pressed: true})
		return
	}
	b.Publish(Event{Action: action, Phase: Canceled})
}
