package locomotion

import "github.com/milk9111/locomotion/input"

// Binding holds the input subscriptions that feed one MotionState.
type Binding struct {
	subs []*input.Subscription
}

// Bind subscribes s to Move, Run and Jump events from src. The returned Binding
// must be closed when the actor is disabled or despawned.
func Bind(src input.Source, s *MotionState, m *Motor) *Binding {
	b := &Binding{}
	if src == nil || s == nil || m == nil {
		return b
	}
	b.subs = append(b.subs,
		src.Subscribe(input.Move, func(evt input.Event) {
			m.OnMove(s, evt.Value)
		}),
		src.Subscribe(input.Run, func(evt input.Event) {
			m.OnRun(s, evt.Pressed)
		}),
		src.Subscribe(input.Jump, func(evt input.Event) {
			m.OnJump(s, evt.Pressed)
		}),
	)
	return b
}

func (b *Binding) Close() error {
	if b == nil {
		return nil
	}
	for _, sub := range b.subs {
		_ = sub.Close()
	}
	b.subs = nil
	return nil
}
