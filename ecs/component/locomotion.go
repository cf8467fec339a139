package component

import "github.com/milk9111/locomotion/locomotion"

// Locomotion carries an actor's motion state, its motor and the input binding
// feeding the state.
type Locomotion struct {
	State   locomotion.MotionState
	Motor   *locomotion.Motor
	Binding *locomotion.Binding
}

// Close releases the input subscriptions. The world calls it when the entity is
// destroyed.
func (l *Locomotion) Close() error {
	if l == nil {
		return nil
	}
	err := l.Binding.Close()
	l.Binding = nil
	return err
}

var LocomotionComponent = NewComponent[Locomotion]()
