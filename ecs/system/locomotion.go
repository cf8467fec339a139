package system

import (
	"github.com/milk9111/locomotion/ecs"
	"github.com/milk9111/locomotion/ecs/component"
)

// LocomotionSystem ticks every actor's motor against its mover and copies the
// resolved position back into the transform.
type LocomotionSystem struct {
	dt float32
}

func NewLocomotionSystem(dt float32) *LocomotionSystem {
	return &LocomotionSystem{dt: dt}
}

func (l *LocomotionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach3(w,
		component.LocomotionComponent.Kind(),
		component.BodyComponent.Kind(),
		component.TransformComponent.Kind(),
		func(e ecs.Entity, loco *component.Locomotion, body *component.Body, t *component.Transform) {
			if loco.Motor == nil || body.Mover == nil {
				return
			}
			loco.Motor.Tick(&loco.State, body.Mover, l.dt)
			t.Position = body.Mover.Position()
		},
	)
}
