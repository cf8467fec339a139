package entity

import (
	"fmt"
	"io"

	"github.com/milk9111/locomotion/ecs"
	"github.com/milk9111/locomotion/ecs/component"
)

// componentStep attaches one component to a freshly created entity.
type componentStep func(w *ecs.World, e ecs.Entity) error

func addComponent[T any](name string, kind component.ComponentKind[T], value *T) componentStep {
	return func(w *ecs.World, e ecs.Entity) error {
		if err := ecs.Add(w, e, kind, value); err != nil {
			if c, ok := any(value).(io.Closer); ok {
				_ = c.Close()
			}
			return fmt.Errorf("add %s: %w", name, err)
		}
		return nil
	}
}

// buildEntity creates an entity and runs steps in order. If a step fails the
// entity is destroyed, closing whatever was already attached.
func buildEntity(w *ecs.World, prefix string, steps ...componentStep) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	for _, step := range steps {
		if err := step(w, e); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("%s: %w", prefix, err)
		}
	}
	return e, nil
}
