package system

import (
	"github.com/milk9111/locomotion/billboard"
	"github.com/milk9111/locomotion/ecs"
	"github.com/milk9111/locomotion/ecs/component"
)

// SpriteFacingSystem mirrors sprites toward their horizontal motion.
type SpriteFacingSystem struct{}

func NewSpriteFacingSystem() *SpriteFacingSystem {
	return &SpriteFacingSystem{}
}

func (s *SpriteFacingSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.LocomotionComponent.Kind(), component.SpriteComponent.Kind(),
		func(e ecs.Entity, loco *component.Locomotion, sprite *component.Sprite) {
			sprite.FlipX = billboard.FlipX(sprite.FlipX, loco.State.Applied.X())
		},
	)
}
