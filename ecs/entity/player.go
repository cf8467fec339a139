package entity

import (
	"fmt"
	"image"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/locomotion/ecs"
	"github.com/milk9111/locomotion/ecs/component"
	"github.com/milk9111/locomotion/input"
	"github.com/milk9111/locomotion/locomotion"
	"github.com/milk9111/locomotion/mover"
	"github.com/milk9111/locomotion/prefabs"
)

// NewPlayer spawns the player from spec, driven by src and moved through mv.
// Destroying the entity releases its input subscriptions.
func NewPlayer(w *ecs.World, spec *prefabs.PlayerSpec, src input.Source, mv mover.Mover) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("player: nil spec")
	}
	if mv == nil {
		return 0, fmt.Errorf("player: nil mover")
	}
	tuning, err := spec.Tuning()
	if err != nil {
		return 0, fmt.Errorf("player: tuning: %w", err)
	}
	motor, err := locomotion.NewMotor(tuning)
	if err != nil {
		return 0, fmt.Errorf("player: motor: %w", err)
	}
	size, err := spec.BodySize()
	if err != nil {
		return 0, fmt.Errorf("player: size: %w", err)
	}
	clr, err := spec.Sprite.RGBA()
	if err != nil {
		return 0, fmt.Errorf("player: sprite: %w", err)
	}

	loco := &component.Locomotion{Motor: motor}

	texels := image.Pt(spec.Sprite.Width, spec.Sprite.Height)
	if texels.X <= 0 || texels.Y <= 0 {
		texels = image.Pt(16, 32)
	}

	return buildEntity(w, "player",
		addComponent("player", component.PlayerComponent.Kind(), &component.Player{Spawn: spec.Spawn.Vec()}),
		addComponent("transform", component.TransformComponent.Kind(), &component.Transform{
			Position: mv.Position(),
			Rotation: mgl32.QuatIdent(),
		}),
		addComponent("locomotion", component.LocomotionComponent.Kind(), loco),
		func(*ecs.World, ecs.Entity) error {
			loco.Binding = locomotion.Bind(src, &loco.State, motor)
			return nil
		},
		addComponent("body", component.BodyComponent.Kind(), &component.Body{Mover: mv}),
		addComponent("sprite", component.SpriteComponent.Kind(), &component.Sprite{
			Color:  clr,
			Texels: texels,
			Size:   size,
		}),
		addComponent("billboard", component.BillboardComponent.Kind(), &component.Billboard{}),
	)
}

// NewPlayerMover builds the mover the player spawns with: a chipmunk space over
// the level's solids, or a flat plane when there is no level.
func NewPlayerMover(spec *prefabs.PlayerSpec, level *prefabs.LevelSpec, dt float64) (mover.Mover, error) {
	size, err := spec.BodySize()
	if err != nil {
		return nil, fmt.Errorf("player: size: %w", err)
	}
	if level == nil || len(level.Solids) == 0 {
		p := mover.NewPlane(spec.Spawn.Vec(), 0)
		if level != nil {
			p.SetLane(level.Lane())
		}
		return p, nil
	}
	s := mover.NewSpace(spec.Spawn.Vec(), size, dt, level.Boxes()...)
	s.SetLane(level.Lane())
	return s, nil
}
