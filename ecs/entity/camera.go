package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/locomotion/ecs"
	"github.com/milk9111/locomotion/ecs/component"
	"github.com/milk9111/locomotion/prefabs"
)

func NewCamera(w *ecs.World, spec *prefabs.CameraSpec) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("camera: nil spec")
	}

	smooth := spec.Smoothness
	if smooth == 0 {
		smooth = 0.15
	}
	ppu := spec.PixelsPerUnit
	if ppu == 0 {
		ppu = 64
	}
	yaw := mgl32.DegToRad(spec.Yaw)
	cam := &component.Camera{
		Yaw:           yaw,
		TargetYaw:     yaw,
		Pitch:         mgl32.DegToRad(spec.Pitch),
		OrbitSpeed:    mgl32.DegToRad(spec.OrbitSpeed),
		Smoothness:    smooth,
		PixelsPerUnit: ppu,
	}

	return buildEntity(w, "camera",
		addComponent("camera component", component.CameraComponent.Kind(), cam),
		addComponent("transform", component.TransformComponent.Kind(), &component.Transform{
			Rotation: cam.Orientation(),
		}),
	)
}

// ReplaceCamera builds a camera from spec and only then destroys old, so a failed
// build leaves the old camera in place.
func ReplaceCamera(w *ecs.World, old ecs.Entity, spec *prefabs.CameraSpec) (ecs.Entity, error) {
	camera, err := NewCamera(w, spec)
	if err != nil {
		return old, err
	}
	if prev, ok := ecs.Get(w, old, component.TransformComponent.Kind()); ok {
		if t, ok := ecs.Get(w, camera, component.TransformComponent.Kind()); ok {
			t.Position = prev.Position
		}
	}
	ecs.DestroyEntity(w, old)
	return camera, nil
}
