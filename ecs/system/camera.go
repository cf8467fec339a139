package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/locomotion/common"
	"github.com/milk9111/locomotion/ecs"
	"github.com/milk9111/locomotion/ecs/component"
)

// OrbitKeys reads Q and E as a -1..1 orbit axis.
func OrbitKeys() float32 {
	var axis float32
	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		axis -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) {
		axis += 1
	}
	return axis
}

// CameraSystem orbits the camera around the player and keeps it centred on them.
type CameraSystem struct {
	orbit func() float32
	dt    float32
}

func NewCameraSystem(orbit func() float32, dt float32) *CameraSystem {
	return &CameraSystem{orbit: orbit, dt: dt}
}

func (c *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	var axis float32
	if c.orbit != nil {
		axis = c.orbit()
	}

	var target *component.Transform
	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, _ *component.Player, t *component.Transform) {
			if target == nil {
				target = t
			}
		},
	)

	ecs.ForEach2(w, component.CameraComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, cam *component.Camera, t *component.Transform) {
			cam.TargetYaw = common.WrapAngle(cam.TargetYaw + axis*cam.OrbitSpeed*c.dt)
			smooth := cam.Smoothness
			if smooth <= 0 || smooth > 1 {
				smooth = 1
			}
			cam.Yaw = common.LerpAngle(cam.Yaw, cam.TargetYaw, smooth)
			t.Rotation = cam.Orientation()
			if target != nil {
				t.Position = target.Position
			}
		},
	)
}
