package system

import (
	"github.com/milk9111/locomotion/billboard"
	"github.com/milk9111/locomotion/ecs"
	"github.com/milk9111/locomotion/ecs/component"
)

// BillboardSystem turns billboarded entities to the first camera's yaw. It runs
// after the camera moves so sprites never lag a tick behind.
type BillboardSystem struct{}

func NewBillboardSystem() *BillboardSystem {
	return &BillboardSystem{}
}

func (b *BillboardSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	camEntity, _, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return
	}
	camTransform, ok := ecs.Get(w, camEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}
	rot := billboard.YawOnly(camTransform.Rotation)

	ecs.ForEach2(w, component.BillboardComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, _ *component.Billboard, t *component.Transform) {
			t.Rotation = rot
		},
	)
}
