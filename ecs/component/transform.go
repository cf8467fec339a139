package component

import "github.com/go-gl/mathgl/mgl32"

// Transform places an entity in world space. Position is the entity's feet for
// actors and the eye for cameras.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

var TransformComponent = NewComponent[Transform]()
