package component

import "github.com/go-gl/mathgl/mgl32"

type Player struct {
	Spawn mgl32.Vec3
}

var PlayerComponent = NewComponent[Player]()
