package component

import "github.com/go-gl/mathgl/mgl32"

// Camera orbits around the player. Yaw eases toward TargetYaw by Smoothness per
// tick.
type Camera struct {
	Yaw           float32
	TargetYaw     float32
	Pitch         float32
	OrbitSpeed    float32
	Smoothness    float32
	PixelsPerUnit float64
}

// Orientation returns the camera rotation: yaw about +Y after pitch about +X.
func (c Camera) Orientation() mgl32.Quat {
	return mgl32.QuatRotate(c.Yaw, mgl32.Vec3{0, 1, 0}).Mul(mgl32.QuatRotate(c.Pitch, mgl32.Vec3{1, 0, 0}))
}

var CameraComponent = NewComponent[Camera]()
