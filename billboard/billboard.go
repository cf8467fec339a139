// Package billboard keeps flat sprites upright and turned toward the camera.
package billboard

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	up      = mgl32.Vec3{0, 1, 0}
	right   = mgl32.Vec3{1, 0, 0}
	forward = mgl32.Vec3{0, 0, 1}
)

const degenerateEpsilon = 1e-6

// Yaw returns the rotation of q about +Y in radians, in (-pi, pi].
func Yaw(q mgl32.Quat) float32 {
	f := q.Rotate(forward)
	if f.X()*f.X()+f.Z()*f.Z() > degenerateEpsilon {
		return math32.Atan2(f.X(), f.Z())
	}
	// looking straight up or down: the up vector carries the heading instead
	u := q.Rotate(up)
	if f.Y() > 0 {
		u = u.Mul(-1)
	}
	return math32.Atan2(u.X(), u.Z())
}

// YawOnly returns a rotation about +Y matching the camera's yaw. A sprite with this
// rotation stays upright and faces the camera horizontally.
func YawOnly(camera mgl32.Quat) mgl32.Quat {
	return mgl32.QuatRotate(Yaw(camera), up)
}

// Facing returns how much of a sprite's width is visible from the camera, from 0
// (edge on) to 1 (square on).
func Facing(sprite, camera mgl32.Quat) float32 {
	return math32.Abs(sprite.Rotate(right).Dot(camera.Rotate(right)))
}

// FlipX reports whether a sprite should be mirrored given its horizontal motion.
// Zero motion keeps the current facing.
func FlipX(current bool, x float32) bool {
	switch {
	case x < 0:
		return true
	case x > 0:
		return false
	default:
		return current
	}
}
