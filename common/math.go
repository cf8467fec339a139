package common

import "github.com/chewxy/math32"

const (
	BaseWidth  = 1280
	BaseHeight = 720
	// TPS is the fixed simulation rate; every tick advances by TickSeconds.
	TPS         = 60
	TickSeconds = 1.0 / TPS
)

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// WrapAngle maps an angle in radians into (-pi, pi].
func WrapAngle(a float32) float32 {
	a = math32.Mod(a+math32.Pi, 2*math32.Pi)
	if a <= 0 {
		a += 2 * math32.Pi
	}
	return a - math32.Pi
}

// LerpAngle eases from a toward b along the shorter arc.
func LerpAngle(a, b, t float32) float32 {
	return WrapAngle(a + t*WrapAngle(b-a))
}
