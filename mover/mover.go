package mover

import "github.com/go-gl/mathgl/mgl32"

// Mover is a collision-aware translator for one actor. IsGrounded reports whether
// the last Move ended supported from below.
type Mover interface {
	Move(displacement mgl32.Vec3)
	IsGrounded() bool
	Position() mgl32.Vec3
}

// Lane bounds the z axis. A lane with MaxZ <= MinZ leaves z unbounded.
type Lane struct {
	MinZ float32
	MaxZ float32
}

func (l Lane) clamp(z float32) float32 {
	if l.MaxZ <= l.MinZ {
		return z
	}
	return mgl32.Clamp(z, l.MinZ, l.MaxZ)
}

// Plane is a mover over infinite flat ground at a fixed height with no other
// obstacles.
type Plane struct {
	pos      mgl32.Vec3
	ground   float32
	lane     Lane
	grounded bool
}

func NewPlane(spawn mgl32.Vec3, ground float32) *Plane {
	p := &Plane{pos: spawn, ground: ground}
	p.grounded = spawn.Y() <= ground
	if p.grounded {
		p.pos[1] = ground
	}
	return p
}

func (p *Plane) SetLane(l Lane) {
	p.lane = l
	p.pos[2] = l.clamp(p.pos[2])
}

func (p *Plane) Move(d mgl32.Vec3) {
	p.pos = p.pos.Add(d)
	p.pos[2] = p.lane.clamp(p.pos[2])

	p.grounded = false
	if p.pos[1] <= p.ground {
		p.pos[1] = p.ground
		p.grounded = d.Y() <= 0
	}
}

func (p *Plane) IsGrounded() bool {
	return p.grounded
}

func (p *Plane) Position() mgl32.Vec3 {
	return p.pos
}

// Teleport places the actor without resolving anything in between.
func (p *Plane) Teleport(pos mgl32.Vec3) {
	p.pos = pos
	p.pos[2] = p.lane.clamp(p.pos[2])
	p.grounded = p.pos[1] <= p.ground
	if p.grounded {
		p.pos[1] = p.ground
	}
}
