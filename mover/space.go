package mover

import (
	"log"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jakecoffman/cp"
)

const (
	collisionTypeActor cp.CollisionType = iota + 1
	collisionTypeFoot
	collisionTypeSolid
)

const (
	// SpaceScale is the number of chipmunk units per world unit. Chipmunk's
	// default collision slop assumes pixel-sized units.
	SpaceScale = 32.0
	footDepth  = 2.0
)

// Box is an axis-aligned solid in the x/y plane, in world units.
type Box struct {
	Min mgl32.Vec2
	Max mgl32.Vec2
}

// Space resolves one actor against static boxes with chipmunk. x and y go through
// the physics space, z is clamped to the lane.
type Space struct {
	space *cp.Space
	body  *cp.Body
	shape *cp.Shape
	foot  *cp.Shape

	dt       float64
	size     mgl32.Vec2
	z        float32
	lane     Lane
	grounded bool
}

// NewSpace builds a space with the actor's feet at spawn. dt is the length of
// one Move in seconds.
func NewSpace(spawn mgl32.Vec3, size mgl32.Vec2, dt float64, solids ...Box) *Space {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{})

	s := &Space{
		space: space,
		dt:    dt,
		size:  size,
		z:     spawn.Z(),
	}
	for _, b := range solids {
		s.AddSolid(b)
	}
	s.attachActor(spawn)
	s.setupHandlers()
	return s
}

// AddSolid adds a static box to the space.
func (s *Space) AddSolid(b Box) {
	bb := cp.BB{
		L: float64(b.Min.X()) * SpaceScale,
		B: float64(b.Min.Y()) * SpaceScale,
		R: float64(b.Max.X()) * SpaceScale,
		T: float64(b.Max.Y()) * SpaceScale,
	}
	shape := cp.NewBox2(s.space.StaticBody, bb, 0)
	shape.SetFriction(0)
	shape.SetCollisionType(collisionTypeSolid)
	s.space.AddShape(shape)
}

func (s *Space) attachActor(spawn mgl32.Vec3) {
	w := float64(s.size.X()) * SpaceScale
	h := float64(s.size.Y()) * SpaceScale

	body := cp.NewBody(1, math.Inf(1))
	body.SetAngle(0)
	body.SetPosition(cp.Vector{X: float64(spawn.X()) * SpaceScale, Y: float64(spawn.Y())*SpaceScale + h/2})

	shape := cp.NewBox(body, w, h, 0)
	shape.SetFriction(0)
	shape.SetCollisionType(collisionTypeActor)

	footBB := cp.BB{
		L: -w * 0.45,
		B: -h/2 - footDepth,
		R: w * 0.45,
		T: -h/2 + footDepth,
	}
	foot := cp.NewBox2(body, footBB, 0)
	foot.SetSensor(true)
	foot.SetCollisionType(collisionTypeFoot)

	s.space.AddBody(body)
	s.space.AddShape(shape)
	s.space.AddShape(foot)

	s.body = body
	s.shape = shape
	s.foot = foot
}

func (s *Space) setupHandlers() {
	handler := s.space.NewCollisionHandler(collisionTypeFoot, collisionTypeSolid)
	handler.UserData = s
	handler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		mv, ok := userData.(*Space)
		if !ok || mv == nil {
			return true
		}
		mv.grounded = true
		return true
	}
}

// Move drives the body at the velocity that covers d in one step and steps the
// space once.
func (s *Space) Move(d mgl32.Vec3) {
	if s.dt <= 0 {
		log.Printf("mover: space step %v is not positive, ignoring move", s.dt)
		return
	}
	s.grounded = false
	s.body.SetVelocityVector(cp.Vector{
		X: float64(d.X()) * SpaceScale / s.dt,
		Y: float64(d.Y()) * SpaceScale / s.dt,
	})
	s.body.SetAngle(0)
	s.space.Step(s.dt)
	s.z = s.lane.clamp(s.z + d.Z())
}

func (s *Space) IsGrounded() bool {
	return s.grounded
}

// Position returns the actor's feet.
func (s *Space) Position() mgl32.Vec3 {
	p := s.body.Position()
	return mgl32.Vec3{
		float32(p.X / SpaceScale),
		float32(p.Y/SpaceScale) - s.size.Y()/2,
		s.z,
	}
}

func (s *Space) SetLane(l Lane) {
	s.lane = l
	s.z = l.clamp(s.z)
}

// Teleport places the actor's feet at pos and clears its velocity.
func (s *Space) Teleport(pos mgl32.Vec3) {
	h := float64(s.size.Y()) * SpaceScale
	s.body.SetPosition(cp.Vector{X: float64(pos.X()) * SpaceScale, Y: float64(pos.Y())*SpaceScale + h/2})
	s.body.SetVelocityVector(cp.Vector{})
	s.z = s.lane.clamp(pos.Z())
	s.grounded = false
}
