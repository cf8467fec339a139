package locomotion

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// MotionState is the per-actor state carried across ticks.
type MotionState struct {
	// Input is the latest normalized move input.
	Input mgl32.Vec2
	// Horizontal and RunHorizontal only use their x and z components.
	Horizontal    mgl32.Vec3
	RunHorizontal mgl32.Vec3
	// VerticalVelocity persists across ticks to integrate gravity.
	VerticalVelocity float32
	// Applied is handed to the mover every tick, scaled by dt. Its y is the
	// average of the vertical velocity before and after integration.
	Applied mgl32.Vec3

	Jumping         bool
	RunPressed      bool
	JumpPressed     bool
	MovementPressed bool
}

// Mover translates an actor while resolving collisions. IsGrounded reflects the
// last Move.
type Mover interface {
	Move(displacement mgl32.Vec3)
	IsGrounded() bool
}

// Motor applies one actor's tuning to its MotionState.
type Motor struct {
	tuning  Tuning
	jump    JumpParams
	pending *Tuning
}

func NewMotor(t Tuning) (*Motor, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	jump, _ := NewJumpParams(t.MaxJumpHeight, t.MaxJumpTime)
	return &Motor{tuning: t, jump: jump}, nil
}

func (m *Motor) Tuning() Tuning {
	return m.tuning
}

func (m *Motor) JumpParams() JumpParams {
	return m.jump
}

// Retune stages new tuning. It takes effect on the next tick that starts grounded
// and outside a jump so an in-progress jump keeps its parabola.
func (m *Motor) Retune(t Tuning) error {
	if err := t.Validate(); err != nil {
		return err
	}
	m.pending = &t
	return nil
}

// Pending reports whether a retune is waiting for the actor to land.
func (m *Motor) Pending() bool {
	return m.pending != nil
}

func (m *Motor) applyPending(s *MotionState) {
	t := *m.pending
	m.pending = nil
	m.tuning = t
	m.jump, _ = NewJumpParams(t.MaxJumpHeight, t.MaxJumpTime)
	if !t.CanMoveVertically {
		s.Horizontal[2] = 0
		s.RunHorizontal[2] = 0
	}
	m.OnMove(s, s.Input)
}

// OnMove records new move input and rebuilds both horizontal intents.
func (m *Motor) OnMove(s *MotionState, v mgl32.Vec2) {
	s.Input = v
	s.Horizontal[0] = v.X()
	s.RunHorizontal[0] = v.X() * m.tuning.RunSpeed

	if m.tuning.CanMoveVertically {
		s.Horizontal[2] = v.Y()
		s.RunHorizontal[2] = v.Y() * m.tuning.RunSpeed
	}
	s.MovementPressed = v.X() != 0 || v.Y() != 0
}

func (m *Motor) OnRun(s *MotionState, pressed bool) {
	s.RunPressed = pressed
}

func (m *Motor) OnJump(s *MotionState, pressed bool) {
	s.JumpPressed = pressed
}

// SelectHorizontal copies the run or walk intent into the applied x and z.
func (m *Motor) SelectHorizontal(s *MotionState) {
	src := s.Horizontal
	if s.RunPressed {
		src = s.RunHorizontal
	}
	s.Applied[0] = src.X()
	s.Applied[2] = src.Z()
}

// ApplyGravity integrates vertical velocity for one tick of length dt.
func (m *Motor) ApplyGravity(s *MotionState, grounded bool, dt float32) {
	switch {
	case grounded:
		s.VerticalVelocity = m.tuning.GroundedGravity
		s.Applied[1] = m.tuning.GroundedGravity
	case s.Input.Y() < 0:
		prev := s.VerticalVelocity
		s.VerticalVelocity += m.jump.Gravity * m.tuning.FastFallMultiplier * dt
		s.Applied[1] = math32.Max((prev+s.VerticalVelocity)*0.5, m.tuning.TerminalVelocity)
	default:
		prev := s.VerticalVelocity
		s.VerticalVelocity += m.jump.Gravity * dt
		s.Applied[1] = (prev + s.VerticalVelocity) * 0.5
	}
}

// ApplyJump starts a jump from the ground, and ends it once the actor is grounded
// with the button released. Landing with the button held keeps Jumping set.
func (m *Motor) ApplyJump(s *MotionState, grounded bool) {
	switch {
	case !s.Jumping && grounded && s.JumpPressed:
		s.Jumping = true
		s.VerticalVelocity = m.jump.InitialJumpVelocity
		s.Applied[1] = m.jump.InitialJumpVelocity
	case !s.JumpPressed && s.Jumping && grounded:
		s.Jumping = false
	}
}

// Tick commits this tick's displacement to mv and then updates gravity and jump
// from the grounded state the move produced.
func (m *Motor) Tick(s *MotionState, mv Mover, dt float32) {
	if m.pending != nil && !s.Jumping && mv.IsGrounded() {
		m.applyPending(s)
	}

	m.SelectHorizontal(s)
	mv.Move(s.Applied.Mul(dt))

	grounded := mv.IsGrounded()
	m.ApplyGravity(s, grounded, dt)
	m.ApplyJump(s, grounded)
}
