package locomotion

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

var (
	ErrInvalidJumpTime   = errors.New("locomotion: max jump time must be positive")
	ErrInvalidJumpHeight = errors.New("locomotion: max jump height must be positive")
	ErrInvalidRunSpeed   = errors.New("locomotion: run speed must not be negative")
	ErrInvalidFastFall   = errors.New("locomotion: fast fall multiplier must be at least 1")

	ErrInvalidTerminalVelocity = errors.New("locomotion: terminal velocity must be negative")
	ErrInvalidGroundedGravity  = errors.New("locomotion: grounded gravity must not be positive")
)

const (
	DefaultRunSpeed           = 3.0
	DefaultMaxJumpHeight      = 1.0
	DefaultMaxJumpTime        = 0.5
	DefaultGroundedGravity    = -0.05
	DefaultFastFallMultiplier = 4.0
	DefaultTerminalVelocity   = -20.0
)

// Tuning is the designer-facing parameter set for one actor.
type Tuning struct {
	// CanMoveVertically maps the input y axis onto world z.
	CanMoveVertically bool
	RunSpeed          float32
	MaxJumpHeight     float32
	MaxJumpTime       float32
	// GroundedGravity is the small downward velocity held while grounded.
	GroundedGravity    float32
	FastFallMultiplier float32
	// TerminalVelocity floors the applied vertical displacement during a fast fall.
	TerminalVelocity float32
}

func DefaultTuning() Tuning {
	return Tuning{
		RunSpeed:           DefaultRunSpeed,
		MaxJumpHeight:      DefaultMaxJumpHeight,
		MaxJumpTime:        DefaultMaxJumpTime,
		GroundedGravity:    DefaultGroundedGravity,
		FastFallMultiplier: DefaultFastFallMultiplier,
		TerminalVelocity:   DefaultTerminalVelocity,
	}
}

// Validate rejects tuning that would put NaN or Inf into the motion state.
func (t Tuning) Validate() error {
	if _, err := NewJumpParams(t.MaxJumpHeight, t.MaxJumpTime); err != nil {
		return err
	}
	if t.RunSpeed < 0 || !finite(t.RunSpeed) {
		return fmt.Errorf("%w: %v", ErrInvalidRunSpeed, t.RunSpeed)
	}
	if t.FastFallMultiplier < 1 || !finite(t.FastFallMultiplier) {
		return fmt.Errorf("%w: %v", ErrInvalidFastFall, t.FastFallMultiplier)
	}
	if !(t.TerminalVelocity < 0) || !finite(t.TerminalVelocity) {
		return fmt.Errorf("%w: %v", ErrInvalidTerminalVelocity, t.TerminalVelocity)
	}
	if !(t.GroundedGravity <= 0) || !finite(t.GroundedGravity) {
		return fmt.Errorf("%w: %v", ErrInvalidGroundedGravity, t.GroundedGravity)
	}
	return nil
}

// JumpParams are derived from MaxJumpHeight and MaxJumpTime and never set directly.
type JumpParams struct {
	Gravity             float32
	InitialJumpVelocity float32
}

// NewJumpParams solves the projectile equations so that a jump peaks at maxJumpHeight
// after maxJumpTime/2 and lands after maxJumpTime.
func NewJumpParams(maxJumpHeight, maxJumpTime float32) (JumpParams, error) {
	if !(maxJumpTime > 0) || !finite(maxJumpTime) {
		return JumpParams{}, fmt.Errorf("%w: %v", ErrInvalidJumpTime, maxJumpTime)
	}
	if !(maxJumpHeight > 0) || !finite(maxJumpHeight) {
		return JumpParams{}, fmt.Errorf("%w: %v", ErrInvalidJumpHeight, maxJumpHeight)
	}

	timeToApex := maxJumpTime / 2
	return JumpParams{
		Gravity:             (-2 * maxJumpHeight) / (timeToApex * timeToApex),
		InitialJumpVelocity: (2 * maxJumpHeight) / timeToApex,
	}, nil
}

func finite(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}
