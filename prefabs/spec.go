package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/locomotion/locomotion"
	"github.com/milk9111/locomotion/mover"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

const (
	PlayerFile = "player.yaml"
	CameraFile = "camera.yaml"
	LevelFile  = "level.yaml"
)

var (
	ErrMissingJumpTuning = errors.New("prefabs: max_jump_height and max_jump_time are required")
	ErrUnknownColor      = errors.New("prefabs: unknown color name")
	ErrInvalidSize       = errors.New("prefabs: size must be positive")
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	return ParseSpec[T](filename, data)
}

func ParseSpec[T any](filename string, data []byte) (T, error) {
	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		var zero T
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

type Vec2Spec struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
}

func (v Vec2Spec) Vec() mgl32.Vec2 {
	return mgl32.Vec2{v.X, v.Y}
}

type Vec3Spec struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

func (v Vec3Spec) Vec() mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

type SpriteSpec struct {
	Color  string `yaml:"color"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// RGBA resolves Color against the CSS color names, defaulting to crimson.
func (s SpriteSpec) RGBA() (color.RGBA, error) {
	if s.Color == "" {
		return colornames.Crimson, nil
	}
	c, ok := colornames.Map[s.Color]
	if !ok {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, s.Color)
	}
	return c, nil
}

type PlayerSpec struct {
	Name              string  `yaml:"name"`
	CanMoveVertically bool    `yaml:"can_move_vertically"`
	RunSpeed          float32 `yaml:"run_speed"`
	MaxJumpHeight     float32 `yaml:"max_jump_height"`
	MaxJumpTime       float32 `yaml:"max_jump_time"`
	// Gravity is accepted for compatibility but always derived from the jump
	// height and time.
	Gravity            *float32   `yaml:"gravity"`
	GroundedGravity    float32    `yaml:"grounded_gravity"`
	FastFallMultiplier float32    `yaml:"fast_fall_multiplier"`
	TerminalVelocity   float32    `yaml:"terminal_velocity"`
	Spawn              Vec3Spec   `yaml:"spawn"`
	Size               Vec2Spec   `yaml:"size"`
	Sprite             SpriteSpec `yaml:"sprite"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec](PlayerFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// Tuning converts the spec into validated locomotion tuning. Zero optional fields
// take the locomotion defaults; the jump height and time are required.
func (s *PlayerSpec) Tuning() (locomotion.Tuning, error) {
	if s.MaxJumpHeight == 0 || s.MaxJumpTime == 0 {
		return locomotion.Tuning{}, fmt.Errorf("%w: %s", ErrMissingJumpTuning, s.Name)
	}
	if s.Gravity != nil {
		log.Printf("prefabs: %s: ignoring gravity %v, it is derived from max_jump_height and max_jump_time", s.Name, *s.Gravity)
	}

	t := locomotion.DefaultTuning()
	t.CanMoveVertically = s.CanMoveVertically
	t.MaxJumpHeight = s.MaxJumpHeight
	t.MaxJumpTime = s.MaxJumpTime
	if s.RunSpeed != 0 {
		t.RunSpeed = s.RunSpeed
	}
	if s.GroundedGravity != 0 {
		t.GroundedGravity = s.GroundedGravity
	}
	if s.FastFallMultiplier != 0 {
		t.FastFallMultiplier = s.FastFallMultiplier
	}
	if s.TerminalVelocity != 0 {
		t.TerminalVelocity = s.TerminalVelocity
	}
	if err := t.Validate(); err != nil {
		return locomotion.Tuning{}, fmt.Errorf("prefabs: %s: %w", s.Name, err)
	}
	return t, nil
}

// BodySize returns the collision size, defaulting to half a unit by one unit.
func (s *PlayerSpec) BodySize() (mgl32.Vec2, error) {
	size := s.Size.Vec()
	if size == (mgl32.Vec2{}) {
		return mgl32.Vec2{0.5, 1}, nil
	}
	if size.X() <= 0 || size.Y() <= 0 {
		return mgl32.Vec2{}, fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}
	return size, nil
}

type CameraSpec struct {
	Name string `yaml:"name"`
	// Yaw, Pitch and OrbitSpeed are in degrees and degrees per second.
	Yaw           float32 `yaml:"yaw"`
	Pitch         float32 `yaml:"pitch"`
	OrbitSpeed    float32 `yaml:"orbit_speed"`
	Smoothness    float32 `yaml:"smoothness"`
	PixelsPerUnit float64 `yaml:"pixels_per_unit"`
}

func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec](CameraFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type BoxSpec struct {
	Min Vec2Spec `yaml:"min"`
	Max Vec2Spec `yaml:"max"`
}

type LevelSpec struct {
	Name   string    `yaml:"name"`
	Solids []BoxSpec `yaml:"solids"`
	LaneZ  Vec2Spec  `yaml:"lane_z"`
	// GridHalfWidth bounds the drawn ground grid.
	GridHalfWidth float32 `yaml:"grid_half_width"`
}

func LoadLevelSpec() (*LevelSpec, error) {
	spec, err := LoadSpec[LevelSpec](LevelFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

func (l *LevelSpec) Boxes() []mover.Box {
	boxes := make([]mover.Box, 0, len(l.Solids))
	for _, s := range l.Solids {
		boxes = append(boxes, mover.Box{Min: s.Min.Vec(), Max: s.Max.Vec()})
	}
	return boxes
}

func (l *LevelSpec) Lane() mover.Lane {
	return mover.Lane{MinZ: l.LaneZ.X, MaxZ: l.LaneZ.Y}
}
