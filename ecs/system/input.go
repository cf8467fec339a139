package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/locomotion/ecs"
	"github.com/milk9111/locomotion/input"
)

const stickDeadzone = 0.2

// EbitenDevice reads the keyboard and the first standard gamepad.
type EbitenDevice struct{}

func (EbitenDevice) Sample() input.Snapshot {
	var x, y float32
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		x -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		x += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		y += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		y -= 1
	}
	run := ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)
	jump := ebiten.IsKeyPressed(ebiten.KeySpace)

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Hypot(lx, ly) > stickDeadzone {
			// stick y grows downward
			x, y = float32(lx), float32(-ly)
		}
		jump = jump || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
		run = run || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontTopLeft)
	}

	return input.Snapshot{Move: mgl32.Vec2{x, y}, Run: run, Jump: jump}
}

// InputSystem publishes device changes to the bus. It must run before any system
// that reads motion state in the same tick.
type InputSystem struct {
	poller *input.Poller
	bus    *input.Bus
}

func NewInputSystem(device input.Device, bus *input.Bus) *InputSystem {
	return &InputSystem{poller: input.NewPoller(device), bus: bus}
}

// Reset makes the next update replay held inputs as started.
func (i *InputSystem) Reset() {
	i.poller.Reset()
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	i.poller.Poll(i.bus)
}
