package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/locomotion/common"
	"github.com/milk9111/locomotion/ecs"
	"github.com/milk9111/locomotion/ecs/component"
	"github.com/milk9111/locomotion/ecs/entity"
	"github.com/milk9111/locomotion/ecs/system"
	"github.com/milk9111/locomotion/input"
	"github.com/milk9111/locomotion/prefabs"
)

type Game struct {
	frames   int
	debug    bool
	vertical bool
	paused   bool

	world     *ecs.World
	scheduler *ecs.Scheduler
	render    *system.RenderSystem
	input     *system.InputSystem
	bus       *input.Bus
	watcher   *prefabs.Watcher
	pauseUI   *ebitenui.UI

	playerSpec *prefabs.PlayerSpec
	level      *prefabs.LevelSpec
	player     ecs.Entity
	camera     ecs.Entity
}

func NewGame(debug, vertical bool) (*Game, error) {
	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, err
	}
	cameraSpec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return nil, err
	}
	level, err := prefabs.LoadLevelSpec()
	if err != nil {
		return nil, err
	}

	g := &Game{
		debug:      debug,
		vertical:   vertical,
		world:      ecs.NewWorld(),
		bus:        input.NewBus(),
		playerSpec: playerSpec,
		level:      level,
	}
	g.applyFlags(g.playerSpec)

	if err := g.spawnPlayer(); err != nil {
		return nil, err
	}
	g.camera, err = entity.NewCamera(g.world, cameraSpec)
	if err != nil {
		return nil, err
	}

	lane := level.Lane()
	g.render = system.NewRenderSystem(level.GridHalfWidth, lane.MinZ, lane.MaxZ)
	g.input = system.NewInputSystem(system.EbitenDevice{}, g.bus)
	g.scheduler = ecs.NewScheduler(
		g.input,
		system.NewLocomotionSystem(common.TickSeconds),
		system.NewSpriteFacingSystem(),
		system.NewCameraSystem(system.OrbitKeys, common.TickSeconds),
		system.NewBillboardSystem(),
	)
	g.pauseUI = NewPauseUI(g)

	if _, err := os.Stat(prefabs.Dir); err == nil {
		w, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Printf("prefab hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	return g, nil
}

func (g *Game) applyFlags(spec *prefabs.PlayerSpec) {
	if g.vertical {
		spec.CanMoveVertically = true
	}
}

func (g *Game) spawnPlayer() error {
	mv, err := entity.NewPlayerMover(g.playerSpec, g.level, common.TickSeconds)
	if err != nil {
		return err
	}
	player, err := entity.NewPlayer(g.world, g.playerSpec, g.bus, mv)
	if err != nil {
		return err
	}
	g.player = player
	return nil
}

// Respawn rebuilds the player at its spawn point with the current tuning. Inputs
// held across the respawn are replayed to the new player on the next tick.
func (g *Game) Respawn() {
	ecs.DestroyEntity(g.world, g.player)
	if err := g.spawnPlayer(); err != nil {
		log.Printf("respawn failed: %v", err)
		return
	}
	g.input.Reset()
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) Update() error {
	g.frames++

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.reloadPrefabs()
	g.scheduler.Update(g.world)
	return nil
}

func (g *Game) reloadPrefabs() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(name)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("prefab watcher: %v", err)
		default:
			return
		}
	}
}

func (g *Game) reload(name string) {
	switch name {
	case prefabs.PlayerFile:
		spec, err := prefabs.LoadPlayerSpec()
		if err != nil {
			log.Printf("reload %s: %v", name, err)
			return
		}
		g.applyFlags(spec)
		tuning, err := spec.Tuning()
		if err != nil {
			log.Printf("reload %s: keeping previous tuning: %v", name, err)
			return
		}
		g.playerSpec = spec
		ecs.ForEach(g.world, component.LocomotionComponent.Kind(), func(e ecs.Entity, loco *component.Locomotion) {
			if err := loco.Motor.Retune(tuning); err != nil {
				log.Printf("retune %s: %v", e, err)
			}
		})
		log.Printf("reloaded %s", name)
	case prefabs.CameraFile:
		spec, err := prefabs.LoadCameraSpec()
		if err != nil {
			log.Printf("reload %s: %v", name, err)
			return
		}
		camera, err := entity.ReplaceCamera(g.world, g.camera, spec)
		if err != nil {
			log.Printf("reload %s: %v", name, err)
			return
		}
		g.camera = camera
		log.Printf("reloaded %s", name)
	case prefabs.LevelFile:
		level, err := prefabs.LoadLevelSpec()
		if err != nil {
			log.Printf("reload %s: %v", name, err)
			return
		}
		g.level = level
		lane := level.Lane()
		g.render = system.NewRenderSystem(level.GridHalfWidth, lane.MinZ, lane.MaxZ)
		g.Respawn()
		log.Printf("reloaded %s", name)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)

	if g.debug {
		ebitenutil.DebugPrint(screen, g.debugText())
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) debugText() string {
	text := fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS())
	loco, ok := ecs.Get(g.world, g.player, component.LocomotionComponent.Kind())
	if !ok {
		return text
	}
	body, ok := ecs.Get(g.world, g.player, component.BodyComponent.Kind())
	if !ok || body.Mover == nil {
		return text
	}
	jp := loco.Motor.JumpParams()
	return text + fmt.Sprintf("\npos: %.2f\nvy: %.2f  grounded: %v  jumping: %v\ngravity: %.2f  v0: %.2f",
		body.Mover.Position(), loco.State.VerticalVelocity, body.Mover.IsGrounded(), loco.State.Jumping,
		jp.Gravity, jp.InitialJumpVelocity)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
