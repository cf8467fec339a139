package system

import (
	"math"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/locomotion/billboard"
	"github.com/milk9111/locomotion/common"
	"github.com/milk9111/locomotion/ecs"
	"github.com/milk9111/locomotion/ecs/component"
	"github.com/milk9111/locomotion/ecs/entity"
	"github.com/milk9111/locomotion/input"
	"github.com/milk9111/locomotion/mover"
	"github.com/milk9111/locomotion/prefabs"
)

type scriptedDevice struct {
	frames []input.Snapshot
	i      int
}

func (d *scriptedDevice) Sample() input.Snapshot {
	if d.i >= len(d.frames) {
		return d.frames[len(d.frames)-1]
	}
	s := d.frames[d.i]
	d.i++
	return s
}

type scene struct {
	w      *ecs.World
	sched  *ecs.Scheduler
	bus    *input.Bus
	input  *InputSystem
	player ecs.Entity
	camera ecs.Entity
}

func newScene(t *testing.T, frames []input.Snapshot, orbit func() float32) *scene {
	t.Helper()
	w := ecs.NewWorld()
	bus := input.NewBus()
	spec := &prefabs.PlayerSpec{Name: "player", MaxJumpHeight: 1, MaxJumpTime: 0.5}
	player, err := entity.NewPlayer(w, spec, bus, mover.NewPlane(mgl32.Vec3{}, 0))
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	camera, err := entity.NewCamera(w, &prefabs.CameraSpec{Pitch: 20, OrbitSpeed: 90, Smoothness: 1})
	if err != nil {
		t.Fatalf("NewCamera: %v", err)
	}
	in := NewInputSystem(&scriptedDevice{frames: frames}, bus)
	sched := ecs.NewScheduler(
		in,
		NewLocomotionSystem(common.TickSeconds),
		NewSpriteFacingSystem(),
		NewCameraSystem(orbit, common.TickSeconds),
		NewBillboardSystem(),
	)
	return &scene{w: w, sched: sched, bus: bus, input: in, player: player, camera: camera}
}

func (s *scene) transform(t *testing.T, e ecs.Entity) *component.Transform {
	t.Helper()
	tr, ok := ecs.Get(s.w, e, component.TransformComponent.Kind())
	if !ok {
		t.Fatalf("missing transform on %s", e)
	}
	return tr
}

func TestJumpInputAppliesSameTick(t *testing.T) {
	s := newScene(t, []input.Snapshot{{Jump: true}}, nil)

	s.sched.Update(s.w)
	loco, _ := ecs.Get(s.w, s.player, component.LocomotionComponent.Kind())
	if !loco.State.Jumping {
		t.Fatalf("expected the jump to start on the tick the button was pressed")
	}

	s.sched.Update(s.w)
	if y := s.transform(t, s.player).Position.Y(); y <= 0 {
		t.Fatalf("expected the player to leave the ground, got y=%v", y)
	}
}

func TestSpriteFacingFollowsMotion(t *testing.T) {
	s := newScene(t, []input.Snapshot{
		{Move: mgl32.Vec2{1, 0}},
		{Move: mgl32.Vec2{-1, 0}},
		{},
	}, nil)
	sprite, _ := ecs.Get(s.w, s.player, component.SpriteComponent.Kind())

	want := []bool{false, true, true}
	for i, flip := range want {
		s.sched.Update(s.w)
		if sprite.FlipX != flip {
			t.Fatalf("tick %d: expected FlipX %v, got %v", i, flip, sprite.FlipX)
		}
	}
	if x := s.transform(t, s.player).Position.X(); math32.Abs(x) > 1e-5 {
		t.Fatalf("expected to return to x=0, got %v", x)
	}
}

func TestCameraOrbitTurnsBillboards(t *testing.T) {
	s := newScene(t, []input.Snapshot{{Move: mgl32.Vec2{1, 0}}}, func() float32 { return 1 })

	const ticks = 30
	for i := 0; i < ticks; i++ {
		s.sched.Update(s.w)
	}

	cam, _ := ecs.Get(s.w, s.camera, component.CameraComponent.Kind())
	wantYaw := common.WrapAngle(mgl32.DegToRad(90) * common.TickSeconds * ticks)
	if math32.Abs(cam.Yaw-wantYaw) > 1e-3 {
		t.Fatalf("expected camera yaw %v, got %v", wantYaw, cam.Yaw)
	}

	camT := s.transform(t, s.camera)
	playerT := s.transform(t, s.player)
	if camT.Position != playerT.Position {
		t.Fatalf("expected camera to follow the player: %v vs %v", camT.Position, playerT.Position)
	}
	if yaw := billboard.Yaw(playerT.Rotation); math32.Abs(yaw-cam.Yaw) > 1e-3 {
		t.Fatalf("expected billboard yaw %v, got %v", cam.Yaw, yaw)
	}
	if u := playerT.Rotation.Rotate(mgl32.Vec3{0, 1, 0}); u.Sub(mgl32.Vec3{0, 1, 0}).Len() > 1e-4 {
		t.Fatalf("billboard should stay upright, up=%v", u)
	}
}

func TestViewProject(t *testing.T) {
	v := View{Rotation: mgl32.QuatIdent(), PixelsPerUnit: 10, Width: 100, Height: 90}

	cases := []struct {
		name  string
		p     mgl32.Vec3
		wantX float64
		wantY float64
	}{
		{"origin", mgl32.Vec3{}, 50, 60},
		{"right_up", mgl32.Vec3{1, 2, 0}, 60, 40},
		{"depth_ignored", mgl32.Vec3{-1, 0, 5}, 40, 60},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			x, y, _ := v.Project(c.p)
			if math.Abs(x-c.wantX) > 1e-4 || math.Abs(y-c.wantY) > 1e-4 {
				t.Fatalf("expected (%v,%v), got (%v,%v)", c.wantX, c.wantY, x, y)
			}
		})
	}

	_, _, near := v.Project(mgl32.Vec3{0, 0, 1})
	_, _, far := v.Project(mgl32.Vec3{0, 0, 3})
	if far <= near {
		t.Fatalf("expected depth to grow along the view axis: near %v far %v", near, far)
	}
}

func TestDestroyPlayerStopsUpdates(t *testing.T) {
	s := newScene(t, []input.Snapshot{{Move: mgl32.Vec2{1, 0}}}, nil)
	s.sched.Update(s.w)
	if !ecs.DestroyEntity(s.w, s.player) {
		t.Fatalf("expected to destroy the player")
	}
	s.sched.Update(s.w)

	cam := s.transform(t, s.camera)
	before := cam.Position
	s.sched.Update(s.w)
	if cam.Position != before {
		t.Fatalf("camera should stay put without a player")
	}
}

func TestRespawnPicksUpHeldInput(t *testing.T) {
	s := newScene(t, []input.Snapshot{{Move: mgl32.Vec2{1, 0}}}, nil)
	s.sched.Update(s.w)

	ecs.DestroyEntity(s.w, s.player)
	spec := &prefabs.PlayerSpec{Name: "player", MaxJumpHeight: 1, MaxJumpTime: 0.5}
	player, err := entity.NewPlayer(s.w, spec, s.bus, mover.NewPlane(mgl32.Vec3{}, 0))
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	s.player = player
	s.input.Reset()

	s.sched.Update(s.w)
	if x := s.transform(t, s.player).Position.X(); x <= 0 {
		t.Fatalf("expected the respawned player to move with the held key, got x=%v", x)
	}
}
