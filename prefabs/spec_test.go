package prefabs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/locomotion/locomotion"
	"golang.org/x/image/colornames"
)

func TestEmbeddedSpecsLoad(t *testing.T) {
	player, err := LoadPlayerSpec()
	if err != nil {
		t.Fatalf("LoadPlayerSpec: %v", err)
	}
	tuning, err := player.Tuning()
	if err != nil {
		t.Fatalf("Tuning: %v", err)
	}
	if tuning.MaxJumpHeight != 1 || tuning.MaxJumpTime != 0.5 || tuning.RunSpeed != 3 {
		t.Fatalf("unexpected player tuning %+v", tuning)
	}

	cam, err := LoadCameraSpec()
	if err != nil {
		t.Fatalf("LoadCameraSpec: %v", err)
	}
	if cam.PixelsPerUnit <= 0 {
		t.Fatalf("expected positive pixels_per_unit, got %v", cam.PixelsPerUnit)
	}

	level, err := LoadLevelSpec()
	if err != nil {
		t.Fatalf("LoadLevelSpec: %v", err)
	}
	if len(level.Boxes()) == 0 {
		t.Fatalf("expected level solids")
	}
	if lane := level.Lane(); lane.MinZ >= lane.MaxZ {
		t.Fatalf("expected a non-empty lane, got %+v", lane)
	}
}

func TestPlayerSpecTuning(t *testing.T) {
	cases := []struct {
		name    string
		yaml    string
		wantErr error
		check   func(t *testing.T, tn locomotion.Tuning)
	}{
		{
			name: "defaults_fill_optional_fields",
			yaml: "name: p\nmax_jump_height: 2\nmax_jump_time: 1\n",
			check: func(t *testing.T, tn locomotion.Tuning) {
				def := locomotion.DefaultTuning()
				if tn.RunSpeed != def.RunSpeed || tn.GroundedGravity != def.GroundedGravity ||
					tn.FastFallMultiplier != def.FastFallMultiplier || tn.TerminalVelocity != def.TerminalVelocity {
					t.Fatalf("expected defaults, got %+v", tn)
				}
			},
		},
		{
			name: "gravity_is_ignored",
			yaml: "name: p\nmax_jump_height: 1\nmax_jump_time: 0.5\ngravity: -3\n",
			check: func(t *testing.T, tn locomotion.Tuning) {
				jp, err := locomotion.NewJumpParams(tn.MaxJumpHeight, tn.MaxJumpTime)
				if err != nil {
					t.Fatal(err)
				}
				if jp.Gravity != -32 {
					t.Fatalf("expected derived gravity -32, got %v", jp.Gravity)
				}
			},
		},
		{
			name: "overrides",
			yaml: "name: p\ncan_move_vertically: true\nrun_speed: 5\nmax_jump_height: 1\nmax_jump_time: 0.5\nterminal_velocity: -10\n",
			check: func(t *testing.T, tn locomotion.Tuning) {
				if !tn.CanMoveVertically || tn.RunSpeed != 5 || tn.TerminalVelocity != -10 {
					t.Fatalf("overrides not applied: %+v", tn)
				}
			},
		},
		{
			name:    "missing_jump_time",
			yaml:    "name: p\nmax_jump_height: 1\n",
			wantErr: ErrMissingJumpTuning,
		},
		{
			name:    "positive_terminal_velocity",
			yaml:    "name: p\nmax_jump_height: 1\nmax_jump_time: 0.5\nterminal_velocity: 20\n",
			wantErr: locomotion.ErrInvalidTerminalVelocity,
		},
		{
			name:    "nan_terminal_velocity",
			yaml:    "name: p\nmax_jump_height: 1\nmax_jump_time: 0.5\nterminal_velocity: .nan\n",
			wantErr: locomotion.ErrInvalidTerminalVelocity,
		},
		{
			name:    "positive_grounded_gravity",
			yaml:    "name: p\nmax_jump_height: 1\nmax_jump_time: 0.5\ngrounded_gravity: 0.5\n",
			wantErr: locomotion.ErrInvalidGroundedGravity,
		},
		{
			name:    "negative_jump_time",
			yaml:    "name: p\nmax_jump_height: 1\nmax_jump_time: -0.5\n",
			wantErr: locomotion.ErrInvalidJumpTime,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			spec, err := ParseSpec[PlayerSpec]("test.yaml", []byte(c.yaml))
			if err != nil {
				t.Fatalf("ParseSpec: %v", err)
			}
			tn, err := spec.Tuning()
			if c.wantErr != nil {
				if !errors.Is(err, c.wantErr) {
					t.Fatalf("expected %v, got %v", c.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Tuning: %v", err)
			}
			c.check(t, tn)
		})
	}
}

func TestParseSpecRejectsBadYAML(t *testing.T) {
	if _, err := ParseSpec[PlayerSpec]("bad.yaml", []byte("max_jump_height: [1, 2")); err == nil {
		t.Fatalf("expected an unmarshal error")
	}
}

func TestBodySize(t *testing.T) {
	cases := []struct {
		name    string
		size    Vec2Spec
		want    mgl32.Vec2
		wantErr bool
	}{
		{"default", Vec2Spec{}, mgl32.Vec2{0.5, 1}, false},
		{"explicit", Vec2Spec{X: 1, Y: 2}, mgl32.Vec2{1, 2}, false},
		{"negative", Vec2Spec{X: -1, Y: 2}, mgl32.Vec2{}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			spec := &PlayerSpec{Size: c.size}
			got, err := spec.BodySize()
			if c.wantErr {
				if !errors.Is(err, ErrInvalidSize) {
					t.Fatalf("expected ErrInvalidSize, got %v", err)
				}
				return
			}
			if err != nil || got != c.want {
				t.Fatalf("expected %v, got %v err=%v", c.want, got, err)
			}
		})
	}
}

func TestSpriteColor(t *testing.T) {
	if c, err := (SpriteSpec{}).RGBA(); err != nil || c != colornames.Crimson {
		t.Fatalf("expected crimson default, got %v err=%v", c, err)
	}
	if c, err := (SpriteSpec{Color: "gold"}).RGBA(); err != nil || c != colornames.Gold {
		t.Fatalf("expected gold, got %v err=%v", c, err)
	}
	if _, err := (SpriteSpec{Color: "notacolor"}).RGBA(); !errors.Is(err, ErrUnknownColor) {
		t.Fatalf("expected ErrUnknownColor, got %v", err)
	}
}

func TestCleanPrefabPath(t *testing.T) {
	cases := map[string]string{
		"":                   "",
		"player.yaml":        "player.yaml",
		"prefabs/level.yaml": "level.yaml",
	}
	for in, want := range cases {
		if got := cleanPrefabPath(in); got != want {
			t.Fatalf("cleanPrefabPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLoadPrefersDiskCopy(t *testing.T) {
	t.Chdir(t.TempDir())
	if err := os.MkdirAll(Dir, 0o755); err != nil {
		t.Fatal(err)
	}
	override := []byte("name: override\nmax_jump_height: 2\nmax_jump_time: 1\n")
	if err := os.WriteFile(filepath.Join(Dir, PlayerFile), override, 0o644); err != nil {
		t.Fatal(err)
	}

	spec, err := LoadPlayerSpec()
	if err != nil {
		t.Fatalf("LoadPlayerSpec: %v", err)
	}
	if spec.Name != "override" || spec.MaxJumpHeight != 2 {
		t.Fatalf("expected the disk copy, got %+v", spec)
	}

	cam, err := LoadCameraSpec()
	if err != nil {
		t.Fatalf("LoadCameraSpec: %v", err)
	}
	if cam.Name != "camera" {
		t.Fatalf("expected the embedded camera, got %q", cam.Name)
	}
}
