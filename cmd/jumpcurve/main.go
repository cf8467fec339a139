package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/locomotion/common"
	"github.com/milk9111/locomotion/locomotion"
	"github.com/milk9111/locomotion/mover"
	"github.com/milk9111/locomotion/prefabs"
)

type sample struct {
	t, y, vy float32
}

// simulate holds jump from a standing start on flat ground and records every tick
// until the actor lands again or maxTicks pass.
func simulate(tuning locomotion.Tuning, dt float32, maxTicks int) ([]sample, error) {
	motor, err := locomotion.NewMotor(tuning)
	if err != nil {
		return nil, err
	}
	plane := mover.NewPlane(mgl32.Vec3{}, 0)
	var state locomotion.MotionState
	motor.OnJump(&state, true)

	samples := []sample{{}}
	left := false
	for i := 1; i <= maxTicks; i++ {
		motor.Tick(&state, plane, dt)
		pos := plane.Position()
		samples = append(samples, sample{t: float32(i) * dt, y: pos.Y(), vy: state.VerticalVelocity})
		if pos.Y() > 0 {
			left = true
		}
		if left && plane.IsGrounded() {
			break
		}
	}
	return samples, nil
}

func apex(samples []sample) sample {
	var top sample
	for _, s := range samples {
		if s.y > top.y {
			top = s
		}
	}
	return top
}

func loadTuning(path string) (locomotion.Tuning, error) {
	var data []byte
	var err error
	if path == "" {
		data, err = prefabs.Load(prefabs.PlayerFile)
		path = prefabs.PlayerFile
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return locomotion.Tuning{}, fmt.Errorf("jumpcurve: read %s: %w", path, err)
	}
	spec, err := prefabs.ParseSpec[prefabs.PlayerSpec](path, data)
	if err != nil {
		return locomotion.Tuning{}, err
	}
	return spec.Tuning()
}

func main() {
	specPath := flag.String("spec", "", "player tuning yaml (defaults to the embedded player.yaml)")
	tps := flag.Int("tps", common.TPS, "simulation ticks per second")
	every := flag.Int("every", 1, "print every nth tick")
	flag.Parse()

	if *tps <= 0 || *every <= 0 {
		log.Fatalf("jumpcurve: -tps and -every must be positive")
	}

	tuning, err := loadTuning(*specPath)
	if err != nil {
		log.Fatal(err)
	}
	dt := 1 / float32(*tps)
	samples, err := simulate(tuning, dt, int(4*tuning.MaxJumpTime/dt)+1)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("t,y,vy")
	for i, s := range samples {
		if i%*every != 0 && i != len(samples)-1 {
			continue
		}
		fmt.Printf("%.4f,%.4f,%.4f\n", s.t, s.y, s.vy)
	}
	top := apex(samples)
	fmt.Printf("# apex %.4f at t=%.4f (target %.4f at t=%.4f)\n",
		top.y, top.t, tuning.MaxJumpHeight, tuning.MaxJumpTime/2)
	fmt.Printf("# landed at t=%.4f\n", samples[len(samples)-1].t)
}
