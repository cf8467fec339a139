package system

import (
	"cmp"
	"image/color"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/locomotion/billboard"
	"github.com/milk9111/locomotion/ecs"
	"github.com/milk9111/locomotion/ecs/component"
	"golang.org/x/image/colornames"
)

// View is an orthographic camera. It looks along its local +Z with local +X to the
// right of the screen and local +Y up.
type View struct {
	Position      mgl32.Vec3
	Rotation      mgl32.Quat
	PixelsPerUnit float64
	Width         float64
	Height        float64
}

// Project maps a world point to screen pixels and a depth along the view axis.
// The camera position lands at the horizontal centre, two thirds down.
func (v View) Project(p mgl32.Vec3) (x, y, depth float64) {
	local := v.Rotation.Inverse().Rotate(p.Sub(v.Position))
	x = v.Width/2 + float64(local.X())*v.PixelsPerUnit
	y = v.Height*2/3 - float64(local.Y())*v.PixelsPerUnit
	return x, y, float64(local.Z())
}

// RenderSystem draws the ground grid and every sprite from the first camera.
type RenderSystem struct {
	// GridHalfWidth and Lane bound the drawn ground grid in world units.
	GridHalfWidth float32
	LaneMin       float32
	LaneMax       float32
}

func NewRenderSystem(gridHalfWidth, laneMin, laneMax float32) *RenderSystem {
	return &RenderSystem{GridHalfWidth: gridHalfWidth, LaneMin: laneMin, LaneMax: laneMax}
}

type drawItem struct {
	sprite *component.Sprite
	rot    mgl32.Quat
	pos    mgl32.Vec3
	depth  float64
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	camEntity, cam, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return
	}
	camTransform, ok := ecs.Get(w, camEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}
	bounds := screen.Bounds()
	view := View{
		Position:      camTransform.Position,
		Rotation:      camTransform.Rotation,
		PixelsPerUnit: cam.PixelsPerUnit,
		Width:         float64(bounds.Dx()),
		Height:        float64(bounds.Dy()),
	}

	screen.Fill(colornames.Midnightblue)
	r.drawGrid(screen, view)

	var items []drawItem
	ecs.ForEach2(w, component.SpriteComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, s *component.Sprite, t *component.Transform) {
			if s.Image == nil {
				if s.Texels.X <= 0 || s.Texels.Y <= 0 {
					return
				}
				s.Image = ebiten.NewImage(s.Texels.X, s.Texels.Y)
				s.Image.Fill(s.Color)
			}
			_, _, depth := view.Project(t.Position)
			items = append(items, drawItem{sprite: s, rot: t.Rotation, pos: t.Position, depth: depth})
		},
	)
	// far to near
	slices.SortFunc(items, func(a, b drawItem) int {
		return cmp.Compare(b.depth, a.depth)
	})
	for _, it := range items {
		r.drawSprite(screen, view, it)
	}
}

func (r *RenderSystem) drawGrid(screen *ebiten.Image, view View) {
	line := func(a, b mgl32.Vec3, clr color.Color) {
		ax, ay, _ := view.Project(a)
		bx, by, _ := view.Project(b)
		vector.StrokeLine(screen, float32(ax), float32(ay), float32(bx), float32(by), 1, clr, false)
	}
	for _, z := range []float32{r.LaneMin, r.LaneMax} {
		line(mgl32.Vec3{-r.GridHalfWidth, 0, z}, mgl32.Vec3{r.GridHalfWidth, 0, z}, colornames.Lightsteelblue)
	}
	for x := -r.GridHalfWidth; x <= r.GridHalfWidth; x++ {
		line(mgl32.Vec3{x, 0, r.LaneMin}, mgl32.Vec3{x, 0, r.LaneMax}, colornames.Slategray)
	}
}

func (r *RenderSystem) drawSprite(screen *ebiten.Image, view View, it drawItem) {
	facing := float64(billboard.Facing(it.rot, view.Rotation))
	if facing < 0.05 {
		return
	}
	iw, ih := it.sprite.Image.Bounds().Dx(), it.sprite.Image.Bounds().Dy()
	sx := float64(it.sprite.Size.X()) * view.PixelsPerUnit * facing / float64(iw)
	sy := float64(it.sprite.Size.Y()) * view.PixelsPerUnit / float64(ih)

	op := &ebiten.DrawImageOptions{}
	// pivot at the feet, bottom centre of the image
	op.GeoM.Translate(-float64(iw)/2, -float64(ih))
	if it.sprite.FlipX {
		op.GeoM.Scale(-sx, sy)
	} else {
		op.GeoM.Scale(sx, sy)
	}
	x, y, _ := view.Project(it.pos)
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(it.sprite.Image, op)
}
