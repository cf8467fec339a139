package component

import (
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
)

type Sprite struct {
	// Image is built from Color and Texels on first draw when nil.
	Image  *ebiten.Image
	Color  color.RGBA
	Texels image.Point
	// Size is the drawn width and height in world units.
	Size  mgl32.Vec2
	FlipX bool
}

var SpriteComponent = NewComponent[Sprite]()

// Billboard marks sprites that turn to face the camera around the vertical axis.
type Billboard struct{}

var BillboardComponent = NewComponent[Billboard]()
