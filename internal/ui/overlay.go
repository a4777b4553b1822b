//go:build ebiten

package ui

import (
	"image/color"

	"gridsnake/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws cell boundaries on top of the board, toggled with G.
type Overlay struct {
	xs, ys []int
	width  int
	height int
	show   bool
	pixel  *ebiten.Image
}

// NewOverlay constructs an overlay for the given board geometry.
func NewOverlay(geom core.Geometry) *Overlay {
	o := &Overlay{
		width:  geom.Cols() * geom.CellSize,
		height: geom.Rows() * geom.CellSize,
	}
	o.xs, o.ys = gridLines(geom)
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the toggle key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.show = !o.show
	}
}

// Draw renders the grid lines onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show || o.pixel == nil {
		return
	}
	col := color.RGBA{R: 0, G: 0, B: 0, A: 60}
	for _, x := range o.xs {
		o.drawRect(screen, float64(x), 0, 1, float64(o.height), col)
	}
	for _, y := range o.ys {
		o.drawRect(screen, 0, float64(y), float64(o.width), 1, col)
	}
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
