//go:build ebiten

package render

import (
	"gridsnake/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps one pixel per board cell and scales it up by the cell size
// when drawing.
type GridPainter struct {
	grid *core.ByteGrid
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a board of the given size.
func NewGridPainter(size core.Size) *GridPainter {
	grid := core.NewByteGrid(size.W, size.H)
	return &GridPainter{
		grid: grid,
		img:  ebiten.NewImage(grid.W, grid.H),
		buf:  make([]byte, 4*grid.W*grid.H),
	}
}

// Draw clears dst to the background colour and paints the frame on top.
func (gp *GridPainter) Draw(dst *ebiten.Image, f Frame) {
	dst.Fill(f.Palette.Background)
	Rasterize(f, gp.grid)
	fillPaletteRGBA(gp.buf, gp.grid.Cells(), f.Palette.Colors())
	gp.img.WritePixels(gp.buf)

	scale := f.CellSize
	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image in cells.
func (gp *GridPainter) Size() (int, int) { return gp.grid.W, gp.grid.H }
