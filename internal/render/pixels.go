// Package render turns a game snapshot into pixels. Rasterize and the RGBA
// fill are backend-neutral; GridPainter uploads the result to ebiten.
package render

import (
	"image/color"

	"gridsnake/internal/core"
	"gridsnake/internal/snake"
)

// Palette indices written by Rasterize.
const (
	IndexBackground uint8 = iota
	IndexSnake
	IndexFood
)

// Palette holds the three colours of a frame.
type Palette struct {
	Background color.RGBA
	Snake      color.RGBA
	Food       color.RGBA
}

// DefaultPalette returns magenta background, green snake and red food.
func DefaultPalette() Palette {
	return Palette{
		Background: color.RGBA{R: 255, G: 0, B: 255, A: 255},
		Snake:      color.RGBA{R: 0, G: 255, B: 0, A: 255},
		Food:       color.RGBA{R: 255, G: 0, B: 0, A: 255},
	}
}

// Colors returns the palette ordered by index.
func (p Palette) Colors() []color.RGBA {
	return []color.RGBA{IndexBackground: p.Background, IndexSnake: p.Snake, IndexFood: p.Food}
}

// At returns the colour for a raster index, falling back to the background.
func (p Palette) At(idx uint8) color.RGBA {
	switch idx {
	case IndexSnake:
		return p.Snake
	case IndexFood:
		return p.Food
	default:
		return p.Background
	}
}

// Frame is everything a backend needs to draw one tick.
type Frame struct {
	Size     core.Size
	CellSize int
	Snake    []core.Cell
	Food     core.Cell
	Palette  Palette
}

// NewFrame builds a Frame from a session snapshot.
func NewFrame(snap snake.Snapshot, geom core.Geometry, p Palette) Frame {
	return Frame{
		Size:     geom.Size(),
		CellSize: geom.CellSize,
		Snake:    snap.Snake,
		Food:     snap.Food,
		Palette:  p,
	}
}

// Rasterize clears grid and writes palette indices for the snake and then the
// food, so food on top of the body stays visible. Cells outside the grid are
// skipped.
func Rasterize(f Frame, grid *core.ByteGrid) {
	grid.Clear()
	for _, c := range f.Snake {
		grid.Set(c, IndexSnake)
	}
	grid.Set(f.Food, IndexFood)
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
