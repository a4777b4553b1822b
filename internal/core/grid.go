package core

import (
	"errors"
	"fmt"
)

// Board defaults, in pixels.
const (
	ScreenWidth  = 720
	ScreenHeight = 560
	CellSize     = 20
)

// ErrInvalidGeometry is returned when a Geometry cannot hold a single cell.
var ErrInvalidGeometry = errors.New("invalid board geometry")

// Geometry maps the pixel-sized board onto a grid of square cells.
type Geometry struct {
	Width    int
	Height   int
	CellSize int
}

// DefaultGeometry returns the 720x560 board with 20 px cells.
func DefaultGeometry() Geometry {
	return Geometry{Width: ScreenWidth, Height: ScreenHeight, CellSize: CellSize}
}

// Validate reports whether the geometry describes at least one whole cell.
func (g Geometry) Validate() error {
	if g.CellSize <= 0 {
		return fmt.Errorf("%w: cell size %d", ErrInvalidGeometry, g.CellSize)
	}
	if g.Cols() <= 0 || g.Rows() <= 0 {
		return fmt.Errorf("%w: %dx%d px holds no %d px cell", ErrInvalidGeometry, g.Width, g.Height, g.CellSize)
	}
	return nil
}

// Cols returns the number of cell columns.
func (g Geometry) Cols() int {
	if g.CellSize <= 0 {
		return 0
	}
	return g.Width / g.CellSize
}

// Rows returns the number of cell rows.
func (g Geometry) Rows() int {
	if g.CellSize <= 0 {
		return 0
	}
	return g.Height / g.CellSize
}

// Size returns the board dimensions in cells.
func (g Geometry) Size() Size { return Size{W: g.Cols(), H: g.Rows()} }

// Contains reports whether c lies on the board.
func (g Geometry) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Cols() && c.Y >= 0 && c.Y < g.Rows()
}

// ToPixels returns the top-left pixel of c.
func (g Geometry) ToPixels(c Cell) (int, int) {
	return c.X * g.CellSize, c.Y * g.CellSize
}

// FromPixels returns the cell whose top-left corner is at (px, py). Pixels that
// are not cell-aligned round towards negative infinity.
func (g Geometry) FromPixels(px, py int) Cell {
	return Cell{X: floorDiv(px, g.CellSize), Y: floorDiv(py, g.CellSize)}
}

func floorDiv(a, b int) int {
	if b == 0 {
		return 0
	}
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// Set writes v at c and reports whether c was inside the grid.
func (g *ByteGrid) Set(c Cell, v uint8) bool {
	if c.X < 0 || c.X >= g.W || c.Y < 0 || c.Y >= g.H {
		return false
	}
	g.data[g.Index(c.X, c.Y)] = v
	return true
}

// At returns the value stored at (x, y), or 0 outside the grid.
func (g *ByteGrid) At(x, y int) uint8 {
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		return 0
	}
	return g.data[g.Index(x, y)]
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
