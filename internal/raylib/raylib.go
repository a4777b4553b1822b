//go:build raylib

// Package raylib is a host.Backend on top of raylib-go. It needs cgo and the
// raylib build tag.
package raylib

import (
	"errors"
	"fmt"
	"image/color"

	"gridsnake/internal/core"
	"gridsnake/internal/host"
	"gridsnake/internal/render"
	"gridsnake/internal/snake"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrUnavailable is returned when the window could not be created.
var ErrUnavailable = errors.New("raylib window unavailable")

func init() {
	host.Register("raylib", Run)
}

// Window is a host.Backend drawing into a raylib window.
type Window struct {
	geom core.Geometry
}

// Open creates the window sized to the board.
func Open(geom core.Geometry, title string) (*Window, error) {
	rl.InitWindow(int32(geom.Width), int32(geom.Height), title)
	if !rl.IsWindowReady() {
		return nil, fmt.Errorf("open %dx%d window: %w", geom.Width, geom.Height, ErrUnavailable)
	}
	rl.SetExitKey(0)
	return &Window{geom: geom}, nil
}

// Run plays s in a raylib window until quit.
func Run(s *snake.Session, opts host.Options) error {
	w, err := Open(s.Geometry(), opts.Title)
	if err != nil {
		return err
	}
	return host.Play(s, w, opts)
}

// PollEvents drains raylib's key queue. Closing the window counts as quit.
func (w *Window) PollEvents() []snake.Event {
	var out []snake.Event
	if rl.WindowShouldClose() {
		out = append(out, snake.QuitEvent())
	}
	for k := rl.GetKeyPressed(); k != 0; k = rl.GetKeyPressed() {
		if ev, ok := translateKey(k); ok {
			out = append(out, ev)
		}
	}
	return out
}

// DrawFrame clears to the background and draws one rectangle per occupied cell.
func (w *Window) DrawFrame(f render.Frame) error {
	size := int32(f.CellSize)
	rl.BeginDrawing()
	rl.ClearBackground(toColor(f.Palette.Background))
	for _, c := range f.Snake {
		rl.DrawRectangle(int32(c.X)*size, int32(c.Y)*size, size, size, toColor(f.Palette.Snake))
	}
	rl.DrawRectangle(int32(f.Food.X)*size, int32(f.Food.Y)*size, size, size, toColor(f.Palette.Food))
	rl.EndDrawing()
	return nil
}

// Close destroys the window.
func (w *Window) Close() error {
	rl.CloseWindow()
	return nil
}

func toColor(c color.RGBA) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

func translateKey(k int32) (snake.Event, bool) {
	switch k {
	case rl.KeyUp:
		return snake.KeyDownEvent(snake.KeyUp), true
	case rl.KeyDown:
		return snake.KeyDownEvent(snake.KeyDown), true
	case rl.KeyLeft:
		return snake.KeyDownEvent(snake.KeyLeft), true
	case rl.KeyRight:
		return snake.KeyDownEvent(snake.KeyRight), true
	case rl.KeyEscape, rl.KeyQ:
		return snake.QuitEvent(), true
	}
	return snake.Event{}, false
}
