// Package term plays the game in a terminal through tcell. Each board cell is
// two columns wide so cells look roughly square.
package term

import (
	"fmt"
	"image/color"

	"gridsnake/internal/core"
	"gridsnake/internal/host"
	"gridsnake/internal/render"
	"gridsnake/internal/snake"

	"github.com/gdamore/tcell/v2"
)

const (
	cellColumns = 2
	eventBuffer = 64
)

func init() {
	host.Register("terminal", Run)
}

// Screen is a host.Backend drawing on a tcell screen.
type Screen struct {
	screen tcell.Screen
	grid   *core.ByteGrid
	events chan tcell.Event
	done   chan struct{}
}

// Open initialises screen and starts pumping its events.
func Open(screen tcell.Screen, size core.Size) (*Screen, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	s := &Screen{
		screen: screen,
		grid:   core.NewByteGrid(size.W, size.H),
		events: make(chan tcell.Event, eventBuffer),
		done:   make(chan struct{}),
	}
	go s.pump()
	return s, nil
}

// Run plays sess in the current terminal until quit.
func Run(sess *snake.Session, opts host.Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create terminal screen: %w", err)
	}
	b, err := Open(screen, sess.Geometry().Size())
	if err != nil {
		return err
	}
	return host.Play(sess, b, opts)
}

func (s *Screen) pump() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.done:
			return
		}
	}
}

// PollEvents drains every event received since the last call.
func (s *Screen) PollEvents() []snake.Event {
	var out []snake.Event
	for {
		select {
		case ev := <-s.events:
			if e, ok := translateEvent(ev); ok {
				out = append(out, e)
			}
		default:
			return out
		}
	}
}

// DrawFrame paints the whole board and shows it.
func (s *Screen) DrawFrame(f render.Frame) error {
	render.Rasterize(f, s.grid)
	styles := [...]tcell.Style{
		render.IndexBackground: cellStyle(f.Palette.Background),
		render.IndexSnake:      cellStyle(f.Palette.Snake),
		render.IndexFood:       cellStyle(f.Palette.Food),
	}
	for y := 0; y < s.grid.H; y++ {
		for x := 0; x < s.grid.W; x++ {
			st := styles[render.IndexBackground]
			if v := s.grid.At(x, y); int(v) < len(styles) {
				st = styles[v]
			}
			for c := 0; c < cellColumns; c++ {
				s.screen.SetContent(x*cellColumns+c, y, ' ', nil, st)
			}
		}
	}
	s.screen.Show()
	return nil
}

// Close stops the event pump and restores the terminal.
func (s *Screen) Close() error {
	close(s.done)
	s.screen.Fini()
	return nil
}

func cellStyle(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

func translateEvent(ev tcell.Event) (snake.Event, bool) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return snake.Event{}, false
	}
	switch key.Key() {
	case tcell.KeyUp:
		return snake.KeyDownEvent(snake.KeyUp), true
	case tcell.KeyDown:
		return snake.KeyDownEvent(snake.KeyDown), true
	case tcell.KeyLeft:
		return snake.KeyDownEvent(snake.KeyLeft), true
	case tcell.KeyRight:
		return snake.KeyDownEvent(snake.KeyRight), true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return snake.QuitEvent(), true
	case tcell.KeyRune:
		if key.Modifiers()&tcell.ModCtrl != 0 {
			if r := key.Rune(); r == 'c' || r == 'C' {
				return snake.QuitEvent(), true
			}
			return snake.Event{}, false
		}
		switch key.Rune() {
		case 'w', 'W':
			return snake.KeyDownEvent(snake.KeyUp), true
		case 's', 'S':
			return snake.KeyDownEvent(snake.KeyDown), true
		case 'a', 'A':
			return snake.KeyDownEvent(snake.KeyLeft), true
		case 'd', 'D':
			return snake.KeyDownEvent(snake.KeyRight), true
		case 'q', 'Q':
			return snake.QuitEvent(), true
		}
	}
	return snake.Event{}, false
}
