//go:build ebiten

package app

import (
	"errors"
	"fmt"

	"gridsnake/internal/core"
	"gridsnake/internal/host"
	"gridsnake/internal/render"
	"gridsnake/internal/snake"
	"gridsnake/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// frameTPS is the ebiten update rate; the game itself ticks at opts.TPS.
const frameTPS = 60

func init() {
	host.Register("window", Run)
}

// Game adapts a snake session to the ebiten.Game interface.
type Game struct {
	session *snake.Session
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	palette render.Palette
	ticker  *core.FixedStep
	keys    []ebiten.Key
}

// New constructs a Game for the provided session.
func New(s *snake.Session, opts host.Options) *Game {
	geom := s.Geometry()
	return &Game{
		session: s,
		painter: render.NewGridPainter(geom.Size()),
		overlay: ui.NewOverlay(geom),
		hud:     ui.NewHUD(s),
		palette: opts.Palette,
		ticker:  core.NewFixedStep(opts.TPS),
	}
}

// Update collects key presses every frame and advances the session whenever a
// game tick is due, so presses between ticks are not lost.
func (g *Game) Update() error {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	events := make([]snake.Event, 0, len(g.keys))
	for _, k := range g.keys {
		if ev, ok := translateKey(k); ok {
			events = append(events, ev)
		}
	}
	if g.session.HandleEvents(events) {
		return ebiten.Termination
	}

	g.overlay.Update()
	g.hud.Update()

	if g.ticker.ShouldStep() && !g.session.GameOver() {
		if out := g.session.Advance(); out.GameOver {
			host.LogGameOver(g.session)
		}
	}
	return nil
}

// Draw renders the current board.
func (g *Game) Draw(screen *ebiten.Image) {
	frame := render.NewFrame(g.session.Snapshot(), g.session.Geometry(), g.palette)
	g.painter.Draw(screen, frame)
	g.overlay.Draw(screen)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	geom := g.session.Geometry()
	return geom.Width, geom.Height
}

// Run opens the window and plays s until the window closes or a quit key is
// pressed.
func Run(s *snake.Session, opts host.Options) error {
	geom := s.Geometry()
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(geom.Width, geom.Height)
	ebiten.SetTPS(frameTPS)

	if err := ebiten.RunGame(New(s, opts)); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

func translateKey(k ebiten.Key) (snake.Event, bool) {
	switch k {
	case ebiten.KeyArrowUp:
		return snake.KeyDownEvent(snake.KeyUp), true
	case ebiten.KeyArrowDown:
		return snake.KeyDownEvent(snake.KeyDown), true
	case ebiten.KeyArrowLeft:
		return snake.KeyDownEvent(snake.KeyLeft), true
	case ebiten.KeyArrowRight:
		return snake.KeyDownEvent(snake.KeyRight), true
	case ebiten.KeyEscape, ebiten.KeyQ:
		return snake.QuitEvent(), true
	}
	return snake.Event{}, false
}
