package host

import (
	"fmt"
	"log"
	"time"

	"gridsnake/internal/render"
	"gridsnake/internal/snake"
)

// Loop drives poll, step and draw in strict sequence with a fixed delay
// between iterations.
type Loop struct {
	session *snake.Session
	backend Backend
	opts    Options
	sleep   func(time.Duration)
}

// NewLoop wires a session to a backend.
func NewLoop(s *snake.Session, b Backend, opts Options) *Loop {
	return &Loop{session: s, backend: b, opts: opts, sleep: time.Sleep}
}

// Run plays until the backend reports a quit. Game over freezes the board but
// keeps polling and drawing.
func (l *Loop) Run() error {
	delay := l.opts.Delay()
	for {
		if l.session.HandleEvents(l.backend.PollEvents()) {
			log.Printf("session %s: quit at tick %d", l.session.ID(), l.session.Snapshot().Tick)
			return nil
		}
		if !l.session.GameOver() {
			if out := l.session.Advance(); out.GameOver {
				LogGameOver(l.session)
			}
		}
		frame := render.NewFrame(l.session.Snapshot(), l.session.Geometry(), l.opts.Palette)
		if err := l.backend.DrawFrame(frame); err != nil {
			return fmt.Errorf("draw frame: %w", err)
		}
		l.sleep(delay)
	}
}

// Play runs a loop on b and always closes b afterwards.
func Play(s *snake.Session, b Backend, opts Options) (err error) {
	defer func() {
		if cerr := b.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close backend: %w", cerr)
		}
	}()
	return NewLoop(s, b, opts).Run()
}

// LogGameOver reports the end of a game.
func LogGameOver(s *snake.Session) {
	snap := s.Snapshot()
	log.Printf("session %s: game over at tick %d (%s collision, length %d, eaten %d)",
		s.ID(), snap.Tick, snap.Collision, len(snap.Snake), s.Eaten())
}
