package host

import (
	"errors"
	"io"
	"log"
	"os"
	"testing"
	"time"

	"gridsnake/internal/core"
	"gridsnake/internal/render"
	"gridsnake/internal/snake"
)

// fakeBackend replays one batch of events per poll and records every frame.
type fakeBackend struct {
	batches [][]snake.Event
	polls   int
	frames  []render.Frame
	drawErr error
	closed  int
}

func (f *fakeBackend) PollEvents() []snake.Event {
	defer func() { f.polls++ }()
	if f.polls < len(f.batches) {
		return f.batches[f.polls]
	}
	return []snake.Event{snake.QuitEvent()}
}

func (f *fakeBackend) DrawFrame(fr render.Frame) error {
	if f.drawErr != nil {
		return f.drawErr
	}
	f.frames = append(f.frames, fr)
	return nil
}

func (f *fakeBackend) Close() error {
	f.closed++
	return nil
}

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func newSession(t *testing.T, start []core.Cell) *snake.Session {
	t.Helper()
	cfg := snake.DefaultConfig()
	cfg.Seed = 3
	if start != nil {
		cfg.Start = start
	}
	s, err := snake.NewSession(cfg)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func TestLoopStepsDrawsAndSleepsEachTick(t *testing.T) {
	s := newSession(t, nil)
	b := &fakeBackend{batches: [][]snake.Event{nil, {snake.KeyDownEvent(snake.KeyDown)}, nil}}
	loop := NewLoop(s, b, DefaultOptions())
	var sleeps []time.Duration
	loop.sleep = func(d time.Duration) { sleeps = append(sleeps, d) }

	if err := loop.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(b.frames) != 3 || len(sleeps) != 3 {
		t.Fatalf("expected 3 frames and sleeps, got %d and %d", len(b.frames), len(sleeps))
	}
	for _, d := range sleeps {
		if d != 100*time.Millisecond {
			t.Fatalf("expected 100ms delay, got %v", d)
		}
	}
	last := b.frames[2]
	if last.Snake[0] != (core.Cell{X: 17, Y: 14}) {
		t.Fatalf("unexpected head after right, down, down: %v", last.Snake[0])
	}
	if last.CellSize != 20 || last.Palette != render.DefaultPalette() {
		t.Fatalf("frame lost presentation settings: %+v", last)
	}
}

func TestLoopKeepsDrawingAfterGameOver(t *testing.T) {
	s := newSession(t, []core.Cell{{X: 35, Y: 3}, {X: 34, Y: 3}, {X: 33, Y: 3}})
	b := &fakeBackend{batches: [][]snake.Event{nil, nil, nil, nil}}
	loop := NewLoop(s, b, DefaultOptions())
	loop.sleep = func(time.Duration) {}

	if err := loop.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !s.GameOver() {
		t.Fatal("expected game over at the right wall")
	}
	if len(b.frames) != 4 {
		t.Fatalf("expected a frame per iteration after game over, got %d", len(b.frames))
	}
	for i, fr := range b.frames {
		if fr.Snake[0] != (core.Cell{X: 35, Y: 3}) {
			t.Fatalf("frame %d: head moved to %v", i, fr.Snake[0])
		}
	}
}

func TestLoopReportsDrawErrors(t *testing.T) {
	s := newSession(t, nil)
	boom := errors.New("device lost")
	b := &fakeBackend{batches: [][]snake.Event{nil}, drawErr: boom}
	loop := NewLoop(s, b, DefaultOptions())
	loop.sleep = func(time.Duration) {}

	if err := loop.Run(); !errors.Is(err, boom) {
		t.Fatalf("expected draw error, got %v", err)
	}
}

func TestPlayAlwaysClosesBackend(t *testing.T) {
	s := newSession(t, nil)
	b := &fakeBackend{drawErr: errors.New("unused")}
	if err := Play(s, b, DefaultOptions()); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if b.closed != 1 {
		t.Fatalf("expected one Close, got %d", b.closed)
	}
}

func TestRegistry(t *testing.T) {
	called := false
	Register("fake", func(*snake.Session, Options) error {
		called = true
		return nil
	})
	Register("", func(*snake.Session, Options) error { return nil })
	Register("nil", nil)

	r, err := Lookup("fake")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if err := r(nil, DefaultOptions()); err != nil || !called {
		t.Fatalf("runner not invoked: %v", err)
	}
	if _, err := Lookup("missing"); !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("expected ErrUnknownBackend, got %v", err)
	}
	for _, name := range Names() {
		if name == "" || name == "nil" {
			t.Fatalf("invalid registration %q accepted", name)
		}
	}
}

func TestOptionsDelay(t *testing.T) {
	if d := (Options{TPS: 20}).Delay(); d != 50*time.Millisecond {
		t.Fatalf("expected 50ms, got %v", d)
	}
	if d := (Options{}).Delay(); d != 100*time.Millisecond {
		t.Fatalf("expected default 100ms, got %v", d)
	}
}
