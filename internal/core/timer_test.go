package core

import (
	"slices"
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestFixedStepTicksAtInterval(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	fs := NewFixedStep(10)
	fs.now = clock.now

	if fs.Interval() != 100*time.Millisecond {
		t.Fatalf("expected 100ms interval, got %v", fs.Interval())
	}
	if fs.ShouldStep() {
		t.Fatal("first call must only prime the clock")
	}

	var got []bool
	for i := 0; i < 6; i++ {
		clock.advance(50 * time.Millisecond)
		got = append(got, fs.ShouldStep())
	}
	want := []bool{false, true, false, true, false, true}
	if !slices.Equal(got, want) {
		t.Fatalf("tick pattern %v, want %v", got, want)
	}
}

func TestFixedStepDrainsBacklogOnePerCall(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	fs := NewFixedStep(10)
	fs.now = clock.now
	fs.ShouldStep()

	clock.advance(300 * time.Millisecond)
	steps := 0
	for i := 0; i < 5; i++ {
		if fs.ShouldStep() {
			steps++
		}
	}
	if steps != 3 {
		t.Fatalf("expected 3 ticks for a 300ms stall, got %d", steps)
	}
}

func TestFixedStepDefaultsInvalidRate(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Interval() != time.Second/DefaultTPS {
		t.Fatalf("expected default interval, got %v", fs.Interval())
	}
}

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(7), NewRNG(7)
	for i := 0; i < 32; i++ {
		if x, y := a.IntN(36), b.IntN(36); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
	if NewRNG(1).IntN(0) != 0 {
		t.Fatal("IntN(0) must return 0")
	}
	if ResolveSeed(99) != 99 {
		t.Fatal("non-zero seed must be kept")
	}
	if ResolveSeed(0) == 0 {
		t.Fatal("zero seed must be replaced")
	}
}
