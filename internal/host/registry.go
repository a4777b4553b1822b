// Package host runs a Session against a windowing/input backend: the backend
// contract, the fixed-delay loop and the registry the CLI picks backends from.
package host

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"gridsnake/internal/core"
	"gridsnake/internal/render"
	"gridsnake/internal/snake"
)

// ErrUnknownBackend is returned by Lookup for unregistered names.
var ErrUnknownBackend = errors.New("unknown backend")

// Backend is the window, input and drawing collaborator of the loop.
type Backend interface {
	// PollEvents returns every pending event without blocking.
	PollEvents() []snake.Event
	// DrawFrame clears, draws and presents one frame.
	DrawFrame(f render.Frame) error
	// Close releases all backend resources.
	Close() error
}

// Options are the presentation settings shared by every backend.
type Options struct {
	Title   string
	TPS     int
	Palette render.Palette
}

// DefaultOptions returns the "Snake Game" title, 10 ticks per second and the
// default palette.
func DefaultOptions() Options {
	return Options{Title: "Snake Game", TPS: core.DefaultTPS, Palette: render.DefaultPalette()}
}

// Delay returns the pause between two ticks.
func (o Options) Delay() time.Duration {
	tps := o.TPS
	if tps <= 0 {
		tps = core.DefaultTPS
	}
	return time.Second / time.Duration(tps)
}

// Runner creates a backend, plays s on it until quit and tears it down.
type Runner func(s *snake.Session, opts Options) error

var runners = map[string]Runner{}

// Register adds a backend runner under the provided name.
func Register(name string, r Runner) {
	if name == "" || r == nil {
		return
	}
	runners[name] = r
}

// Lookup returns the runner registered under name.
func Lookup(name string) (Runner, error) {
	r, ok := runners[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %v)", ErrUnknownBackend, name, Names())
	}
	return r, nil
}

// Names lists the registered backends in sorted order.
func Names() []string {
	names := make([]string, 0, len(runners))
	for name := range runners {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
