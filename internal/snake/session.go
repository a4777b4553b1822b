package snake

import (
	"fmt"

	"gridsnake/internal/core"

	"github.com/google/uuid"
)

// Session is one game from start to game over. It is not safe for concurrent
// use; a single host loop owns it.
type Session struct {
	id    string
	seed  int64
	geom  core.Geometry
	rules Rules

	state *State
	steer *Steering
	src   Source

	tick      uint64
	eaten     int
	gameOver  bool
	collision Collision
}

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Tick      uint64
	Snake     []core.Cell
	Food      core.Cell
	Heading   core.Direction
	GameOver  bool
	Collision Collision
}

// NewSession validates cfg and places the initial food.
func NewSession(cfg Config) (*Session, error) {
	seed := core.ResolveSeed(cfg.Seed)
	return NewSessionWithSource(cfg, core.NewRNG(seed), seed)
}

// NewSessionWithSource is NewSession with an explicit randomness source; seed
// is only recorded for reporting.
func NewSessionWithSource(cfg Config, src Source, seed int64) (*Session, error) {
	if err := cfg.Geometry.Validate(); err != nil {
		return nil, err
	}
	start := cfg.Start
	if start == nil {
		start = StartingSnake(cfg.Geometry)
	}
	for _, c := range start {
		if !cfg.Geometry.Contains(c) {
			return nil, fmt.Errorf("start cell %v outside %dx%d board", c, cfg.Geometry.Cols(), cfg.Geometry.Rows())
		}
	}
	st, err := NewState(start, core.Cell{})
	if err != nil {
		return nil, err
	}
	s := &Session{
		id:    uuid.NewString(),
		seed:  seed,
		geom:  cfg.Geometry,
		rules: cfg.Rules,
		state: st,
		steer: NewSteering(cfg.Heading),
		src:   src,
	}
	st.PlaceFood(SpawnFood(st, s.geom, s.rules, s.src))
	return s, nil
}

// ID returns the unique session identifier used in logs.
func (s *Session) ID() string { return s.id }

// Seed returns the seed food placement was derived from.
func (s *Session) Seed() int64 { return s.seed }

// Geometry returns the board geometry.
func (s *Session) Geometry() core.Geometry { return s.geom }

// Rules returns the active rule set.
func (s *Session) Rules() Rules { return s.rules }

// Eaten returns how many food cells the snake has consumed.
func (s *Session) Eaten() int { return s.eaten }

// GameOver reports whether the snake has crashed.
func (s *Session) GameOver() bool { return s.gameOver }

// HandleEvents feeds raw events to the steering state. Input is still accepted
// after game over so quit keeps working.
func (s *Session) HandleEvents(events []Event) (quit bool) {
	return s.steer.Apply(events)
}

// Advance runs one simulation tick. It does nothing once the game is over.
func (s *Session) Advance() Outcome {
	if s.gameOver {
		return Outcome{GameOver: true, Collision: s.collision}
	}
	dir := s.steer.Commit()
	out := Step(s.state, dir, s.geom, s.rules, s.src)
	s.tick++
	if out.Ate {
		s.eaten++
	}
	if out.GameOver {
		s.gameOver = true
		s.collision = out.Collision
	}
	return out
}

// Update handles events and, unless a quit was requested, advances one tick.
func (s *Session) Update(events []Event) (quit bool) {
	if s.HandleEvents(events) {
		return true
	}
	s.Advance()
	return false
}

// Snapshot copies the current board.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tick:      s.tick,
		Snake:     s.state.Body(),
		Food:      s.state.Food(),
		Heading:   s.steer.Committed(),
		GameOver:  s.gameOver,
		Collision: s.collision,
	}
}

// Parameters exposes session values for the diagnostics panel.
func (s *Session) Parameters() core.ParameterSnapshot {
	head, _ := s.state.Head()
	status := "running"
	if s.gameOver {
		status = "game over (" + s.collision.String() + ")"
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				core.IntParam("cols", "Columns", s.geom.Cols()),
				core.IntParam("rows", "Rows", s.geom.Rows()),
				core.IntParam("cell", "Cell px", s.geom.CellSize),
				core.StringParam("seed", "Seed", fmt.Sprint(s.seed)),
			},
		},
		{
			Name: "Rules",
			Params: []core.Parameter{
				core.BoolParam("strict_tail", "Strict tail", s.rules.StrictTailCollision),
				core.BoolParam("exclude_occupied", "Food avoids body", s.rules.ExcludeOccupiedOnSpawn),
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				core.StringParam("status", "Status", status),
				core.IntParam("tick", "Tick", int(s.tick)),
				core.StringParam("heading", "Heading", s.steer.Committed().String()),
				core.StringParam("head", "Head", head.String()),
				core.StringParam("food", "Food", s.state.Food().String()),
			},
		},
	}}
}
