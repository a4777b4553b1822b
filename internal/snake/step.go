package snake

import "gridsnake/internal/core"

// Collision records why a tick ended the game.
type Collision int

const (
	NoCollision Collision = iota
	WallCollision
	SelfCollision
)

// String returns a short name for logs and the HUD.
func (c Collision) String() string {
	switch c {
	case NoCollision:
		return "none"
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "unknown"
	}
}

// Rules selects between the two readings of the movement rules.
type Rules struct {
	// StrictTailCollision treats the current tail as occupied even when it is
	// about to vacate its cell this tick.
	StrictTailCollision bool
	// ExcludeOccupiedOnSpawn keeps respawned food off the snake body.
	ExcludeOccupiedOnSpawn bool
}

// DefaultRules returns strict tail collision and unrestricted food placement.
func DefaultRules() Rules {
	return Rules{StrictTailCollision: true, ExcludeOccupiedOnSpawn: false}
}

// Source supplies uniformly distributed integers in [0, n).
type Source interface {
	IntN(n int) int
}

// Outcome describes what a single Step did.
type Outcome struct {
	Ate       bool
	GameOver  bool
	Collision Collision
}

// Step advances st by one tick in direction dir. On a collision the state is
// left exactly as it was and the outcome reports GameOver.
func Step(st *State, dir core.Direction, geom core.Geometry, rules Rules, src Source) Outcome {
	head, err := st.Head()
	if err != nil {
		return Outcome{GameOver: true}
	}
	next := head.Step(dir)

	if !geom.Contains(next) {
		return Outcome{GameOver: true, Collision: WallCollision}
	}

	eating := next == st.Food()
	body := st.body
	if !rules.StrictTailCollision && !eating && len(body) > 1 {
		body = body[:len(body)-1]
	}
	for _, p := range body {
		if p == next {
			return Outcome{GameOver: true, Collision: SelfCollision}
		}
	}

	st.GrowFront(next)
	if eating {
		st.PlaceFood(respawnFood(st, geom, rules, src))
		return Outcome{Ate: true}
	}
	st.ShrinkBack()
	return Outcome{}
}

// SpawnFood picks a food cell uniformly over the board. Snake cells are
// skipped only when rules.ExcludeOccupiedOnSpawn is set and a free cell exists.
func SpawnFood(st *State, geom core.Geometry, rules Rules, src Source) core.Cell {
	exclude := rules.ExcludeOccupiedOnSpawn && st.Len() < geom.Cols()*geom.Rows()
	for {
		c := randomCell(geom, src)
		if exclude && st.Occupies(c) {
			continue
		}
		return c
	}
}

// respawnFood replaces eaten food. The eaten cell is never chosen again while
// the board has any other cell to offer.
func respawnFood(st *State, geom core.Geometry, rules Rules, src Source) core.Cell {
	eaten := st.Food()
	total := geom.Cols() * geom.Rows()
	if total <= 1 {
		return eaten
	}
	exclude := rules.ExcludeOccupiedOnSpawn && st.Len() < total
	for {
		c := randomCell(geom, src)
		if c == eaten {
			continue
		}
		if exclude && st.Occupies(c) {
			continue
		}
		return c
	}
}

func randomCell(geom core.Geometry, src Source) core.Cell {
	return core.Cell{X: src.IntN(geom.Cols()), Y: src.IntN(geom.Rows())}
}
