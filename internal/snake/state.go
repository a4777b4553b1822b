// Package snake holds the game model: the snake body and food, the one-tick
// simulation step, and the mapping from key events to a steering intent.
package snake

import (
	"errors"

	"gridsnake/internal/core"
)

// ErrEmptySnake is returned when a snake would have no cells.
var ErrEmptySnake = errors.New("snake has no cells")

// State is the authoritative board content: the body ordered head to tail and
// the single food cell.
type State struct {
	body []core.Cell
	food core.Cell
}

// NewState copies body into a new State. The head is body[0].
func NewState(body []core.Cell, food core.Cell) (*State, error) {
	if len(body) == 0 {
		return nil, ErrEmptySnake
	}
	return &State{body: append([]core.Cell(nil), body...), food: food}, nil
}

// Head returns the first body cell.
func (s *State) Head() (core.Cell, error) {
	if len(s.body) == 0 {
		return core.Cell{}, ErrEmptySnake
	}
	return s.body[0], nil
}

// GrowFront prepends c as the new head.
func (s *State) GrowFront(c core.Cell) {
	s.body = append(s.body, core.Cell{})
	copy(s.body[1:], s.body)
	s.body[0] = c
}

// ShrinkBack drops the tail. A single-cell snake is left untouched.
func (s *State) ShrinkBack() {
	if len(s.body) <= 1 {
		return
	}
	s.body = s.body[:len(s.body)-1]
}

// PlaceFood overwrites the food cell.
func (s *State) PlaceFood(c core.Cell) { s.food = c }

// Food returns the food cell.
func (s *State) Food() core.Cell { return s.food }

// Len returns the number of body cells.
func (s *State) Len() int { return len(s.body) }

// Body returns a copy of the body, head first.
func (s *State) Body() []core.Cell { return append([]core.Cell(nil), s.body...) }

// Occupies reports whether any body cell equals c.
func (s *State) Occupies(c core.Cell) bool {
	for _, p := range s.body {
		if p == c {
			return true
		}
	}
	return false
}
