package snake

import (
	"strconv"

	"gridsnake/internal/core"
)

// Pixel position of the starting head on the default board.
const (
	startHeadX   = 320
	startHeadY   = 240
	startLength  = 3
	startHeading = core.Right
)

// Config controls board size, rules and seeding of a Session.
type Config struct {
	Geometry core.Geometry
	Rules    Rules

	// Seed drives food placement. Zero picks a clock-derived seed.
	Seed int64

	// Start is the initial body, head first. Nil derives it from Geometry.
	Start   []core.Cell
	Heading core.Direction
}

// DefaultConfig returns the standard 720x560 board with a three-cell snake
// heading right from (320,240).
func DefaultConfig() Config {
	geom := core.DefaultGeometry()
	return Config{
		Geometry: geom,
		Rules:    DefaultRules(),
		Start:    StartingSnake(geom),
		Heading:  startHeading,
	}
}

// StartingSnake lays out a horizontal snake facing right with its head at
// pixel (320,240), pulled inside the board when the board is smaller.
func StartingSnake(geom core.Geometry) []core.Cell {
	head := geom.FromPixels(startHeadX, startHeadY)
	if cols := geom.Cols(); head.X >= cols {
		head.X = cols - 1
	}
	if head.X < startLength-1 {
		head.X = startLength - 1
	}
	if rows := geom.Rows(); head.Y >= rows {
		head.Y = rows - 1
	}
	if head.Y < 0 {
		head.Y = 0
	}
	body := make([]core.Cell, 0, startLength)
	for i := 0; i < startLength; i++ {
		body = append(body, core.Cell{X: head.X - i, Y: head.Y})
	}
	return body
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Geometry.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Geometry.Height = parsed
		}
	}
	if v, ok := cfg["cell"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Geometry.CellSize = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["strict_tail"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Rules.StrictTailCollision = parsed
		}
	}
	if v, ok := cfg["exclude_occupied"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Rules.ExcludeOccupiedOnSpawn = parsed
		}
	}
	c.Start = StartingSnake(c.Geometry)
	return c
}
