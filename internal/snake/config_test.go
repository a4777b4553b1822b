package snake

import (
	"slices"
	"testing"

	"gridsnake/internal/core"
)

func TestDefaultConfigMatchesStartingLayout(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Geometry != core.DefaultGeometry() {
		t.Fatalf("unexpected geometry %+v", cfg.Geometry)
	}
	if cfg.Rules != DefaultRules() || !cfg.Rules.StrictTailCollision || cfg.Rules.ExcludeOccupiedOnSpawn {
		t.Fatalf("unexpected rules %+v", cfg.Rules)
	}
	if cfg.Heading != core.Right {
		t.Fatalf("expected initial heading Right, got %v", cfg.Heading)
	}

	var pixels [][2]int
	for _, c := range cfg.Start {
		x, y := cfg.Geometry.ToPixels(c)
		pixels = append(pixels, [2]int{x, y})
	}
	want := [][2]int{{320, 240}, {300, 240}, {280, 240}}
	if !slices.Equal(pixels, want) {
		t.Fatalf("start pixels %v, want %v", pixels, want)
	}
}

func TestFromMapOverrides(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":                "200",
		"h":                "100",
		"cell":             "10",
		"seed":             "77",
		"strict_tail":      "false",
		"exclude_occupied": "true",
	})
	if cfg.Geometry != (core.Geometry{Width: 200, Height: 100, CellSize: 10}) {
		t.Fatalf("unexpected geometry %+v", cfg.Geometry)
	}
	if cfg.Seed != 77 {
		t.Fatalf("expected seed 77, got %d", cfg.Seed)
	}
	if cfg.Rules.StrictTailCollision || !cfg.Rules.ExcludeOccupiedOnSpawn {
		t.Fatalf("unexpected rules %+v", cfg.Rules)
	}
	for _, c := range cfg.Start {
		if !cfg.Geometry.Contains(c) {
			t.Fatalf("start cell %v outside the overridden board", c)
		}
	}
}

func TestFromMapIgnoresInvalidValues(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":           "-5",
		"cell":        "zero",
		"strict_tail": "maybe",
	})
	def := DefaultConfig()
	if cfg.Geometry != def.Geometry || cfg.Rules != def.Rules {
		t.Fatalf("invalid values leaked into config: %+v", cfg)
	}
	if FromMap(nil).Geometry != def.Geometry {
		t.Fatal("nil map must yield defaults")
	}
}

func TestStartingSnakeFitsSmallBoards(t *testing.T) {
	geom := core.Geometry{Width: 60, Height: 20, CellSize: 20}
	got := StartingSnake(geom)
	want := cells(2, 0, 1, 0, 0, 0)
	if !slices.Equal(got, want) {
		t.Fatalf("start %v, want %v", got, want)
	}
}
