package ui

import (
	"fmt"
	"image"

	"gridsnake/internal/core"
)

const (
	panelPadding  = 8
	lineHeight    = 16
	textBaseline  = 12
	groupSpacing  = 6
	panelMinWidth = 160
	glyphWidth    = 7
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// panelLine is one row of text on the HUD panel.
type panelLine struct {
	text   string
	header bool
	y      int
}

// panelLayout positions the parameter groups as rows of text and returns the
// panel bounds needed to hold them.
func panelLayout(snap core.ParameterSnapshot) ([]panelLine, image.Rectangle) {
	var lines []panelLine
	y := panelPadding + textBaseline
	widest := 0
	add := func(s string, header bool) {
		lines = append(lines, panelLine{text: s, header: header, y: y})
		y += lineHeight
		if len(s) > widest {
			widest = len(s)
		}
	}
	for i, g := range snap.Groups {
		if i > 0 {
			y += groupSpacing
		}
		add(g.Name, true)
		for _, p := range g.Params {
			add(fmt.Sprintf("  %s: %s", p.Label, p.Value), false)
		}
	}
	if len(lines) == 0 {
		return nil, image.Rectangle{}
	}
	w := widest*glyphWidth + 2*panelPadding
	if w < panelMinWidth {
		w = panelMinWidth
	}
	h := y - lineHeight + panelPadding + (lineHeight - textBaseline)
	return lines, image.Rect(0, 0, w, h)
}

// gridLines returns the pixel offsets of the interior cell boundaries along
// each axis.
func gridLines(geom core.Geometry) (xs, ys []int) {
	if geom.CellSize <= 0 {
		return nil, nil
	}
	for x := geom.CellSize; x < geom.Cols()*geom.CellSize; x += geom.CellSize {
		xs = append(xs, x)
	}
	for y := geom.CellSize; y < geom.Rows()*geom.CellSize; y += geom.CellSize {
		ys = append(ys, y)
	}
	return xs, ys
}
