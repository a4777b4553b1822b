//go:build ebiten

package ui

import (
	"image/color"

	"gridsnake/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders a translucent diagnostics panel in the top-left corner of the
// board. It starts hidden and is toggled with H.
type HUD struct {
	source   parameterProvider
	visible  bool
	snapshot core.ParameterSnapshot
	panel    *ebiten.Image
}

// NewHUD constructs a HUD reading parameters from source.
func NewHUD(source parameterProvider) *HUD {
	return &HUD{source: source}
}

// Visible reports whether the panel is shown.
func (h *HUD) Visible() bool { return h != nil && h.visible }

// Update handles the toggle key and refreshes the cached snapshot.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
	if h.visible && h.source != nil {
		h.snapshot = h.source.Parameters()
	}
}

// Draw paints the panel when visible.
func (h *HUD) Draw(screen *ebiten.Image) {
	if !h.Visible() {
		return
	}
	lines, bounds := panelLayout(h.snapshot)
	if len(lines) == 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != bounds.Dx() || h.panel.Bounds().Dy() != bounds.Dy() {
		h.panel = ebiten.NewImage(bounds.Dx(), bounds.Dy())
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})

	face := basicfont.Face7x13
	for _, l := range lines {
		col := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if l.header {
			col = color.RGBA{R: 200, G: 200, B: 120, A: 255}
		}
		text.Draw(h.panel, l.text, face, panelPadding, l.y, col)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(panelPadding, panelPadding)
	screen.DrawImage(h.panel, op)
}
