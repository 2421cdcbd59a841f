//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"ripples/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding   = 10
	headerBaseline = 13
	lineHeight     = 16
	groupGap       = 6
	buttonSize     = 16
	buttonGap      = 6
)

var (
	panelColor  = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor  = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	mutedColor  = color.RGBA{R: 150, G: 150, B: 160, A: 255}
	errorColor  = color.RGBA{R: 230, G: 110, B: 100, A: 255}
	buttonColor = color.RGBA{R: 60, G: 60, B: 72, A: 255}
)

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	sim      core.Sim
	width    int
	panel    *ebiten.Image
	snapshot core.ParameterSnapshot

	controls     []controlState
	setter       core.FloatParameterSetter
	panelOffsetX int
	title        string
	lastErr      string
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width, title: buildTitle(sim)}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			h.controls = append(h.controls, controlState{control: ctrl})
		}
		h.layoutControls()
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		h.setter = setter
	}
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached parameter snapshot and handles button clicks.
// It reports whether the click was consumed by the panel.
func (h *HUD) Update(panelOffsetX int) bool {
	if h == nil {
		return false
	}
	h.panelOffsetX = panelOffsetX
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return false
	}
	h.snapshot = provider.Parameters()
	refreshControls(h.controls, h.snapshot)
	return h.handleInput()
}

// Draw paints the HUD panel anchored to the right edge of the simulation view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelColor)
	y := h.drawControls()
	h.drawSnapshot(y)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Controls"
	}
	name := sim.Name()
	return fmt.Sprintf("%s%s controls", strings.ToUpper(name[:1]), name[1:])
}

func (h *HUD) layoutControls() {
	top := panelPadding + headerBaseline + groupGap
	for i := range h.controls {
		st := &h.controls[i]
		st.top = top
		plusX := h.width - panelPadding - buttonSize
		minusX := plusX - buttonGap - buttonSize
		st.minusRect = image.Rect(minusX, top, minusX+buttonSize, top+buttonSize)
		st.plusRect = image.Rect(plusX, top, plusX+buttonSize, top+buttonSize)
		top += buttonSize + groupGap
	}
}

func (h *HUD) handleInput() bool {
	if len(h.controls) == 0 || h.setter == nil {
		return false
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return false
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		st := &h.controls[i]
		if !st.hasValue {
			continue
		}
		switch {
		case pointInRect(px, my, st.minusRect):
			h.apply(st, -1)
		case pointInRect(px, my, st.plusRect):
			h.apply(st, 1)
		}
	}
	return true
}

func (h *HUD) apply(st *controlState, dir int) {
	target, ok := adjustedValue(st.control, st.value, dir)
	if !ok {
		return
	}
	if err := h.setter.SetFloatParameter(st.control.Key, target); err != nil {
		h.lastErr = err.Error()
		return
	}
	h.lastErr = ""
	st.value = target
}

func (h *HUD) drawControls() int {
	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, panelPadding, panelPadding+headerBaseline, titleColor)
	y := panelPadding + headerBaseline + groupGap
	for i := range h.controls {
		st := &h.controls[i]
		baseline := st.top + headerBaseline - 1
		text.Draw(h.panel, st.control.Label, face, panelPadding, baseline, labelColor)
		value := "--"
		if st.hasValue {
			value = formatValue(st.control, st.value)
		}
		bounds := text.BoundString(face, value)
		text.Draw(h.panel, value, face, st.minusRect.Min.X-buttonGap-bounds.Dx(), baseline, labelColor)
		h.drawButton(st.minusRect, "-")
		h.drawButton(st.plusRect, "+")
		y = st.top + buttonSize + groupGap
	}
	if h.lastErr != "" {
		y += lineHeight
		text.Draw(h.panel, truncate(h.lastErr, (h.width-2*panelPadding)/7), face, panelPadding, y, errorColor)
	}
	return y + groupGap
}

func (h *HUD) drawSnapshot(y int) {
	face := basicfont.Face7x13
	for _, group := range h.snapshot.Groups {
		y += lineHeight
		text.Draw(h.panel, group.Name, face, panelPadding, y, titleColor)
		for _, p := range group.Params {
			y += lineHeight
			line := fmt.Sprintf("%s: %s", p.Label, p.Value)
			text.Draw(h.panel, truncate(line, (h.width-2*panelPadding)/7), face, panelPadding, y, mutedColor)
		}
		y += groupGap
	}
}

func (h *HUD) drawButton(r image.Rectangle, label string) {
	vector.DrawFilledRect(h.panel, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), buttonColor, false)
	text.Draw(h.panel, label, basicfont.Face7x13, r.Min.X+5, r.Min.Y+12, labelColor)
}

func truncate(s string, n int) string {
	if n <= 3 || len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
