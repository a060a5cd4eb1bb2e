package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snek/components"
	"github.com/lixenwraith/snek/engine"
	"github.com/lixenwraith/snek/vmath"
)

const (
	headGlyph = '@'
	bodyGlyph = 'o'
	deadGlyph = 'x'
	edgeGlyph = '·'
)

// HUD is the non-world text drawn around a frame
type HUD struct {
	Status string // metrics summary, right side of the status bar
	Paused bool
	Muted  bool
}

// TerminalRenderer draws frames to a tcell screen
// Row 0..height-2 hold the world, the last row is the status bar
type TerminalRenderer struct {
	screen   tcell.Screen
	viewport *Viewport
	width    int
	height   int
}

// NewTerminalRenderer creates a renderer sized to the screen
func NewTerminalRenderer(screen tcell.Screen, bounds components.WorldBounds) *TerminalRenderer {
	w, h := screen.Size()
	r := &TerminalRenderer{screen: screen}
	r.viewport = NewViewport(bounds, 0, 0, w, max(h-1, 1))
	r.UpdateDimensions(w, h)
	return r
}

// UpdateDimensions refits the viewport after a resize
func (r *TerminalRenderer) UpdateDimensions(width, height int) {
	r.width, r.height = width, height
	r.viewport.Resize(0, 0, width, max(height-1, 1))
}

// Viewport returns the world/screen mapping, also used for pointer input
func (r *TerminalRenderer) Viewport() *Viewport {
	return r.viewport
}

// RenderFrame renders the entire frame and shows it
func (r *TerminalRenderer) RenderFrame(f Frame, hud HUD) {
	defaultStyle := tcell.StyleDefault.Background(RgbBackground.Tcell())
	r.screen.SetStyle(defaultStyle)
	r.screen.Clear()

	// 1. World edge
	r.drawBoundary(defaultStyle)

	// 2. Food under agents
	for _, fd := range f.Foods {
		look := foodLook[components.FoodNormal]
		if int(fd.Type) < len(foodLook) {
			look = foodLook[fd.Type]
		}
		r.plot(fd.Position, look.Glyph, defaultStyle.Foreground(look.Color.Tcell()))
	}

	// 3. Bodies tail first so heads stay on top
	for _, a := range f.Agents {
		r.drawAgent(a, defaultStyle)
	}

	// 4. Status bar and phase overlay
	r.drawStatusBar(f, hud, defaultStyle)
	r.drawOverlay(f, hud, defaultStyle)

	r.screen.Show()
}

func (r *TerminalRenderer) plot(p vmath.Vec2, ch rune, style tcell.Style) {
	if x, y, ok := r.viewport.WorldToScreen(p); ok {
		r.screen.SetContent(x, y, ch, nil, style)
	}
}

func (r *TerminalRenderer) drawBoundary(defaultStyle tcell.Style) {
	style := defaultStyle.Foreground(RgbBoundary.Tcell())
	c := r.viewport.bounds.Center()
	radius := r.viewport.bounds.Radius()

	// One sample per boundary cell at the current scale
	steps := max(int(2*math.Pi*radius*r.viewport.Scale()*CellAspect), 16)
	for i := range steps {
		angle := 2 * math.Pi * float64(i) / float64(steps)
		r.plot(c.Add(vmath.FromAngle(angle).Scale(radius)), edgeGlyph, style)
	}
}

func (r *TerminalRenderer) drawAgent(a engine.AgentView, defaultStyle tcell.Style) {
	if len(a.Segments) == 0 {
		return
	}

	body, head := RgbBot, RgbBotHead
	if a.Kind == components.KindPlayer {
		body, head = RgbPlayer, RgbPlayerHead
	}
	if tint, ok := TintColor(a.Tint); ok {
		body = body.Blend(tint, 0.6)
	}
	if a.Boosting {
		body = body.Blend(RGB{255, 255, 255}, 0.25)
	}

	glyph := bodyGlyph
	if !a.Alive {
		body, head, glyph = RgbDead, RgbDead, deadGlyph
	}

	bodyStyle := defaultStyle.Foreground(body.Tcell())
	for i := len(a.Segments) - 1; i > 0; i-- {
		r.plot(a.Segments[i], glyph, bodyStyle)
	}

	headStyle := defaultStyle.Foreground(head.Tcell())
	switch {
	case a.BigHead:
		headStyle = headStyle.Background(RgbBigHeadAura.Scale(0.5).Tcell())
	case a.Magnet:
		headStyle = headStyle.Background(RgbMagnetAura.Scale(0.5).Tcell())
	}
	headRune := headGlyph
	if !a.Alive {
		headRune = deadGlyph
	}
	r.plot(a.Segments[0], headRune, headStyle)
}

func (r *TerminalRenderer) drawStatusBar(f Frame, hud HUD, defaultStyle tcell.Style) {
	statusY := r.height - 1
	if statusY < 0 {
		return
	}
	style := defaultStyle.Foreground(RgbStatusText.Tcell()).Background(RgbStatusBg.Tcell())

	// Clear status bar
	for x := 0; x < r.width; x++ {
		r.screen.SetContent(x, statusY, ' ', nil, style)
	}

	left := fmt.Sprintf(" %s  tick %d ", f.Phase, f.Tick)
	for _, a := range f.Agents {
		name := fmt.Sprintf("bot%d", a.ID)
		if a.Kind == components.KindPlayer {
			name = "you"
		}
		left += fmt.Sprintf(" %s:%d", name, a.Score)
	}
	if hud.Paused {
		left += "  [paused]"
	}
	if hud.Muted {
		left += "  [muted]"
	}

	x := r.drawText(0, statusY, left, style)
	if hud.Status != "" {
		start := max(r.width-len(hud.Status)-1, x+2)
		r.drawText(start, statusY, hud.Status, style)
	}
}

func (r *TerminalRenderer) drawOverlay(f Frame, hud HUD, defaultStyle tcell.Style) {
	var lines []string
	switch f.Phase {
	case engine.PhaseIdle:
		lines = []string{"SNEK", "Enter or click to start", "mouse steers, arrows/hjkl/wasd override, space boosts"}
	case engine.PhaseEnded:
		score := 0
		for _, a := range f.Agents {
			if a.Kind == components.KindPlayer {
				score = a.Score
			}
		}
		lines = []string{"GAME OVER", fmt.Sprintf("score %d", score), "r restart, q quit"}
	default:
		if hud.Paused {
			lines = []string{"PAUSED", "p to resume"}
		}
	}

	style := defaultStyle.Foreground(RgbOverlay.Tcell()).Bold(true)
	top := (r.height-1)/2 - len(lines)/2
	for i, line := range lines {
		r.drawText((r.width-len([]rune(line)))/2, top+i, line, style)
	}
}

// drawText writes s from (x, y), clipped to the screen; returns the next column
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		if x >= r.width {
			break
		}
		if x >= 0 {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
	return x
}
