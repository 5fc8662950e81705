package chameleon

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/hungry-chameleon/internal/core"
	"github.com/vovakirdan/hungry-chameleon/internal/games/chameleon/sim"
)

// Visual characters for rendering
const (
	FlyChar    = '*'
	TongueChar = '~'
)

// headingGlyphs point along the eight compass directions, starting east and
// turning clockwise in screen coordinates.
var headingGlyphs = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// HeadingGlyph returns the arrow closest to the given heading.
func HeadingGlyph(h core.Vec) rune {
	if h.IsZero() {
		return '@'
	}
	i := int(math.Round(h.Angle()/(math.Pi/4))) % 8
	if i < 0 {
		i += 8
	}
	return headingGlyphs[i]
}

// viewport maps playfield pixels onto the screen cells inside the border.
type viewport struct {
	area   core.Rect
	bounds sim.Bounds
}

func (v viewport) cell(p core.Vec) (int, int) {
	x := v.area.X + int(p.X/v.bounds.W*float64(v.area.W))
	y := v.area.Y + int(p.Y/v.bounds.H*float64(v.area.H))
	return core.Clamp(x, v.area.X, v.area.Right()-1), core.Clamp(y, v.area.Y, v.area.Bottom()-1)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	snap := g.session.Snapshot()
	g.drawHUD(dst, snap)

	w, h := dst.Width(), dst.Height()
	if w < 4 || h < 5 {
		return
	}

	// Playfield border below the HUD line
	border := core.NewRect(0, 1, w, h-1)
	dst.DrawBox(border)
	vp := viewport{
		area:   core.NewRect(1, 2, w-2, h-3),
		bounds: snap.Bounds,
	}

	for _, f := range snap.Flies {
		x, y := vp.cell(f.Pos)
		dst.SetColored(x, y, FlyChar, core.ColorBrightYellow)
	}

	if snap.TongueOut {
		drawTongue(dst, vp, snap)
	}

	x, y := vp.cell(snap.Chameleon.Pos)
	dst.SetColored(x, y, HeadingGlyph(snap.Chameleon.Heading), core.ColorBrightGreen)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if snap.Terminal {
		drawCenteredMessage(dst, "ALL FLIES EATEN",
			fmt.Sprintf("Score: %d in %s  |  Press R to restart", snap.Score, formatElapsed(g.Elapsed(snap.Tick))))
	}
}

// drawHUD writes the status line: flies left, score and play time.
func (g *Game) drawHUD(dst *core.Screen, snap sim.Snapshot) {
	hud := fmt.Sprintf(" Flies: %d/%d  Score: %d  Time: %s ",
		snap.Remaining, snap.Initial, snap.Score, formatElapsed(g.Elapsed(snap.Tick)))
	dst.DrawText(0, 0, hud)

	if snap.TongueOut {
		dst.DrawTextColored(len([]rune(hud))+1, 0, "TONGUE", core.ColorRed)
	}
}

// drawTongue samples the segment from the chameleon to the tip of its
// tongue, wrapping like everything else on the field.
func drawTongue(dst *core.Screen, vp viewport, snap sim.Snapshot) {
	from := snap.Chameleon.Pos
	to := snap.TonguePoint()

	fx, fy := vp.cell(from)
	tx, ty := vp.cell(core.WrapVec(to, snap.Bounds.W, snap.Bounds.H))
	steps := max(absInt(tx-fx), absInt(ty-fy), 1) * 2

	for i := 1; i <= steps; i++ {
		p := from.Add(to.Sub(from).Mul(float64(i) / float64(steps)))
		x, y := vp.cell(core.WrapVec(p, snap.Bounds.W, snap.Bounds.H))
		if x == fx && y == fy {
			continue
		}
		dst.SetColored(x, y, TongueChar, core.ColorRed)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len([]rune(title)))/2
	dst.DrawTextColored(titleX, boxY+1, title, core.ColorBrightGreen)

	subtitleX := boxX + (boxW-len([]rune(subtitle)))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// formatElapsed renders a duration as m:ss.t.
func formatElapsed(d time.Duration) string {
	d = d.Round(100 * time.Millisecond)
	m := d / time.Minute
	s := (d - m*time.Minute).Seconds()
	return fmt.Sprintf("%d:%04.1f", int(m), s)
}
