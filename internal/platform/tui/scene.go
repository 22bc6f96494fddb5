package tui

import (
	"fmt"

	"github.com/mzhdanov/dashline/internal/core"
	"github.com/mzhdanov/dashline/internal/sim"
)

// Surface is the drawing capability set the painter needs. core.Screen
// implements it; tests may substitute their own recorder.
type Surface interface {
	Width() int
	Height() int
	Clear()
	SetCell(x, y int, r rune, c core.Color)
	FillRect(r core.Rect, fill rune, c core.Color)
	DrawText(x, y int, text string, c core.Color)
	DrawTextCentered(y int, text string, c core.Color)
	DrawHLine(x, y, length int, r rune, c core.Color)
	DrawBox(r core.Rect, c core.Color)
}

// Glyphs for scene elements.
const (
	GroundChar   rune = '═'
	BlockChar    rune = '▓'
	BarChar      rune = '▄'
	PlayerChar   rune = '█'
	DeadChar     rune = '✗'
	PitFloorChar rune = ' '
)

// HUD and overlay rows.
const hudRow = 0

// Painter projects frame output from world units onto a cell surface.
type Painter struct {
	worldW  float64
	worldH  float64
	groundY float64
}

// NewPainter creates a painter for the given world dimensions.
func NewPainter(worldW, worldH, groundY float64) *Painter {
	return &Painter{worldW: worldW, worldH: worldH, groundY: groundY}
}

// cellRect converts a world-space box to screen cells. Boxes always occupy
// at least one cell so thin obstacles stay visible on small terminals.
func (p *Painter) cellRect(b core.AABB, w, h int) core.Rect {
	sx := float64(w) / p.worldW
	sy := float64(h) / p.worldH

	x := int(b.X * sx)
	y := int(b.Y * sy)
	cw := core.Max(1, int(b.W*sx+0.5))
	ch := core.Max(1, int(b.H*sy+0.5))
	return core.NewRect(x, y, cw, ch)
}

// Paint draws one frame onto the surface. best is the stored best score for
// the HUD; pass a negative value to hide it.
func (p *Painter) Paint(frame sim.FrameOutput, dst Surface, best int) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()

	groundRow := int(p.groundY / p.worldH * float64(h))

	// Ground line first; gap obstacles carve their span out of it below.
	dst.DrawHLine(0, groundRow, w, GroundChar, core.ColorGray)

	for _, o := range frame.Obstacles {
		p.paintObstacle(o, dst, groundRow)
	}

	p.paintPlayer(frame.Player, dst)
	p.paintHUD(frame, dst, best)

	switch frame.Phase {
	case sim.PhaseMenu:
		p.paintOverlay(dst, "DASHLINE", "Press Enter to run")
	case sim.PhaseGameOver:
		sub := fmt.Sprintf("Score %d  |  R to restart, Q to quit", frame.Score)
		if best >= 0 && frame.Score >= best {
			sub = fmt.Sprintf("New best %d!  |  R to restart, Q to quit", frame.Score)
		}
		p.paintOverlay(dst, "GAME OVER", sub)
	}
}

func (p *Painter) paintObstacle(o sim.ObstacleView, dst Surface, groundRow int) {
	w, h := dst.Width(), dst.Height()
	r := p.cellRect(o.Bounds, w, h)

	switch o.Type {
	case sim.TypeHigh:
		dst.FillRect(r, BlockChar, core.ColorBrightRed)
	case sim.TypeLow:
		dst.FillRect(r, BarChar, core.ColorBrightYellow)
	case sim.TypeGap:
		// Erase the ground span; the void is the hazard.
		dst.DrawHLine(r.X, groundRow, r.W, PitFloorChar, core.ColorDefault)
		for row := groundRow + 1; row < h; row++ {
			dst.DrawHLine(r.X, row, r.W, PitFloorChar, core.ColorDefault)
		}
	}
}

func (p *Painter) paintPlayer(pv sim.PlayerView, dst Surface) {
	r := p.cellRect(pv.Bounds, dst.Width(), dst.Height())

	glyph := PlayerChar
	color := core.ColorBrightGreen
	if pv.State == sim.StateDead {
		glyph = DeadChar
		color = core.ColorBrightRed
	}
	dst.FillRect(r, glyph, color)
}

func (p *Painter) paintHUD(frame sim.FrameOutput, dst Surface, best int) {
	left := fmt.Sprintf(" Score: %d  Time: %.1fs ", frame.Score, frame.Elapsed)
	dst.DrawText(2, hudRow, left, core.ColorWhite)

	speed := sim.SpeedMultiplier(frame.Elapsed)
	right := fmt.Sprintf(" Spd: %.2fx ", speed)
	if best >= 0 {
		right = fmt.Sprintf(" Best: %d  Spd: %.2fx ", best, speed)
	}
	dst.DrawText(dst.Width()-len(right)-2, hudRow, right, core.ColorWhite)
}

// paintOverlay draws a centered message box.
func (p *Painter) paintOverlay(dst Surface, title, subtitle string) {
	w, h := dst.Width(), dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, core.ColorGray)
}
