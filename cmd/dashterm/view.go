package main

import (
	"fmt"
	"math"

	"github.com/automoto/dashrunner/config"
	"github.com/automoto/dashrunner/sim"
	"github.com/automoto/dashrunner/track"
	"github.com/gdamore/tcell/v2"
)

// hudRows are reserved above the playfield
const hudRows = 2

// viewport maps playfield pixels onto terminal cells.
type viewport struct {
	cols, rows     int
	scaleX, scaleY float64 // pixels per cell
}

func newViewport(cols, rows int) viewport {
	field := max(rows-hudRows-1, 1)
	return viewport{
		cols:   cols,
		rows:   rows,
		scaleX: float64(config.C.Width) / float64(max(cols, 1)),
		scaleY: (config.Physics.FloorY - config.Physics.CeilingY) / float64(field),
	}
}

// cell converts a screen-space pixel to a terminal cell.
func (v viewport) cell(x, y float64) (int, int) {
	col := int(math.Floor(x / v.scaleX))
	row := hudRows + int(math.Floor((y-config.Physics.CeilingY)/v.scaleY))
	return col, row
}

// floorRow is the first row below the playfield.
func (v viewport) floorRow() int {
	_, row := v.cell(0, config.Physics.FloorY)
	return row
}

func glyph(k track.Kind) rune {
	switch k {
	case track.KindHazard:
		return '▲'
	case track.KindPlatform:
		return '█'
	case track.KindPortal:
		return '┃'
	}
	return '?'
}

func modeColor(m config.ModeID) tcell.Color {
	switch m {
	case config.ModeShip:
		return tcell.ColorFuchsia
	case config.ModeWave:
		return tcell.ColorYellow
	}
	return tcell.ColorAqua
}

func hudLine(snap sim.Snapshot) string {
	return fmt.Sprintf("%s  %s  %s  %s",
		snap.LevelName,
		sim.AttemptLabel(snap.Attempts),
		sim.ModeLabel(snap.Mode),
		sim.ProgressLabel(snap.Progress))
}

func (g *Game) draw() {
	snap := g.sim.Snapshot()
	cols, rows := g.screen.Size()
	v := newViewport(cols, rows)

	bg := tcell.NewRGBColor(int32(snap.Background.R), int32(snap.Background.G), int32(snap.Background.B))
	if snap.Status == sim.StatusCrashing {
		bg = tcell.ColorWhite
	}
	base := tcell.StyleDefault.Background(bg).Foreground(tcell.ColorWhite)

	g.screen.Clear()
	g.screen.Fill(' ', base)

	drawText(g.screen, 0, 0, hudLine(snap), base.Bold(true))
	if snap.Status == sim.StatusCompleted {
		drawText(g.screen, 0, 1, "LEVEL COMPLETE", base)
	}

	width := float64(config.C.Width)
	snap.Track.Visible(snap.Scroll, snap.Scroll+width, func(o track.Obstacle) {
		style := base
		if o.Kind == track.KindPortal {
			style = style.Foreground(modeColor(o.Mode))
		}
		x0, y0 := v.cell(o.X-snap.Scroll, o.Y)
		x1, y1 := v.cell(o.Right()-snap.Scroll-1, o.Bottom()-1)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				g.screen.SetContent(x, y, glyph(o.Kind), nil, style)
			}
		}
	})

	floor := v.floorRow()
	for x := 0; x < cols; x++ {
		g.screen.SetContent(x, floor, '▀', nil, base)
	}

	if snap.RunnerVisible() {
		rx, ry := v.cell(snap.ScreenX+snap.W/2, snap.Y+snap.H/2)
		g.screen.SetContent(rx, ry, '■', nil, base.Foreground(modeColor(snap.Mode)))
	}

	g.screen.Show()
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
