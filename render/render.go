// Package render draws a sim.Snapshot with ebitengine. It never mutates the run.
package render

import (
	"image"
	"image/color"
	"math"

	cfg "github.com/automoto/dashrunner/config"
	"github.com/automoto/dashrunner/sim"
	"github.com/automoto/dashrunner/track"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteSubImage *ebiten.Image

	runnerImage  *ebiten.Image
	runnerDrawOp = &ebiten.DrawImageOptions{}
	spikeVerts   = make([]ebiten.Vertex, 3)
	spikeIndices = []uint16{0, 1, 2}
)

// fillSource returns a 1x1 white source for solid DrawTriangles fills.
func fillSource() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// Frame draws a complete frame: background, course, floor, runner and HUD.
// flash is the crash overlay opacity in [0, 1].
func Frame(screen *ebiten.Image, snap sim.Snapshot, flash float64) {
	DrawBackground(screen, snap)
	DrawTrack(screen, snap)
	DrawFloor(screen)
	DrawRunner(screen, snap)
	DrawHUD(screen, snap)
	DrawFlash(screen, flash)
}

func DrawBackground(screen *ebiten.Image, snap sim.Snapshot) {
	screen.Fill(snap.Background)
}

// DrawFloor draws the solid ground below the floor line.
func DrawFloor(screen *ebiten.Image) {
	w := float32(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())
	floor := float32(cfg.Physics.FloorY)

	vector.DrawFilledRect(screen, 0, floor, w, h-floor, cfg.HUD.FloorColor, false)
	vector.StrokeLine(screen, 0, floor, w, floor, 2, cfg.HUD.FloorLineColor, false)
}

// DrawTrack draws every obstacle inside the visible window.
func DrawTrack(screen *ebiten.Image, snap sim.Snapshot) {
	if snap.Track == nil {
		return
	}
	width := float64(screen.Bounds().Dx())

	snap.Track.Visible(snap.Scroll, snap.Scroll+width, func(o track.Obstacle) {
		x := float32(o.X - snap.Scroll)
		y, w, h := float32(o.Y), float32(o.W), float32(o.H)

		switch o.Kind {
		case track.KindPlatform:
			vector.DrawFilledRect(screen, x, y, w, h, cfg.HUD.BlockColor, false)
			vector.StrokeRect(screen, x, y, w, h, 2, cfg.HUD.OutlineColor, false)
		case track.KindHazard:
			drawSpike(screen, x, y, w, h)
		case track.KindPortal:
			vector.DrawFilledRect(screen, x, y, w, h, cfg.HUD.PortalColor, false)
		}
	})
}

// drawSpike fills an upward triangle spanning the obstacle box.
func drawSpike(screen *ebiten.Image, x, y, w, h float32) {
	r, g, b, a := colorToFloats(cfg.HUD.SpikeColor)
	points := [3][2]float32{
		{x, y + h},
		{x + w/2, y},
		{x + w, y + h},
	}
	for i, p := range points {
		spikeVerts[i] = ebiten.Vertex{
			DstX: p[0], DstY: p[1],
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		}
	}
	screen.DrawTriangles(spikeVerts, spikeIndices, fillSource(), &ebiten.DrawTrianglesOptions{})
}

// DrawRunner draws the runner rotated about its centre, unless it crashed.
func DrawRunner(screen *ebiten.Image, snap sim.Snapshot) {
	if !snap.RunnerVisible() {
		return
	}
	w, h := int(math.Ceil(snap.W)), int(math.Ceil(snap.H))
	if w <= 0 || h <= 0 {
		return
	}
	if runnerImage == nil || runnerImage.Bounds().Dx() != w || runnerImage.Bounds().Dy() != h {
		runnerImage = newRunnerImage(w, h)
	}

	runnerDrawOp.GeoM.Reset()
	runnerDrawOp.GeoM.Translate(-snap.W/2, -snap.H/2)
	runnerDrawOp.GeoM.Rotate(snap.Rotation * math.Pi / 180)
	runnerDrawOp.GeoM.Translate(snap.ScreenX+snap.W/2, snap.Y+snap.H/2)
	screen.DrawImage(runnerImage, runnerDrawOp)
}

func newRunnerImage(w, h int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	img.Fill(cfg.HUD.RunnerColor)
	vector.StrokeRect(img, 1, 1, float32(w-2), float32(h-2), 2, cfg.HUD.OutlineColor, false)
	return img
}

// DrawFlash covers the screen with the crash flash at the given opacity.
func DrawFlash(screen *ebiten.Image, alpha float64) {
	if alpha <= 0 {
		return
	}
	w := float32(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())
	vector.DrawFilledRect(screen, 0, 0, w, h, fade(cfg.HUD.FlashColor, alpha), false)
}

func colorToFloats(c color.RGBA) (r, g, b, a float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255
}

// fade scales a premultiplied colour by alpha, clamped to [0, 1].
func fade(c color.RGBA, alpha float64) color.RGBA {
	f := min(max(alpha, 0), 1)
	return color.RGBA{
		R: uint8(math.Round(float64(c.R) * f)),
		G: uint8(math.Round(float64(c.G) * f)),
		B: uint8(math.Round(float64(c.B) * f)),
		A: uint8(math.Round(float64(c.A) * f)),
	}
}
