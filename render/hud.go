package render

import (
	cfg "github.com/automoto/dashrunner/config"
	"github.com/automoto/dashrunner/fonts"
	"github.com/automoto/dashrunner/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // freetype faces need text v1
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawHUD renders the attempt counter, mode label and progress bar.
func DrawHUD(screen *ebiten.Image, snap sim.Snapshot) {
	if !fonts.Loaded(fonts.HUD) {
		return
	}
	margin := cfg.HUD.Margin
	width := float64(screen.Bounds().Dx())

	face := fonts.Bold.Get()
	lineH := face.Metrics().Height.Ceil()
	text.Draw(screen, sim.AttemptLabel(snap.Attempts), face, int(margin), int(margin)+lineH, cfg.HUD.TextColor)
	text.Draw(screen, sim.ModeLabel(snap.Mode), fonts.HUD.Get(), int(margin), int(margin)+2*lineH, cfg.HUD.TextColor)

	// Progress bar, centred at the top
	barW := cfg.HUD.ProgressWidth
	barH := cfg.HUD.ProgressHeight
	barX := (width - barW) / 2
	barY := margin
	vector.DrawFilledRect(screen, float32(barX), float32(barY), float32(barW), float32(barH), cfg.HUD.ProgressBgColor, false)
	vector.DrawFilledRect(screen, float32(barX), float32(barY), float32(barW*snap.Progress), float32(barH), cfg.HUD.ProgressFgColor, false)

	small := fonts.Small.Get()
	pct := sim.ProgressLabel(snap.Progress)
	pctW := text.BoundString(small, pct).Dx()
	text.Draw(screen, pct, small, int(barX+barW/2)-pctW/2, int(barY+barH)+small.Metrics().Height.Ceil(), cfg.HUD.TextColor)

	if snap.Status == sim.StatusCompleted {
		title := fonts.Title.Get()
		msg := "LEVEL COMPLETE"
		msgW := text.BoundString(title, msg).Dx()
		text.Draw(screen, msg, title, int(width)/2-msgW/2, screen.Bounds().Dy()/3, cfg.HUD.TextColor)
	}
}
