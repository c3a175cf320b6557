package render

import (
	"image/color"

	cfg "github.com/automoto/dashrunner/config"
	"github.com/automoto/dashrunner/fonts"
	"github.com/automoto/dashrunner/sim"
	"github.com/automoto/dashrunner/systems"
	"github.com/automoto/dashrunner/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // freetype faces need text v1
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
)

// DrawHitboxes outlines the runner's hitbox and the obstacles sharing its
// collision cells. Obstacles it overlaps are drawn thicker.
func DrawHitboxes(screen *ebiten.Image, snap sim.Snapshot, hit *resolv.Object, nearby []*resolv.Object) {
	if !cfg.Debug.Hitboxes || hit == nil {
		return
	}

	strokeBox(screen, hit.X-snap.Scroll, hit.Y, hit.W, hit.H, 1, cfg.HUD.HitboxColor)

	for _, o := range nearby {
		clr := cfg.HUD.OutlineColor
		if o.HasTags(tags.ResolvHazard) {
			clr = cfg.HUD.HitboxColor
		}
		width := float32(1)
		if systems.Overlaps(hit, o) {
			width = 3
		}
		strokeBox(screen, o.X-snap.Scroll, o.Y, o.W, o.H, width, clr)
	}
}

func strokeBox(screen *ebiten.Image, x, y, w, h float64, width float32, clr color.Color) {
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), width, clr, false)
}

// DrawPaused dims the frame and shows the pause banner.
func DrawPaused(screen *ebiten.Image) {
	w := float32(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())
	vector.DrawFilledRect(screen, 0, 0, w, h, cfg.HUD.PauseColor, false)

	if !fonts.Loaded(fonts.HUD) {
		return
	}
	title := fonts.Title.Get()
	msg := "PAUSED"
	msgW := text.BoundString(title, msg).Dx()
	text.Draw(screen, msg, title, int(w)/2-msgW/2, int(h)/2, cfg.HUD.TextColor)
}
