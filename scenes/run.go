package scenes

import (
	"image/color"
	"time"

	"github.com/automoto/dashrunner/components"
	cfg "github.com/automoto/dashrunner/config"
	"github.com/automoto/dashrunner/input"
	"github.com/automoto/dashrunner/logging"
	"github.com/automoto/dashrunner/render"
	"github.com/automoto/dashrunner/settings"
	"github.com/automoto/dashrunner/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// completeHold is how long the completion banner shows before the menu returns
const completeHold = 2 * time.Second

// RunScene hosts one run: it feeds host time and input to the simulation
// and renders its snapshot.
type RunScene struct {
	sceneChanger SceneChanger
	settings     *settings.Saved
	sim          *sim.Simulation

	last       time.Time
	paused     bool
	flash      *gween.Tween
	flashAlpha float32
	completeAt time.Time
}

// NewRunScene builds the level and starts a run on it.
func NewRunScene(sc SceneChanger, prefs *settings.Saved, levelID int) (*RunScene, error) {
	s, err := sim.New(levelID)
	if err != nil {
		return nil, err
	}
	return &RunScene{sceneChanger: sc, settings: prefs, sim: s}, nil
}

func (rs *RunScene) Update() {
	now := time.Now()
	if rs.last.IsZero() {
		rs.last = now
	}
	dt := now.Sub(rs.last)
	rs.last = now

	if input.IsJustPressed(input.ActionBack) {
		rs.sceneChanger.ChangeScene(NewMenuScene(rs.sceneChanger, rs.settings))
		return
	}
	if input.IsJustPressed(input.ActionFullscreen) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if input.IsJustPressed(input.ActionDebug) {
		cfg.Debug.Hitboxes = !cfg.Debug.Hitboxes
	}
	if input.IsJustPressed(input.ActionPause) {
		rs.paused = !rs.paused
	}
	// Time spent paused is dropped, so resuming never causes a catch-up burst
	if rs.paused {
		return
	}

	rs.sim.SetHold(input.IsPressed(input.ActionHold))
	rs.sim.Advance(dt)

	for _, ev := range rs.sim.DrainEvents() {
		rs.handleEvent(ev, now)
	}

	if rs.flash != nil {
		var done bool
		rs.flashAlpha, done = rs.flash.Update(float32(dt.Seconds()))
		if done {
			rs.flash = nil
			rs.flashAlpha = 0
		}
	}

	if !rs.completeAt.IsZero() && now.Sub(rs.completeAt) >= completeHold {
		rs.sceneChanger.ChangeScene(NewMenuScene(rs.sceneChanger, rs.settings))
	}
}

func (rs *RunScene) handleEvent(ev components.Event, now time.Time) {
	switch ev.Kind {
	case components.EventCrashed:
		// Flash fades out over the crash hold
		rs.flash = gween.New(1, 0, float32(cfg.Crash.Hold.Seconds()), ease.OutQuad)
		rs.flashAlpha = 1
	case components.EventCompleted:
		rs.completeAt = now
		logging.Logger.Info().Int("attempts", ev.Attempt).Msg("returning to menu")
	}
}

func (rs *RunScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if rs.sim == nil {
		return
	}
	snap := rs.sim.Snapshot()
	render.Frame(screen, snap, float64(rs.flashAlpha))
	if cfg.Debug.Hitboxes {
		hit, nearby := rs.sim.Colliders()
		render.DrawHitboxes(screen, snap, hit, nearby)
	}
	if rs.paused {
		render.DrawPaused(screen)
	}
}
