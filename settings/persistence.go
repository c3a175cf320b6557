// Package settings persists window and clock choices between sessions.
package settings

import (
	"encoding/json"
	"time"

	cfg "github.com/automoto/dashrunner/config"
	"github.com/automoto/dashrunner/logging"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// Saved represents the settings data stored on disk
type Saved struct {
	Fullscreen      bool `json:"fullscreen"`
	ResolutionIndex int  `json:"resolutionIndex"`
	ClampCatchUp    bool `json:"clampCatchUp"`
	LastLevel       int  `json:"lastLevel"`
}

const settingsKey = "settings"

var gdataManager *gdata.Manager

// Init initializes the gdata manager for settings storage
func Init() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "dashrunner",
	})
	if err != nil {
		logging.Logger.Warn().Err(err).Msg("could not initialize persistence")
		return err
	}
	gdataManager = m
	return nil
}

// Load loads settings from disk. It returns nil when nothing has been saved.
func Load() (*Saved, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		logging.Logger.Warn().Err(err).Msg("could not load settings")
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings Saved
	if err := json.Unmarshal(data, &settings); err != nil {
		logging.Logger.Warn().Err(err).Msg("could not parse saved settings")
		return nil, err
	}
	return &settings, nil
}

// Save saves settings to disk
func Save(s *Saved) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		logging.Logger.Warn().Err(err).Msg("could not serialize settings")
		return err
	}

	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		logging.Logger.Warn().Err(err).Msg("could not save settings")
		return err
	}
	return nil
}

// Apply applies the window settings and the catch-up clamp.
// A saved clamp choice overrides clock.maxFrameDelta from the config file.
func Apply(saved *Saved) {
	if saved == nil {
		return
	}

	ebiten.SetFullscreen(saved.Fullscreen)

	// Resolution only matters when windowed
	if !saved.Fullscreen && saved.ResolutionIndex >= 0 && saved.ResolutionIndex < len(cfg.SettingsMenu.Resolutions) {
		res := cfg.SettingsMenu.Resolutions[saved.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}

	cfg.Clock.MaxFrameDelta = saved.MaxFrameDelta()
}

// MaxFrameDelta is the clock cap implied by the catch-up clamp choice.
func (s *Saved) MaxFrameDelta() time.Duration {
	if s.ClampCatchUp {
		return cfg.Clock.ClampDelta
	}
	return 0
}
