package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/dashrunner/input"
	"github.com/automoto/dashrunner/logging"
	"github.com/automoto/dashrunner/settings"
	"github.com/automoto/dashrunner/track"
	"github.com/automoto/dashrunner/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the level select
type MenuScene struct {
	sceneChanger SceneChanger
	settings     *settings.Saved
	levels       []track.Level
	levelSelect  *ui.LevelSelectUI
	fadeIn       *gween.Tween
	fade         float32
	selected     int
	once         sync.Once
}

// NewMenuScene creates a new menu scene. prefs is shared with the run
// scene and saved whenever a toggle changes.
func NewMenuScene(sc SceneChanger, prefs *settings.Saved) *MenuScene {
	return &MenuScene{sceneChanger: sc, settings: prefs}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)

	ms.fade, _ = ms.fadeIn.Update(1 / float32(ebiten.TPS()))

	if input.IsJustPressed(input.ActionFullscreen) {
		ms.setFullscreen(!ebiten.IsFullscreen())
	}
	if input.IsJustPressed(input.ActionMenuUp) {
		ms.moveSelection(-1)
	}
	if input.IsJustPressed(input.ActionMenuDown) {
		ms.moveSelection(1)
	}
	if input.IsJustPressed(input.ActionMenuSelect) {
		ms.startLevel(ms.levels[ms.selected].ID)
		return
	}

	ms.levelSelect.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.levelSelect == nil {
		return
	}
	ms.levelSelect.Draw(screen)

	if ms.fade > 0 {
		a := uint8(ms.fade * 255)
		w, h := float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy())
		vector.DrawFilledRect(screen, 0, 0, w, h, color.RGBA{A: a}, false)
	}
}

func (ms *MenuScene) configure() {
	ms.levels = track.Levels()
	ms.levelSelect = ui.NewLevelSelectUI(
		ms.levels,
		ms.settings.Fullscreen,
		ms.settings.ClampCatchUp,
		ms.startLevel,
		ms.setFullscreen,
		ms.setClamp,
	)
	ms.fadeIn = gween.New(1, 0, 0.4, ease.OutQuad)
	ms.fade = 1

	for i, l := range ms.levels {
		if l.ID == ms.settings.LastLevel {
			ms.selected = i
		}
	}
	ms.showSelection()
}

func (ms *MenuScene) moveSelection(delta int) {
	n := len(ms.levels)
	ms.selected = (ms.selected + delta + n) % n
	ms.showSelection()
}

func (ms *MenuScene) showSelection() {
	ms.levelSelect.SetStatus("ENTER: " + ui.LevelLabel(ms.levels[ms.selected]))
}

func (ms *MenuScene) startLevel(levelID int) {
	run, err := NewRunScene(ms.sceneChanger, ms.settings, levelID)
	if err != nil {
		logging.Logger.Error().Err(err).Int("level", levelID).Msg("could not start level")
		ms.levelSelect.SetStatus("Level failed to load")
		return
	}

	ms.settings.LastLevel = levelID
	_ = settings.Save(ms.settings)
	ms.sceneChanger.ChangeScene(run)
}

func (ms *MenuScene) setFullscreen(on bool) {
	ms.settings.Fullscreen = on
	settings.Apply(ms.settings)
	_ = settings.Save(ms.settings)
}

func (ms *MenuScene) setClamp(on bool) {
	ms.settings.ClampCatchUp = on
	settings.Apply(ms.settings)
	_ = settings.Save(ms.settings)
}
