package main

import (
	"flag"
	"image"

	"github.com/automoto/dashrunner/config"
	"github.com/automoto/dashrunner/fonts"
	"github.com/automoto/dashrunner/logging"
	"github.com/automoto/dashrunner/scenes"
	"github.com/automoto/dashrunner/settings"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(prefs *settings.Saved) *Game {
	if err := fonts.LoadDefaults(config.HUD.FontSize, config.HUD.TitleFontSize); err != nil {
		logging.Logger.Fatal().Err(err).Msg("failed to load fonts")
	}

	g := &Game{
		bounds: image.Rectangle{},
	}

	g.scene = scenes.NewMenuScene(g, prefs)
	if config.Debug.SkipMenu {
		run, err := scenes.NewRunScene(g, prefs, config.Debug.Level)
		if err != nil {
			logging.Logger.Fatal().Err(err).Int("level", config.Debug.Level).Msg("failed to start level")
		}
		g.scene = run
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configDir := flag.String("config", ".", "Directory searched for dashrunner.json")
	level := flag.Int("level", -1, "Start this level directly, skipping the menu")
	flag.Parse()

	if err := config.Load(*configDir); err != nil {
		logging.Logger.Fatal().Err(err).Msg("invalid configuration")
	}
	logging.Setup(config.LogLevel(), nil)

	if *level >= 0 {
		config.Debug.SkipMenu = true
		config.Debug.Level = *level
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	prefs := &settings.Saved{}
	if err := settings.Init(); err != nil {
		logging.Logger.Warn().Err(err).Msg("settings will not be saved")
	}
	if saved, err := settings.Load(); err == nil && saved != nil {
		prefs = saved
		settings.Apply(prefs)
	}

	if err := ebiten.RunGame(NewGame(prefs)); err != nil {
		logging.Logger.Fatal().Err(err).Msg("game exited")
	}
}
