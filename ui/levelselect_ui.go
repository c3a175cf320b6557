package ui

import (
	"bytes"
	"fmt"
	"image/color"

	cfg "github.com/automoto/dashrunner/config"
	"github.com/automoto/dashrunner/logging"
	"github.com/automoto/dashrunner/track"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// LevelSelectUI lists the playable levels and the two persisted toggles.
type LevelSelectUI struct {
	UI *ebitenui.UI

	OnSelect     func(levelID int)
	OnFullscreen func(on bool)
	OnClamp      func(on bool)

	levels     []track.Level
	fullscreen bool
	clamp      bool

	fullscreenBtn *widget.Button
	clampBtn      *widget.Button
	statusLabel   *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewLevelSelectUI(levels []track.Level, fullscreen, clamp bool, onSelect func(levelID int), onFullscreen, onClamp func(on bool)) *LevelSelectUI {
	ui := &LevelSelectUI{
		levels:       levels,
		OnSelect:     onSelect,
		OnFullscreen: onFullscreen,
		OnClamp:      onClamp,
		fullscreen:   fullscreen,
		clamp:        clamp,
	}
	ui.loadFonts()
	ui.buildUI()
	return ui
}

func (ui *LevelSelectUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		logging.Logger.Fatal().Err(err).Msg("failed to load UI font")
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 36}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 20}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 14}
}

func (ui *LevelSelectUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text(cfg.Menu.Title, &ui.titleFace, &widget.LabelColor{
			Idle: cfg.Menu.TitleColor,
		}),
	)
	contentContainer.AddChild(titleLabel)

	for _, level := range ui.levels {
		contentContainer.AddChild(ui.levelButton(level))
	}

	contentContainer.AddChild(ui.buildToggles())

	ui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("SPACE / CLICK TO JUMP   ESC FOR MENU", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	)
	contentContainer.AddChild(ui.statusLabel)

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *LevelSelectUI) levelButton(level track.Level) *widget.Button {
	id := level.ID
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(320, 40)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(cfg.Menu.ButtonIdle),
			Hover:   image.NewNineSliceColor(cfg.Menu.ButtonHover),
			Pressed: image.NewNineSliceColor(cfg.Menu.ButtonPressed),
		}),
		widget.ButtonOpts.Text(LevelLabel(level), &ui.normalFace, &widget.ButtonTextColor{
			Idle:    cfg.White,
			Hover:   cfg.Menu.TextColorSelected,
			Pressed: cfg.Menu.TextColorNormal,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnSelect != nil {
				ui.OnSelect(id)
			}
		}),
	)
}

func (ui *LevelSelectUI) buildToggles() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	ui.fullscreenBtn = ui.toggleButton(ToggleLabel("Fullscreen", ui.fullscreen), func() {
		ui.fullscreen = !ui.fullscreen
		ui.fullscreenBtn.Text().Label = ToggleLabel("Fullscreen", ui.fullscreen)
		if ui.OnFullscreen != nil {
			ui.OnFullscreen(ui.fullscreen)
		}
	})
	container.AddChild(ui.fullscreenBtn)

	ui.clampBtn = ui.toggleButton(ToggleLabel("Catch-up clamp", ui.clamp), func() {
		ui.clamp = !ui.clamp
		ui.clampBtn.Text().Label = ToggleLabel("Catch-up clamp", ui.clamp)
		if ui.OnClamp != nil {
			ui.OnClamp(ui.clamp)
		}
	})
	container.AddChild(ui.clampBtn)

	return container
}

func (ui *LevelSelectUI) toggleButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(155, 28)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		}),
		widget.ButtonOpts.Text(label, &ui.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{200, 220, 255, 255},
			Pressed: color.RGBA{150, 170, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// LevelLabel is the button caption for a catalogue entry.
func LevelLabel(level track.Level) string {
	return fmt.Sprintf("%02d  %s", level.ID, level.Name)
}

// ToggleLabel renders a boolean setting as "<name>: ON|OFF".
func ToggleLabel(name string, on bool) string {
	if on {
		return name + ": ON"
	}
	return name + ": OFF"
}

func (ui *LevelSelectUI) SetStatus(msg string) {
	if ui.statusLabel != nil {
		ui.statusLabel.Label = msg
	}
}

func (ui *LevelSelectUI) Update() {
	ui.UI.Update()
}

func (ui *LevelSelectUI) Draw(screen *ebiten.Image) {
	ui.UI.Draw(screen)
}
