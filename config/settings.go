package config

// Resolution represents a display resolution option
type Resolution struct {
	Width  int
	Height int
	Label  string
}

// SettingsMenuConfig contains settings configuration shown on the level select
type SettingsMenuConfig struct {
	Resolutions            []Resolution
	DefaultResolutionIndex int
}

// SettingsMenu is the global settings menu configuration
var SettingsMenu SettingsMenuConfig

func init() {
	SettingsMenu = SettingsMenuConfig{
		Resolutions: []Resolution{
			{Width: 1280, Height: 640, Label: "1280 x 640"},
			{Width: 1600, Height: 800, Label: "1600 x 800"},
			{Width: 1920, Height: 960, Label: "1920 x 960"},
		},
		DefaultResolutionIndex: 0,
	}
}
