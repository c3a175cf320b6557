package ui

import (
	"testing"

	"github.com/automoto/dashrunner/track"
	"github.com/stretchr/testify/assert"
)

func TestLevelLabel(t *testing.T) {
	l, ok := track.Lookup(19)
	assert.True(t, ok)
	assert.Equal(t, "19  Deadlocked", LevelLabel(l))
}

func TestToggleLabel(t *testing.T) {
	assert.Equal(t, "Fullscreen: ON", ToggleLabel("Fullscreen", true))
	assert.Equal(t, "Catch-up clamp: OFF", ToggleLabel("Catch-up clamp", false))
}
