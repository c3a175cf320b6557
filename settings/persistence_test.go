package settings

import (
	"testing"

	cfg "github.com/automoto/dashrunner/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxFrameDelta(t *testing.T) {
	assert.Equal(t, cfg.Clock.ClampDelta, (&Saved{ClampCatchUp: true}).MaxFrameDelta())
	assert.Zero(t, (&Saved{}).MaxFrameDelta())
}

func TestLoadSave_WithoutStorageAreNoops(t *testing.T) {
	saved := gdataManager
	gdataManager = nil
	t.Cleanup(func() { gdataManager = saved })

	got, err := Load()
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, Save(&Saved{LastLevel: 2}))
}
