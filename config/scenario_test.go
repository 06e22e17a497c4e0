package config_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/floodflow/config"
)

func TestParseAreas(t *testing.T) {
	got, err := config.ParseAreas("0,0,2, 1,0,1,1,0,0,2,0,1")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 2, 1, 0, 1, 1, 0, 0, 2, 0, 1}, got)
	assert.Equal(t, "0,0,2,1,0,1,1,0,0,2,0,1", config.FormatAreas(got))

	_, err = config.ParseAreas("")
	assert.ErrorIs(t, err, config.ErrBadAreas)

	_, err = config.ParseAreas("0,x,1")
	assert.ErrorIs(t, err, config.ErrBadAreas)
}

func TestLoadScenario(t *testing.T) {
	path := writeFile(t, "scenario.yaml", `
areas: [0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0]
flooding: 2
`)
	s, err := config.LoadScenario(path)
	require.NoError(t, err)
	assert.Len(t, s.Areas, 12)
	assert.Equal(t, 1, s.Areas[5])
	assert.Equal(t, 2, s.Flooding)

	_, err = config.LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)

	_, err = config.ParseScenario([]byte("areas: {"))
	assert.Error(t, err)
}
