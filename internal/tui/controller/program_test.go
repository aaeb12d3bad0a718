package controller

import (
	"testing"

	"wordle/internal/tui/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProgram(t *testing.T) {
	t.Run("valid configuration", func(t *testing.T) {
		p, err := NewProgram(model.TUIConfig{Source: staticSource{body: "apple\n"}})
		require.NoError(t, err)
		assert.NotNil(t, p)
	})

	t.Run("missing source", func(t *testing.T) {
		p, err := NewProgram(model.TUIConfig{})
		assert.Error(t, err)
		assert.Nil(t, p)
	})
}

func TestAppModel(t *testing.T) {
	m, err := model.InitializeModel(model.TUIConfig{Source: staticSource{body: "apple\n"}})
	require.NoError(t, err)
	app := NewAppModel(m)

	assert.NotNil(t, app.Init())
	assert.Contains(t, app.View(), "WORDLE")

	updated, _ := app.Update(model.WordsLoadedMsg{Source: "static", Words: []string{"apple"}})
	assert.Equal(t, model.ModePlaying, updated.(AppModel).model.CurrentAppMode)
}
