package mainwindow

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"eyeguard/internal/core/engine"
)

func TestRestTypeSelectForwardsChoice(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	var got []engine.RestType
	window := New(app, Callbacks{
		OnChangeRestType: func(restType engine.RestType) {
			got = append(got, restType)
		},
	})
	window.Show()

	window.restTypeSelect.SetSelected("Water reminder")
	window.restTypeSelect.SetSelected("Walk reminder")
	assert.Equal(t, []engine.RestType{engine.RestWater, engine.RestWalk}, got)
}

func TestRestTypeSelectIgnoresUnknownLabel(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	called := false
	window := New(app, Callbacks{
		OnChangeRestType: func(engine.RestType) { called = true },
	})

	// ClearSelected fires OnChanged with an empty label.
	window.restTypeSelect.SetSelected("Eye rest")
	called = false
	window.restTypeSelect.ClearSelected()
	assert.False(t, called)
}

func TestApplyRendersViewState(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	window := New(app, Callbacks{})
	window.Apply(ViewState{
		Status:         "Rest your eyes!",
		Countdown:      "00:15",
		Progress:       0.75,
		PauseLabel:     "Resume",
		SecondaryLabel: "Skip rest",
	})

	assert.Equal(t, "Rest your eyes!", window.status.Text)
	assert.Equal(t, "00:15", window.countdown.Text)
	assert.InDelta(t, 0.75, window.progress.Value, 0.001)
	assert.Equal(t, "Resume", window.pauseButton.Text)
	assert.Equal(t, "Skip rest", window.secondaryButton.Text)
}
