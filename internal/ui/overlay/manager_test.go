package overlay

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"

	"eyeguard/internal/platform"
)

func testMonitors() []platform.MonitorRect {
	return []platform.MonitorRect{
		{X: 0, Y: 0, Width: 2560, Height: 1440, ScaleFactor: 1},
		{X: 2560, Y: 0, Width: 1920, Height: 1080, ScaleFactor: 1},
	}
}

func testContent() Content {
	return Content{
		Headline:  "Eye care time",
		Message:   "Look far away",
		Remaining: 20 * time.Second,
	}
}

func TestEnterRestCreatesOneOverlayPerMonitor(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	manager := New(app, Config{Opacity: 235})
	manager.EnterRest(testMonitors(), testContent())
	assert.Equal(t, 2, manager.ActiveOverlays())
}

func TestExitRestIsIdempotent(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	manager := New(app, Config{Opacity: 235})
	manager.EnterRest(testMonitors(), testContent())

	manager.ExitRest()
	assert.Equal(t, 0, manager.ActiveOverlays())

	// Second call with no overlays is a no-op.
	manager.ExitRest()
	assert.Equal(t, 0, manager.ActiveOverlays())
}

func TestEnterRestWithoutMonitorsUsesFallback(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	manager := New(app, Config{Opacity: 235})
	manager.EnterRest(nil, testContent())
	assert.Equal(t, 1, manager.ActiveOverlays())
}

func TestEnterRestRecreatesExistingOverlays(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	manager := New(app, Config{Opacity: 235})
	manager.EnterRest(testMonitors(), testContent())
	manager.EnterRest(testMonitors()[:1], testContent())
	assert.Equal(t, 1, manager.ActiveOverlays())
}

func TestUpdateCountdownRendersClampedTime(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	manager := New(app, Config{Opacity: 235})
	manager.EnterRest(testMonitors(), testContent())

	manager.UpdateCountdown(75 * time.Second)
	for _, entry := range manager.entries {
		assert.Equal(t, "01:15", entry.countdown.Text)
	}

	manager.UpdateCountdown(-time.Second)
	for _, entry := range manager.entries {
		assert.Equal(t, "00:00", entry.countdown.Text)
	}

	// No overlays: must not panic.
	manager.ExitRest()
	manager.UpdateCountdown(time.Second)
}

func TestSkipButtonForwardsHandler(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	skipped := 0
	manager := New(app, Config{Opacity: 235})
	manager.SetOnSkip(func() { skipped++ })
	manager.EnterRest(testMonitors()[:1], testContent())

	button := findButton(manager.entries[0].window.Content())
	if button == nil {
		t.Fatal("no button found in overlay content")
	}
	test.Tap(button)
	assert.Equal(t, 1, skipped)
}

func findButton(object fyne.CanvasObject) *widget.Button {
	switch value := object.(type) {
	case *widget.Button:
		return value
	case *fyne.Container:
		for _, child := range value.Objects {
			if button := findButton(child); button != nil {
				return button
			}
		}
	}
	return nil
}
