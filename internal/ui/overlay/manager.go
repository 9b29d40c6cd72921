package overlay

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"eyeguard/internal/platform"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Config defines overlay visuals.
type Config struct {
	Opacity uint8
}

// Content is the text shown during one rest phase.
type Content struct {
	Headline  string
	Message   string
	Remaining time.Duration
}

type overlayEntry struct {
	window    fyne.Window
	countdown *canvas.Text
	monitor   platform.MonitorRect
}

// Manager owns the set of per-monitor rest overlays. The set is created
// fresh at the start of each rest phase and destroyed in full at its
// end; overlays are never reused across cycles so stale monitor
// geometry cannot survive a dock/undock. All methods must be called
// from the UI goroutine.
type Manager struct {
	app     fyne.App
	config  Config
	entries []*overlayEntry
	onSkip  func()
}

type splashWindowDriver interface {
	CreateSplashWindow() fyne.Window
}

// New creates an overlay manager.
func New(app fyne.App, config Config) *Manager {
	return &Manager{app: app, config: config}
}

// SetOnSkip sets the handler invoked by the overlay skip buttons.
func (manager *Manager) SetOnSkip(handler func()) {
	manager.onSkip = handler
}

// EnterRest creates one full-screen blocking window per monitor. A
// monitor whose window cannot be placed is left uncovered; partial
// coverage is preferred to aborting the rest cycle. An empty monitor
// list still produces exactly one overlay on the fallback rectangle.
// Any overlays from a previous cycle are torn down first.
func (manager *Manager) EnterRest(monitors []platform.MonitorRect, content Content) {
	manager.ExitRest()

	if len(monitors) == 0 {
		monitors = []platform.MonitorRect{platform.FallbackMonitor()}
	}

	for index, monitor := range monitors {
		entry := manager.buildOverlay(monitor, content)
		manager.entries = append(manager.entries, entry)

		entry.window.Show()
		if err := placeWindow(entry.window, monitor, manager.config.Opacity); err != nil {
			log.Printf("overlay: place window on monitor %d: %v", index, err)
			entry.window.SetFullScreen(true)
		}
	}
}

// UpdateCountdown re-renders the countdown text on every owned overlay.
// A no-op when no overlays exist.
func (manager *Manager) UpdateCountdown(remaining time.Duration) {
	for _, entry := range manager.entries {
		entry.countdown.Text = formatDuration(remaining)
		entry.countdown.Refresh()
	}
}

// ExitRest destroys every owned overlay window. Idempotent.
func (manager *Manager) ExitRest() {
	for _, entry := range manager.entries {
		entry.window.Close()
	}
	manager.entries = nil
}

// ActiveOverlays reports the number of overlay windows currently owned.
func (manager *Manager) ActiveOverlays() int {
	return len(manager.entries)
}

func (manager *Manager) buildOverlay(monitor platform.MonitorRect, content Content) *overlayEntry {
	window := manager.newWindow()
	window.SetPadded(false)

	background := canvas.NewRectangle(color.NRGBA{R: 10, G: 14, B: 18, A: 255})

	headline := canvas.NewText(content.Headline, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	headline.Alignment = fyne.TextAlignCenter
	headline.TextStyle = fyne.TextStyle{Bold: true}
	headline.TextSize = 30

	message := widget.NewLabel(content.Message)
	message.Alignment = fyne.TextAlignCenter
	message.Wrapping = fyne.TextWrapWord

	countdown := canvas.NewText(formatDuration(content.Remaining), color.NRGBA{R: 232, G: 190, B: 66, A: 255})
	countdown.Alignment = fyne.TextAlignCenter
	countdown.TextStyle = fyne.TextStyle{Bold: true}
	countdown.TextSize = 44

	skipButton := widget.NewButton("Skip rest", func() {
		if manager.onSkip != nil {
			manager.onSkip()
		}
	})

	body := container.NewVBox(headline, message, countdown, container.NewCenter(skipButton))
	window.SetContent(container.NewMax(background, container.NewCenter(body)))

	return &overlayEntry{window: window, countdown: countdown, monitor: monitor}
}

func (manager *Manager) newWindow() fyne.Window {
	// Splash windows are undecorated (no native frame/buttons).
	if driver, ok := manager.app.Driver().(splashWindowDriver); ok {
		return driver.CreateSplashWindow()
	}
	return manager.app.NewWindow("EyeGuard")
}

func formatDuration(value time.Duration) string {
	if value < 0 {
		value = 0
	}
	seconds := int(value.Seconds())
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
