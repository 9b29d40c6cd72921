package mainwindow

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"eyeguard/internal/core/engine"
)

// Callbacks defines main window action handlers. Actions are forwarded
// verbatim; the window keeps no timer state of its own.
type Callbacks struct {
	OnTogglePause    func()
	OnSecondary      func()
	OnSettings       func()
	OnChangeRestType func(engine.RestType)
	OnHide           func()
}

var restTypeLabels = map[string]engine.RestType{
	"Eye rest":       engine.RestEye,
	"Water reminder": engine.RestWater,
	"Walk reminder":  engine.RestWalk,
}

// Window is the primary always-on-top control surface.
type Window struct {
	window          fyne.Window
	status          *canvas.Text
	countdown       *canvas.Text
	progress        *widget.ProgressBar
	pauseButton     *widget.Button
	secondaryButton *widget.Button
	restTypeSelect  *widget.Select
	callbacks       Callbacks
}

// New creates the main control window.
func New(app fyne.App, callbacks Callbacks) *Window {
	window := app.NewWindow("EyeGuard")
	window.SetFixedSize(true)

	status := canvas.NewText("Focus Time", color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	status.Alignment = fyne.TextAlignCenter
	status.TextStyle = fyne.TextStyle{Bold: true}
	status.TextSize = 16

	countdown := canvas.NewText("20:00", color.NRGBA{R: 232, G: 190, B: 66, A: 255})
	countdown.Alignment = fyne.TextAlignCenter
	countdown.TextStyle = fyne.TextStyle{Bold: true}
	countdown.TextSize = 40

	progress := widget.NewProgressBar()
	progress.TextFormatter = func() string { return "" }
	progress.SetValue(1)

	pauseButton := widget.NewButton("Pause", func() {
		if callbacks.OnTogglePause != nil {
			callbacks.OnTogglePause()
		}
	})
	secondaryButton := widget.NewButton("Reset", func() {
		if callbacks.OnSecondary != nil {
			callbacks.OnSecondary()
		}
	})
	settingsButton := widget.NewButton("Settings", func() {
		if callbacks.OnSettings != nil {
			callbacks.OnSettings()
		}
	})

	restTypeSelect := widget.NewSelect(
		[]string{"Eye rest", "Water reminder", "Walk reminder"},
		func(selected string) {
			restType, ok := restTypeLabels[selected]
			if !ok {
				return
			}
			if callbacks.OnChangeRestType != nil {
				callbacks.OnChangeRestType(restType)
			}
		},
	)
	restTypeSelect.PlaceHolder = "Next rest..."

	buttons := container.NewGridWithColumns(3, pauseButton, secondaryButton, settingsButton)
	content := container.NewVBox(status, countdown, progress, buttons, restTypeSelect)
	window.SetContent(content)
	window.Resize(fyne.NewSize(280, 200))

	mainWindow := &Window{
		window:          window,
		status:          status,
		countdown:       countdown,
		progress:        progress,
		pauseButton:     pauseButton,
		secondaryButton: secondaryButton,
		restTypeSelect:  restTypeSelect,
		callbacks:       callbacks,
	}

	// Closing hides to the tray instead of quitting.
	window.SetCloseIntercept(func() {
		window.Hide()
		if callbacks.OnHide != nil {
			callbacks.OnHide()
		}
	})

	return mainWindow
}

// Apply renders a view state onto the widgets.
func (mainWindow *Window) Apply(view ViewState) {
	mainWindow.status.Text = view.Status
	mainWindow.status.Refresh()
	mainWindow.countdown.Text = view.Countdown
	mainWindow.countdown.Refresh()
	mainWindow.progress.SetValue(view.Progress)
	mainWindow.pauseButton.SetText(view.PauseLabel)
	mainWindow.secondaryButton.SetText(view.SecondaryLabel)
}

// Show displays the window and keeps it above normal windows where the
// platform allows it.
func (mainWindow *Window) Show() {
	mainWindow.window.Show()
	mainWindow.window.RequestFocus()
	if err := pinTopmost(mainWindow.window); err != nil {
		log.Printf("main window: pin topmost: %v", err)
	}
}

// Hide conceals the window without destroying it.
func (mainWindow *Window) Hide() {
	mainWindow.window.Hide()
}
