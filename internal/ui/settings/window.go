package settings

import (
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Form carries the editable values. Settings are in-memory only; they
// are not persisted across runs.
type Form struct {
	WorkMinutes   int
	RestSeconds   int
	WaterInterval int
	WalkInterval  int
	IdleEnabled   bool
	Autostart     bool
}

// Window handles the settings UI.
type Window struct {
	window     fyne.Window
	form       Form
	onApply    func(Form) error
	workMin    *widget.Entry
	restSec    *widget.Entry
	waterInt   *widget.Entry
	walkInt    *widget.Entry
	idleCheck  *widget.Check
	autoCheck  *widget.Check
	errorLabel *canvas.Text
}

// New creates a settings window. onApply validates and applies the
// form; a returned error is shown inline and the window stays open with
// the prior values still in effect.
func New(app fyne.App, form Form, onApply func(Form) error) *Window {
	window := app.NewWindow("EyeGuard Settings")

	workMin := widget.NewEntry()
	restSec := widget.NewEntry()
	waterInt := widget.NewEntry()
	walkInt := widget.NewEntry()

	idleCheck := widget.NewCheck("Restart work timer when idle", nil)
	autoCheck := widget.NewCheck("Launch at login", nil)

	errorLabel := canvas.NewText("", color.NRGBA{R: 220, G: 80, B: 80, A: 255})
	errorLabel.TextSize = 12

	content := container.NewVBox(
		widget.NewLabelWithStyle("Timer", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Work duration"), workMin, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Rest duration"), restSec, widget.NewLabel("sec")),
		widget.NewLabelWithStyle("Reminders", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Water reminder every"), waterInt, widget.NewLabel("rests")),
		container.NewHBox(widget.NewLabel("Walk reminder every"), walkInt, widget.NewLabel("rests")),
		idleCheck,
		autoCheck,
		errorLabel,
	)

	saveButton := widget.NewButton("Apply", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)
	window.SetContent(container.NewBorder(nil, buttons, nil, nil, content))
	window.Resize(fyne.NewSize(380, 360))

	settingsWindow := &Window{
		window:     window,
		form:       form,
		onApply:    onApply,
		workMin:    workMin,
		restSec:    restSec,
		waterInt:   waterInt,
		walkInt:    walkInt,
		idleCheck:  idleCheck,
		autoCheck:  autoCheck,
		errorLabel: errorLabel,
	}
	settingsWindow.applyForm(form)

	saveButton.OnTapped = settingsWindow.handleApply
	cancelButton.OnTapped = func() {
		settingsWindow.applyForm(settingsWindow.form)
		settingsWindow.setError("")
		window.Hide()
	}
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	return settingsWindow
}

// Show displays the settings window.
func (settingsWindow *Window) Show() {
	settingsWindow.window.Show()
	settingsWindow.window.RequestFocus()
}

func (settingsWindow *Window) applyForm(form Form) {
	settingsWindow.workMin.SetText(strconv.Itoa(form.WorkMinutes))
	settingsWindow.restSec.SetText(strconv.Itoa(form.RestSeconds))
	settingsWindow.waterInt.SetText(strconv.Itoa(form.WaterInterval))
	settingsWindow.walkInt.SetText(strconv.Itoa(form.WalkInterval))
	settingsWindow.idleCheck.SetChecked(form.IdleEnabled)
	settingsWindow.autoCheck.SetChecked(form.Autostart)
}

func (settingsWindow *Window) handleApply() {
	form := settingsWindow.form

	workMinutes, okWork := parsePositiveInt(settingsWindow.workMin.Text)
	restSeconds, okRest := parsePositiveInt(settingsWindow.restSec.Text)
	waterInterval, okWater := parsePositiveInt(settingsWindow.waterInt.Text)
	walkInterval, okWalk := parsePositiveInt(settingsWindow.walkInt.Text)
	if !okWork || !okRest || !okWater || !okWalk {
		settingsWindow.setError("All values must be positive whole numbers.")
		return
	}

	form.WorkMinutes = workMinutes
	form.RestSeconds = restSeconds
	form.WaterInterval = waterInterval
	form.WalkInterval = walkInterval
	form.IdleEnabled = settingsWindow.idleCheck.Checked
	form.Autostart = settingsWindow.autoCheck.Checked

	if settingsWindow.onApply != nil {
		if err := settingsWindow.onApply(form); err != nil {
			settingsWindow.setError(err.Error())
			return
		}
	}

	settingsWindow.form = form
	settingsWindow.setError("")
	settingsWindow.window.Hide()
}

func (settingsWindow *Window) setError(message string) {
	settingsWindow.errorLabel.Text = message
	settingsWindow.errorLabel.Refresh()
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
