package tray

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"eyeguard/internal/core/engine"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShowWindow  func()
	OnSettings    func()
	OnTogglePause func()
	OnSkipRest    func()
	OnPauseFor    func(time.Duration)
	OnSetRestType func(engine.RestType)
	OnQuit        func()
}

// Manager mirrors a reduced subset of the timer state into the system
// tray menu. It is a pure sink: every action is forwarded to the same
// engine operations the main window uses.
type Manager struct {
	app         desktop.App
	statusItem  *fyne.MenuItem
	pauseItem   *fyne.MenuItem
	skipItem    *fyne.MenuItem
	pauseFor    *fyne.MenuItem
	nextRest    *fyne.MenuItem
	callbacks   Callbacks
	paused      bool
	inRest      bool
	statusLabel string
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Status: starting...", nil)
	manager.statusItem.Disabled = true

	manager.pauseFor = fyne.NewMenuItem("Disable reminders for...", nil)
	manager.pauseFor.ChildMenu = fyne.NewMenu("",
		pauseForItem(manager, "15 minutes", 15*time.Minute),
		pauseForItem(manager, "30 minutes", 30*time.Minute),
		pauseForItem(manager, "60 minutes", time.Hour),
	)

	manager.nextRest = fyne.NewMenuItem("Next rest...", nil)
	manager.nextRest.ChildMenu = fyne.NewMenu("",
		nextRestItem(manager, "Eye rest", engine.RestEye),
		nextRestItem(manager, "Water reminder", engine.RestWater),
		nextRestItem(manager, "Walk reminder", engine.RestWalk),
	)

	manager.pauseItem = fyne.NewMenuItem("Pause", func() {
		if manager.callbacks.OnTogglePause != nil {
			manager.callbacks.OnTogglePause()
		}
	})

	manager.skipItem = fyne.NewMenuItem("Skip rest", func() {
		if manager.callbacks.OnSkipRest != nil {
			manager.callbacks.OnSkipRest()
		}
	})
	manager.skipItem.Disabled = true

	manager.refreshMenu()
	return manager
}

func pauseForItem(manager *Manager, label string, duration time.Duration) *fyne.MenuItem {
	return fyne.NewMenuItem(label, func() {
		if manager.callbacks.OnPauseFor != nil {
			manager.callbacks.OnPauseFor(duration)
		}
	})
}

func nextRestItem(manager *Manager, label string, restType engine.RestType) *fyne.MenuItem {
	return fyne.NewMenuItem(label, func() {
		if manager.callbacks.OnSetRestType != nil {
			manager.callbacks.OnSetRestType(restType)
		}
	})
}

// SetStatus updates the status label.
func (manager *Manager) SetStatus(status string) {
	manager.statusLabel = status
	manager.refreshStatus()
}

// SetPaused updates pause state.
func (manager *Manager) SetPaused(paused bool) {
	manager.paused = paused
	if paused {
		manager.pauseItem.Label = "Resume"
	} else {
		manager.pauseItem.Label = "Pause"
	}
	manager.refreshStatus()
}

// SetInRest toggles rest-related menu items.
func (manager *Manager) SetInRest(inRest bool) {
	manager.inRest = inRest
	manager.skipItem.Disabled = !inRest
	manager.refreshMenu()
}

func (manager *Manager) refreshStatus() {
	status := manager.statusLabel
	if manager.paused {
		status = fmt.Sprintf("%s (paused)", status)
	}
	manager.statusItem.Label = fmt.Sprintf("Status: %s", status)
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu("EyeGuard",
		manager.statusItem,
		fyne.NewMenuItem("Show window", func() {
			if manager.callbacks.OnShowWindow != nil {
				manager.callbacks.OnShowWindow()
			}
		}),
		fyne.NewMenuItem("Settings", func() {
			if manager.callbacks.OnSettings != nil {
				manager.callbacks.OnSettings()
			}
		}),
		manager.pauseFor,
		manager.nextRest,
		manager.pauseItem,
		manager.skipItem,
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	))
}
