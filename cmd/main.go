package main

import (
	"log"
	"os"
	"time"

	"eyeguard/internal/core/engine"
	"eyeguard/internal/core/messages"
	"eyeguard/internal/core/model"
	"eyeguard/internal/platform"
	"eyeguard/internal/ui/mainwindow"
	"eyeguard/internal/ui/overlay"
	"eyeguard/internal/ui/settings"
	"eyeguard/internal/ui/tray"
	"eyeguard/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const appName = "EyeGuard"

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	platform.EnableDPIAwareness()

	fyneApp := app.NewWithID("com.eyeguard.app")
	activeIcon := resources.MustLogo("logo_active.png")
	pausedIcon := resources.MustLogo("logo_paused.png")
	fyneApp.SetIcon(activeIcon)

	config := model.DefaultTimerConfig()
	timerEngine := engine.New(config, engine.Options{TickInterval: time.Second})
	timerEngine.SetIdleChecker(platform.NewIdleProvider())

	overlayManager := overlay.New(fyneApp, overlay.Config{Opacity: 235})
	overlayManager.SetOnSkip(timerEngine.SkipPhase)

	controller := &controller{
		engine:     timerEngine,
		catalog:    messages.MustLoad(),
		overlays:   overlayManager,
		activeIcon: activeIcon,
		pausedIcon: pausedIcon,
	}

	controller.mainWindow = mainwindow.New(fyneApp, mainwindow.Callbacks{
		OnTogglePause:    timerEngine.TogglePause,
		OnSecondary:      controller.secondaryAction,
		OnSettings:       func() { controller.settingsWindow.Show() },
		OnChangeRestType: timerEngine.SetRestType,
	})

	platformService := platform.NewService()
	autostartEnabled, err := platformService.IsAutostartEnabled(appName)
	if err != nil {
		log.Printf("autostart: query: %v", err)
	}
	controller.settingsWindow = settings.New(fyneApp, settings.Form{
		WorkMinutes:   int(config.WorkDuration.Minutes()),
		RestSeconds:   int(config.RestDuration.Seconds()),
		WaterInterval: config.WaterInterval,
		WalkInterval:  config.WalkInterval,
		IdleEnabled:   config.IdleResetEnabled,
		Autostart:     autostartEnabled,
	}, func(form settings.Form) error {
		return applySettings(timerEngine, platformService, form)
	})

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		controller.desktopApp = desktopApp
		controller.trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShowWindow:  controller.mainWindow.Show,
			OnSettings:    controller.settingsWindow.Show,
			OnTogglePause: timerEngine.TogglePause,
			OnSkipRest:    timerEngine.SkipPhase,
			OnPauseFor:    controller.pauseFor,
			OnSetRestType: timerEngine.SetRestType,
			OnQuit: func() {
				timerEngine.Stop()
				fyneApp.Quit()
			},
		})
		desktopApp.SetSystemTrayIcon(activeIcon)
	} else {
		log.Printf("system tray unsupported on this platform")
	}

	events := timerEngine.Subscribe(8)
	go func() {
		for event := range events {
			event := event
			fyne.Do(func() {
				controller.handleEvent(event)
			})
		}
	}()

	timerEngine.Start()
	controller.mainWindow.Show()
	fyneApp.Run()
}

// controller fans engine events out to the window, tray and overlay
// sinks. It runs entirely on the UI goroutine.
type controller struct {
	engine         *engine.Engine
	catalog        *messages.Catalog
	overlays       *overlay.Manager
	mainWindow     *mainwindow.Window
	settingsWindow *settings.Window
	trayManager    *tray.Manager
	desktopApp     desktop.App
	activeIcon     fyne.Resource
	pausedIcon     fyne.Resource
	pauseTimer     *time.Timer
	inRest         bool
	paused         bool
}

func (controller *controller) handleEvent(event engine.Event) {
	controller.mainWindow.Apply(mainwindow.BuildViewState(event.State))

	switch event.Type {
	case engine.EventStateChange:
		controller.applyPause(event.State.Paused)
		controller.applyMode(event.State)
	case engine.EventProgress:
		if event.State.Mode == engine.ModeRest {
			controller.overlays.UpdateCountdown(event.State.Remaining)
		} else if controller.trayManager != nil {
			controller.trayManager.SetStatus("next rest in " + mainwindow.FormatRemaining(event.State.Remaining))
		}
	}
}

func (controller *controller) applyMode(state engine.State) {
	switch {
	case state.Mode == engine.ModeRest && !controller.inRest:
		controller.inRest = true
		headline, message := controller.catalog.Pick(state.RestType, int(state.RestDuration.Seconds()))
		// Monitors are re-enumerated every cycle so hot-plugged
		// displays are covered without an event subscription.
		controller.overlays.EnterRest(platform.EnumerateMonitors(), overlay.Content{
			Headline:  headline,
			Message:   message,
			Remaining: state.Remaining,
		})
		controller.mainWindow.Hide()
		if controller.trayManager != nil {
			controller.trayManager.SetInRest(true)
		}
	case state.Mode == engine.ModeWork && controller.inRest:
		controller.inRest = false
		controller.overlays.ExitRest()
		controller.mainWindow.Show()
		if controller.trayManager != nil {
			controller.trayManager.SetInRest(false)
		}
	}
}

func (controller *controller) applyPause(paused bool) {
	if paused == controller.paused {
		return
	}
	controller.paused = paused
	if controller.trayManager != nil {
		controller.trayManager.SetPaused(paused)
	}
	if controller.desktopApp != nil {
		if paused {
			controller.desktopApp.SetSystemTrayIcon(controller.pausedIcon)
		} else {
			controller.desktopApp.SetSystemTrayIcon(controller.activeIcon)
		}
	}
}

// secondaryAction resets during work and skips during rest, mirroring
// the single secondary button on the control window.
func (controller *controller) secondaryAction() {
	if controller.engine.Snapshot().Mode == engine.ModeRest {
		controller.engine.SkipPhase()
		return
	}
	controller.engine.Reset()
}

func (controller *controller) pauseFor(duration time.Duration) {
	if controller.pauseTimer != nil {
		controller.pauseTimer.Stop()
	}
	if !controller.engine.Snapshot().Paused {
		controller.engine.TogglePause()
	}
	controller.pauseTimer = time.AfterFunc(duration, func() {
		if controller.engine.Snapshot().Paused {
			controller.engine.TogglePause()
		}
	})
}

func applySettings(timerEngine *engine.Engine, service platform.Service, form settings.Form) error {
	if err := timerEngine.SetDurations(
		time.Duration(form.WorkMinutes)*time.Minute,
		time.Duration(form.RestSeconds)*time.Second,
	); err != nil {
		return err
	}
	if err := timerEngine.SetIntervals(form.WaterInterval, form.WalkInterval); err != nil {
		return err
	}
	timerEngine.SetIdleReset(form.IdleEnabled)

	execPath, err := os.Executable()
	if err != nil {
		log.Printf("autostart: resolve executable: %v", err)
		return nil
	}
	if form.Autostart {
		if err := service.EnableAutostart(appName, execPath); err != nil {
			log.Printf("autostart: %v", err)
		}
	} else {
		if err := service.DisableAutostart(appName); err != nil {
			log.Printf("autostart: %v", err)
		}
	}
	return nil
}
