//go:build !windows

package overlay

import (
	"eyeguard/internal/platform"

	"fyne.io/fyne/v2"
)

// Absolute window placement is not exposed off Windows; a fullscreen
// window on the active display is the closest available coverage.
func placeWindow(window fyne.Window, monitor platform.MonitorRect, alpha uint8) error {
	window.SetFullScreen(true)
	return nil
}
