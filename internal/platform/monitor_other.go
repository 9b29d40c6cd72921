//go:build !windows

package platform

// Fyne exposes no public monitor enumeration off Windows; overlays fall
// back to a single fullscreen window on the primary display.
func enumerateMonitors() []MonitorRect {
	return nil
}

func fallbackMonitor() MonitorRect {
	return MonitorRect{X: 0, Y: 0, Width: 1920, Height: 1080, ScaleFactor: 1}
}
