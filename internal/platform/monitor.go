package platform

// MonitorRect describes one display in virtual-screen coordinates.
type MonitorRect struct {
	X           int
	Y           int
	Width       int
	Height      int
	ScaleFactor float32
}

// EnumerateMonitors queries the active displays. The result is queried
// fresh on every call so monitor hot-plug between rest cycles is picked
// up without an event subscription. It never returns an empty slice: on
// enumeration failure a single fallback rectangle is substituted so
// overlay coverage degrades to one screen rather than zero.
func EnumerateMonitors() []MonitorRect {
	return normalizeMonitors(enumerateMonitors())
}

// FallbackMonitor returns the synthetic rectangle used when no monitor
// can be enumerated.
func FallbackMonitor() MonitorRect {
	return fallbackMonitor()
}

func normalizeMonitors(monitors []MonitorRect) []MonitorRect {
	valid := monitors[:0]
	for _, monitor := range monitors {
		if monitor.Width <= 0 || monitor.Height <= 0 {
			continue
		}
		if monitor.ScaleFactor <= 0 {
			monitor.ScaleFactor = 1
		}
		valid = append(valid, monitor)
	}
	if len(valid) == 0 {
		return []MonitorRect{fallbackMonitor()}
	}
	return valid
}
