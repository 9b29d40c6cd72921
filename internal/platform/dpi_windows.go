//go:build windows

package platform

import "syscall"

const processPerMonitorDPIAware = 2

// dpiAwarenessContextPerMonitorAwareV2, passed as a pseudo-handle.
const dpiContextPerMonitorV2 = ^uintptr(3)

// EnableDPIAwareness registers per-monitor DPI awareness so overlay
// rectangles line up with physical monitor coordinates. Newer APIs are
// tried first; all failures are silent because the app still works at
// system DPI.
func EnableDPIAwareness() {
	user32 := syscall.NewLazyDLL("user32.dll")

	setContext := user32.NewProc("SetProcessDpiAwarenessContext")
	if setContext.Find() == nil {
		if result, _, _ := setContext.Call(dpiContextPerMonitorV2); result != 0 {
			return
		}
	}

	shcore := syscall.NewLazyDLL("shcore.dll")
	setAwareness := shcore.NewProc("SetProcessDpiAwareness")
	if setAwareness.Find() == nil {
		if result, _, _ := setAwareness.Call(processPerMonitorDPIAware); result == 0 {
			return
		}
	}

	setAware := user32.NewProc("SetProcessDPIAware")
	if setAware.Find() == nil {
		setAware.Call()
	}
}
