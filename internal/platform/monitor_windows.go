//go:build windows

package platform

import (
	"syscall"
	"unsafe"
)

const (
	smXVirtualScreen  = 76
	smYVirtualScreen  = 77
	smCXVirtualScreen = 78
	smCYVirtualScreen = 79

	mdtEffectiveDPI = 0
)

var (
	monitorUser32           = syscall.NewLazyDLL("user32.dll")
	procEnumDisplayMonitors = monitorUser32.NewProc("EnumDisplayMonitors")
	procGetMonitorInfoW     = monitorUser32.NewProc("GetMonitorInfoW")
	procGetSystemMetrics    = monitorUser32.NewProc("GetSystemMetrics")

	monitorShcore          = syscall.NewLazyDLL("shcore.dll")
	procGetDpiForMonitor   = monitorShcore.NewProc("GetDpiForMonitor")
	enumMonitorCallbackPtr = syscall.NewCallback(enumMonitorCallback)
)

type winRect struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

type monitorInfoExW struct {
	CbSize    uint32
	RcMonitor winRect
	RcWork    winRect
	DwFlags   uint32
	SzDevice  [32]uint16
}

func enumMonitorCallback(hMonitor, _, _, lparam uintptr) uintptr {
	monitors := (*[]MonitorRect)(unsafe.Pointer(lparam))

	var info monitorInfoExW
	info.CbSize = uint32(unsafe.Sizeof(info))
	result, _, _ := procGetMonitorInfoW.Call(hMonitor, uintptr(unsafe.Pointer(&info)))
	if result == 0 {
		return 1
	}

	scaleFactor := float32(1)
	if procGetDpiForMonitor.Find() == nil {
		var dpiX, dpiY uint32
		hr, _, _ := procGetDpiForMonitor.Call(
			hMonitor,
			mdtEffectiveDPI,
			uintptr(unsafe.Pointer(&dpiX)),
			uintptr(unsafe.Pointer(&dpiY)),
		)
		if hr == 0 && dpiX > 0 {
			scaleFactor = float32(dpiX) / 96
		}
	}

	*monitors = append(*monitors, MonitorRect{
		X:           int(info.RcMonitor.Left),
		Y:           int(info.RcMonitor.Top),
		Width:       int(info.RcMonitor.Right - info.RcMonitor.Left),
		Height:      int(info.RcMonitor.Bottom - info.RcMonitor.Top),
		ScaleFactor: scaleFactor,
	})
	return 1
}

func enumerateMonitors() []MonitorRect {
	var monitors []MonitorRect
	procEnumDisplayMonitors.Call(0, 0, enumMonitorCallbackPtr, uintptr(unsafe.Pointer(&monitors)))
	return monitors
}

// fallbackMonitor covers the whole virtual screen.
func fallbackMonitor() MonitorRect {
	x, _, _ := procGetSystemMetrics.Call(smXVirtualScreen)
	y, _, _ := procGetSystemMetrics.Call(smYVirtualScreen)
	width, _, _ := procGetSystemMetrics.Call(smCXVirtualScreen)
	height, _, _ := procGetSystemMetrics.Call(smCYVirtualScreen)

	rect := MonitorRect{
		X:           int(int32(x)),
		Y:           int(int32(y)),
		Width:       int(int32(width)),
		Height:      int(int32(height)),
		ScaleFactor: 1,
	}
	if rect.Width <= 0 {
		rect.Width = 1920
	}
	if rect.Height <= 0 {
		rect.Height = 1080
	}
	return rect
}
