//go:build windows

package overlay

import (
	"errors"
	"syscall"

	"eyeguard/internal/platform"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver"
)

const (
	gwlExStyle    int32 = -20
	wsExLayered         = 0x00080000
	lwaAlpha            = 0x2
	swpShowWindow       = 0x0040
)

// hwndTopmost is the (HWND)-1 pseudo-handle.
var hwndTopmost = ^uintptr(0)

var (
	user32DLL                      = syscall.NewLazyDLL("user32.dll")
	procGetWindowLongPtrW          = user32DLL.NewProc("GetWindowLongPtrW")
	procSetWindowLongPtrW          = user32DLL.NewProc("SetWindowLongPtrW")
	procSetLayeredWindowAttributes = user32DLL.NewProc("SetLayeredWindowAttributes")
	procSetWindowPos               = user32DLL.NewProc("SetWindowPos")
)

// placeWindow moves the overlay to exactly cover the monitor rectangle
// and marks it topmost, with a layered-window alpha for dimming.
func placeWindow(window fyne.Window, monitor platform.MonitorRect, alpha uint8) error {
	nativeWindow, ok := window.(driver.NativeWindow)
	if !ok {
		return errors.New("native window access unsupported")
	}

	var placeErr error
	nativeWindow.RunNative(func(context any) {
		var hwnd uintptr
		switch value := context.(type) {
		case driver.WindowsWindowContext:
			hwnd = value.HWND
		case *driver.WindowsWindowContext:
			hwnd = value.HWND
		default:
			placeErr = errors.New("no windows window context")
			return
		}
		if hwnd == 0 {
			placeErr = errors.New("window handle not ready")
			return
		}

		style, _, _ := procGetWindowLongPtrW.Call(hwnd, int32ToUintptr(gwlExStyle))
		if style&wsExLayered == 0 {
			procSetWindowLongPtrW.Call(hwnd, int32ToUintptr(gwlExStyle), style|wsExLayered)
		}
		procSetLayeredWindowAttributes.Call(hwnd, 0, uintptr(alpha), lwaAlpha)

		result, _, _ := procSetWindowPos.Call(
			hwnd,
			hwndTopmost,
			uintptr(int64(monitor.X)),
			uintptr(int64(monitor.Y)),
			uintptr(int64(monitor.Width)),
			uintptr(int64(monitor.Height)),
			swpShowWindow,
		)
		if result == 0 {
			placeErr = errors.New("SetWindowPos failed")
		}
	})
	return placeErr
}

func int32ToUintptr(value int32) uintptr {
	return uintptr(uint32(value))
}
