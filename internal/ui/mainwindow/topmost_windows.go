//go:build windows

package mainwindow

import (
	"errors"
	"syscall"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver"
)

const (
	swpNoSize     = 0x0001
	swpNoMove     = 0x0002
	swpNoActivate = 0x0010
)

// hwndTopmost is the (HWND)-1 pseudo-handle.
var hwndTopmost = ^uintptr(0)

var (
	user32DLL        = syscall.NewLazyDLL("user32.dll")
	procSetWindowPos = user32DLL.NewProc("SetWindowPos")
)

// pinTopmost marks the control window topmost without moving or
// resizing it.
func pinTopmost(window fyne.Window) error {
	nativeWindow, ok := window.(driver.NativeWindow)
	if !ok {
		return errors.New("native window access unsupported")
	}

	var pinErr error
	nativeWindow.RunNative(func(context any) {
		var hwnd uintptr
		switch value := context.(type) {
		case driver.WindowsWindowContext:
			hwnd = value.HWND
		case *driver.WindowsWindowContext:
			hwnd = value.HWND
		default:
			pinErr = errors.New("no windows window context")
			return
		}
		if hwnd == 0 {
			pinErr = errors.New("window handle not ready")
			return
		}

		result, _, _ := procSetWindowPos.Call(
			hwnd,
			hwndTopmost,
			0, 0, 0, 0,
			swpNoMove|swpNoSize|swpNoActivate,
		)
		if result == 0 {
			pinErr = errors.New("SetWindowPos failed")
		}
	})
	return pinErr
}
