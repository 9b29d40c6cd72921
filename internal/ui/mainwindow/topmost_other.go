//go:build !windows

package mainwindow

import "fyne.io/fyne/v2"

// pinTopmost is a no-op where no native always-on-top API is exposed;
// the window manager decides stacking.
func pinTopmost(fyne.Window) error {
	return nil
}
