//go:build !windows

package platform

// EnableDPIAwareness is a no-op outside Windows; the window system
// handles scaling.
func EnableDPIAwareness() {}
