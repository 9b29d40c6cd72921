package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnumerateMonitorsNeverEmpty(t *testing.T) {
	monitors := EnumerateMonitors()
	assert.NotEmpty(t, monitors)
	for _, monitor := range monitors {
		assert.Greater(t, monitor.Width, 0)
		assert.Greater(t, monitor.Height, 0)
		assert.Greater(t, monitor.ScaleFactor, float32(0))
	}
}

func TestNormalizeMonitorsSubstitutesFallback(t *testing.T) {
	monitors := normalizeMonitors(nil)
	assert.Len(t, monitors, 1)
	assert.Equal(t, fallbackMonitor(), monitors[0])

	// Zero-sized entries are filtered out before the fallback check.
	monitors = normalizeMonitors([]MonitorRect{
		{Width: 0, Height: 1080},
		{Width: 1920, Height: 0},
	})
	assert.Len(t, monitors, 1)
	assert.Equal(t, fallbackMonitor(), monitors[0])
}

func TestNormalizeMonitorsKeepsValidEntries(t *testing.T) {
	input := []MonitorRect{
		{X: 0, Y: 0, Width: 2560, Height: 1440, ScaleFactor: 1.25},
		{X: 2560, Y: 0, Width: 1920, Height: 1080},
	}
	monitors := normalizeMonitors(input)
	assert.Len(t, monitors, 2)
	assert.Equal(t, float32(1.25), monitors[0].ScaleFactor)
	assert.Equal(t, float32(1), monitors[1].ScaleFactor)
}
