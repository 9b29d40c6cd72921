//go:build darwin

package platform

import (
	"time"

	"eyeguard/internal/core/engine"
)

type idleProvider struct{}

func newIdleProvider() IdleProvider {
	return &idleProvider{}
}

func (provider *idleProvider) IdleDuration() (time.Duration, error) {
	return 0, engine.ErrIdleUnsupported
}
