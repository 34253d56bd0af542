package ui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func drainBus(t *testing.T) {
	t.Helper()
	for {
		select {
		case <-Bus:
		default:
			return
		}
	}
}

func TestPublishAndListen(t *testing.T) {
	drainBus(t)

	PublishSuccess("exported", "Export complete")
	msg := ListenBus()()

	success, ok := msg.(SuccessMsg)
	assert.True(t, ok)
	assert.Equal(t, "exported", success.Message)
}

func TestPublishErrorDropsWhenFull(t *testing.T) {
	drainBus(t)

	// Fill the bus; the overflow publish must not block.
	for i := 0; i < cap(Bus)+10; i++ {
		PublishError(errors.New("boom"), "Export failed")
	}

	assert.Len(t, Bus, cap(Bus))
	drainBus(t)
}

func TestRouteString(t *testing.T) {
	assert.Equal(t, "welcome", RouteWelcome.String())
	assert.Equal(t, "calculator", RouteCalculator.String())
	assert.Equal(t, "unknown", Route(42).String())
}
