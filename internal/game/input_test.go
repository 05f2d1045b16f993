package game

import (
	"testing"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"

	"drift/internal/sim"
)

func TestKeyTokenNamedKeys(t *testing.T) {
	assert.Equal(t, "shift", KeyToken(glfw.KeyLeftShift, 0))
	assert.Equal(t, "shift", KeyToken(glfw.KeyRightShift, 0))
	assert.Equal(t, "space", KeyToken(glfw.KeySpace, 0))
	assert.Equal(t, "left", KeyToken(glfw.KeyLeft, 0))
}

func TestPhysicalKeysBothShifts(t *testing.T) {
	clock := sim.NewManualClock(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))
	in := sim.NewInput(clock, sim.KeyDrift)
	down := make(physicalKeys)

	press := func(key glfw.Key) {
		tok := KeyToken(key, 0)
		down.press(tok, key)
		in.Press(tok)
	}
	release := func(key glfw.Key) {
		tok := KeyToken(key, 0)
		if down.release(tok, key) {
			in.Release(tok)
		}
	}

	press(glfw.KeyLeftShift)
	clock.Advance(3 * time.Second)
	press(glfw.KeyRightShift)
	assert.InDelta(t, 3.0, in.DriftElapsedSeconds(), 1e-9, "second shift keeps the drift timer")

	release(glfw.KeyLeftShift)
	assert.True(t, in.DriftEngaged(), "right shift still down")

	release(glfw.KeyRightShift)
	assert.False(t, in.DriftEngaged())
	assert.False(t, in.IsHeld("shift"))
}

func TestPhysicalKeysClear(t *testing.T) {
	down := make(physicalKeys)
	down.press("shift", glfw.KeyLeftShift)
	down.press("w", glfw.KeyW)

	down.clear()

	assert.Empty(t, down)
	assert.True(t, down.release("shift", glfw.KeyRightShift), "unknown key releases its token")
}
