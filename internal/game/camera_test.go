package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"drift/internal/sim"
)

func TestCameraFit(t *testing.T) {
	var c Camera
	area := sim.RectF{X1: 800, Y1: 600}
	c.Fit(area, 1024, 768)

	assert.InDelta(t, 768.0/(600+2*ViewMargin+HUDHeight), c.Zoom, 1e-9)
	assert.Equal(t, 400.0, c.X)
	assert.Equal(t, 300.0-HUDHeight*0.5, c.Y)

	// A zero framebuffer leaves the camera alone.
	c.Fit(area, 0, 0)
	assert.InDelta(t, 768.0/(600+2*ViewMargin+HUDHeight), c.Zoom, 1e-9)
}

func TestCameraShakeDecays(t *testing.T) {
	var c Camera
	c.AddShake(6, 0.3)
	c.AddShake(2, 0.1)
	assert.Equal(t, 6.0, c.ShakeIntensity)
	assert.Equal(t, 0.3, c.ShakeTimer)

	c.UpdateShake(0.1, 42)
	assert.LessOrEqual(t, c.ShakeX, 6.0)
	assert.GreaterOrEqual(t, c.ShakeX, -6.0)

	c.UpdateShake(0.5, 42)
	c.UpdateShake(0.1, 42)
	x, y := c.EffectivePos()
	assert.Equal(t, c.X, x)
	assert.Equal(t, c.Y, y)
}
