package game

import (
	"math"

	"drift/internal/sim"
)

type Camera struct {
	X, Y float64 // play-area space, camera centre
	Zoom float64 // screen pixels per play-area pixel

	// Screen shake.
	ShakeX, ShakeY float64 // current offset in play-area pixels
	ShakeTimer     float64 // remaining shake time
	ShakeIntensity float64 // max offset magnitude
}

// AddShake triggers screen shake with given intensity and duration.
func (c *Camera) AddShake(intensity, duration float64) {
	if intensity > c.ShakeIntensity {
		c.ShakeIntensity = intensity
	}
	if duration > c.ShakeTimer {
		c.ShakeTimer = duration
	}
}

// UpdateShake decays shake and computes random offsets.
func (c *Camera) UpdateShake(dt float64, seed uint64) {
	if c.ShakeTimer <= 0 {
		c.ShakeX = 0
		c.ShakeY = 0
		c.ShakeIntensity = 0
		return
	}
	c.ShakeTimer -= dt
	if c.ShakeTimer < 0 {
		c.ShakeTimer = 0
	}
	t := c.ShakeTimer
	rr := sim.NewRand(seed ^ uint64(t*10000))
	mag := c.ShakeIntensity * (t / (t + 0.08))
	c.ShakeX = rr.RangeF(-mag, mag)
	c.ShakeY = rr.RangeF(-mag, mag)
}

// EffectivePos returns camera position with shake applied.
func (c *Camera) EffectivePos() (float64, float64) {
	return c.X + c.ShakeX, c.Y + c.ShakeY
}

// Fit centres the camera on area and picks the zoom that shows all of it
// plus the margins and the HUD strip above it.
func (c *Camera) Fit(area sim.RectF, fbW, fbH int) {
	w := area.Width() + 2*ViewMargin
	h := area.Height() + 2*ViewMargin + HUDHeight
	if w <= 0 || h <= 0 || fbW <= 0 || fbH <= 0 {
		return
	}
	c.Zoom = math.Min(float64(fbW)/w, float64(fbH)/h)
	centre := area.Center()
	c.X = centre.X()
	c.Y = centre.Y() - HUDHeight*0.5
}
