package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"drift/internal/sim"
)

// vehicleFrame returns the centre of a w*h car at pose p and its unit
// forward and right axes. Heading 0 points up the screen.
func vehicleFrame(p sim.Pose, w, h float64) (centre, fwd, right mgl64.Vec2) {
	rad := p.Angle * math.Pi / 180
	centre = mgl64.Vec2{p.X + w*0.5, p.Y + h*0.5}
	fwd = mgl64.Vec2{math.Sin(rad), -math.Cos(rad)}
	right = mgl64.Vec2{math.Cos(rad), math.Sin(rad)}
	return centre, fwd, right
}

// RearWheels returns the positions of the two rear wheels.
func RearWheels(p sim.Pose, w, h float64) [2]mgl64.Vec2 {
	c, fwd, right := vehicleFrame(p, w, h)
	back := c.Sub(fwd.Mul(h * 0.38))
	side := right.Mul(w * 0.42)
	return [2]mgl64.Vec2{back.Sub(side), back.Add(side)}
}

// VehicleShadowSprites returns soft shadow sprites for the car: three
// overlapping circles along its long axis, offset south-east. Drawn before
// the car so the shadow appears underneath the body.
func VehicleShadowSprites(p sim.Pose, w, h float64, buf []float32) []float32 {
	buf = buf[:0]
	c, fwd, _ := vehicleFrame(p, w, h)
	ox := c.X() + 2.5
	oy := c.Y() + 4.0
	sz := float32(w * 1.15)
	for _, t := range [3]float64{-h * 0.3, 0, h * 0.3} {
		buf = append(buf,
			float32(ox+fwd.X()*t), float32(oy+fwd.Y()*t),
			sz, 0, 0, 0, 0.22)
	}
	return buf
}

// VehicleLightSprites returns glow sprites for the headlights, and for the
// brake lights while braking.
func VehicleLightSprites(p sim.Pose, w, h float64, braking bool, buf []float32) []float32 {
	buf = buf[:0]
	c, fwd, right := vehicleFrame(p, w, h)
	front := c.Add(fwd.Mul(h * 0.5))
	rear := c.Sub(fwd.Mul(h * 0.5))
	side := right.Mul(w * 0.32)
	for _, s := range [2]mgl64.Vec2{side, side.Mul(-1)} {
		f := front.Add(s)
		buf = append(buf, float32(f.X()), float32(f.Y()), float32(w*0.45), 0.55, 0.52, 0.36, 1)
		if braking {
			b := rear.Add(s)
			buf = append(buf, float32(b.X()), float32(b.Y()), float32(w*0.5), 0.8, 0.05, 0.04, 1)
		}
	}
	return buf
}
