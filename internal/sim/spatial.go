package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// RectF is an axis-aligned rectangle in play-area space.
type RectF struct {
	X0, Y0 float64
	X1, Y1 float64
}

func (r RectF) Width() float64  { return r.X1 - r.X0 }
func (r RectF) Height() float64 { return r.Y1 - r.Y0 }

func (r RectF) Center() mgl64.Vec2 {
	return mgl64.Vec2{(r.X0 + r.X1) * 0.5, (r.Y0 + r.Y1) * 0.5}
}

// Empty reports a rectangle with no area. Geometry providers return the
// zero RectF for entities they cannot measure.
func (r RectF) Empty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

func (r RectF) Contains(o RectF) bool {
	return o.X0 >= r.X0 && o.X1 <= r.X1 && o.Y0 >= r.Y0 && o.Y1 <= r.Y1
}

// Circle is a round obstacle.
type Circle struct {
	Center mgl64.Vec2
	Radius float64
}

func (c Circle) Empty() bool { return c.Radius <= 0 }

// CircleInRect returns the circle inscribed in the width of r, the way a
// round element is measured from its bounding box.
func CircleInRect(r RectF) Circle {
	if r.Empty() {
		return Circle{}
	}
	return Circle{Center: r.Center(), Radius: r.Width() * 0.5}
}

// Pose is a vehicle transform: top-left of the unrotated rectangle plus
// heading in degrees.
type Pose struct {
	X, Y  float64
	Angle float64
}

// RotatedBox returns the axis-aligned bounds of a w*h rectangle placed at
// (x, y) and rotated about its centre by angleDeg.
func RotatedBox(x, y, w, h, angleDeg float64) RectF {
	if w <= 0 || h <= 0 {
		return RectF{}
	}
	rad := degToRad(angleDeg)
	c := math.Abs(math.Cos(rad))
	s := math.Abs(math.Sin(rad))
	ex := (w*c + h*s) * 0.5
	ey := (w*s + h*c) * 0.5
	centre := mgl64.Vec2{x + w*0.5, y + h*0.5}
	return RectF{
		X0: centre.X() - ex, Y0: centre.Y() - ey,
		X1: centre.X() + ex, Y1: centre.Y() + ey,
	}
}
