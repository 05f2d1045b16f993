package sim

import "math"

// Vehicle is the controllable car. Position is the top-left of the
// unrotated vehicle rectangle in play-area space; Angle is in degrees and
// unbounded.
type Vehicle struct {
	X, Y  float64
	Angle float64
	Speed float64
	Drift bool
}

func (v Vehicle) Pose() Pose {
	return Pose{X: v.X, Y: v.Y, Angle: v.Angle}
}

// Validator reports whether a candidate pose collides.
type Validator func(Pose) bool

// Integrator advances a vehicle by one tick.
type Integrator struct {
	Tuning Tuning
	Keys   Bindings
}

// Cap returns the speed limit for the given mode.
func (it Integrator) Cap(drift bool) float64 {
	if drift {
		return it.Tuning.DriftSpeed
	}
	return it.Tuning.MaxSpeed
}

// TurnRate returns the heading change per tick for the given mode.
func (it Integrator) TurnRate(drift bool) float64 {
	if drift {
		return it.Tuning.DriftTurnRate
	}
	return it.Tuning.TurnRate
}

// Step applies one tick of input to v. The candidate position is checked
// with collides; on a hit only the position reverts, speed and heading
// changes are kept, and hit is true. A nil validator accepts every position.
func (it Integrator) Step(v Vehicle, in *Input, collides Validator) (next Vehicle, hit bool) {
	drift := in.DriftEngaged()
	v.Drift = drift
	limit := it.Cap(drift)

	switch {
	case in.IsHeld(it.Keys.Forward):
		v.Speed = math.Min(v.Speed+it.Tuning.Acceleration, limit)
	case in.IsHeld(it.Keys.Back):
		v.Speed = math.Max(v.Speed-it.Tuning.Acceleration, -limit)
	default:
		v.Speed = approach(v.Speed, 0, it.Tuning.Deceleration)
	}
	// Leaving normal mode above the drift cap snaps speed down.
	v.Speed = clampF(v.Speed, -limit, limit)

	turn := it.TurnRate(drift)
	if in.IsHeld(it.Keys.Left) {
		v.Angle -= turn
	}
	if in.IsHeld(it.Keys.Right) {
		v.Angle += turn
	}

	prevX, prevY := v.X, v.Y
	rad := degToRad(v.Angle)
	if drift {
		// Forward input slides the car sideways.
		v.X += math.Cos(rad) * v.Speed
		v.Y += math.Sin(rad) * v.Speed
	} else {
		// Heading 0 points up.
		v.X += math.Sin(rad) * v.Speed
		v.Y -= math.Cos(rad) * v.Speed
	}

	if collides != nil && collides(v.Pose()) {
		v.X, v.Y = prevX, prevY
		hit = true
	}
	return v, hit
}
