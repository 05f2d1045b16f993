package sim

// Collides reports whether the vehicle box leaves the play area or overlaps
// any circular obstacle. The vehicle is treated as a circle of half its box
// width around the box centre. The boundary is checked first, then
// obstacles in order; the first hit wins.
//
// An empty vehicle box, empty bounds or zero-radius obstacle contributes no
// collision, so a bad geometry snapshot never stops the loop.
func Collides(vehicle, bounds RectF, obstacles []Circle) bool {
	if vehicle.Empty() {
		return false
	}
	if !bounds.Empty() && !bounds.Contains(vehicle) {
		return true
	}

	car := CircleInRect(vehicle)
	for _, o := range obstacles {
		if o.Empty() {
			continue
		}
		if car.Center.Sub(o.Center).Len() < o.Radius+car.Radius {
			return true
		}
	}
	return false
}
