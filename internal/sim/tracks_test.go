package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracksLeaveStartClear(t *testing.T) {
	for level := 1; level <= 12; level++ {
		track := GetTrack(level)
		require.NotEmpty(t, track.Name, "level %d", level)

		scene := NewStaticScene(track, DefaultVehicleWidth, DefaultVehicleHeight)
		s := NewSession(SessionConfig{Tuning: DefaultTuning(), Keys: DefaultBindings(), Scene: scene})
		start := s.CenterPose()

		assert.False(t, s.collides(start), "level %d start pose collides", level)
		// A full spin in place must stay clear too.
		for a := 0.0; a < 360; a += 15 {
			start.Angle = a
			assert.False(t, s.collides(start), "level %d angle %v", level, a)
		}

		bounds := track.Bounds()
		for i, o := range track.Obstacles {
			box := RectF{
				X0: o.Center.X() - o.Radius, Y0: o.Center.Y() - o.Radius,
				X1: o.Center.X() + o.Radius, Y1: o.Center.Y() + o.Radius,
			}
			assert.True(t, bounds.Contains(box), "level %d obstacle %d outside play area", level, i)
		}
	}
}

func TestGeneratedTracksAreDeterministic(t *testing.T) {
	assert.Equal(t, GetTrack(9), GetTrack(9))
	assert.NotEmpty(t, GetTrack(9).Obstacles)
}

func TestRotatedBox(t *testing.T) {
	box := RotatedBox(390, 280, 20, 40, 0)
	assert.Equal(t, RectF{X0: 390, Y0: 280, X1: 410, Y1: 320}, box)

	box = RotatedBox(390, 280, 20, 40, 90)
	assert.InDelta(t, 380, box.X0, 1e-9)
	assert.InDelta(t, 420, box.X1, 1e-9)
	assert.InDelta(t, 290, box.Y0, 1e-9)
	assert.InDelta(t, 310, box.Y1, 1e-9)

	box = RotatedBox(0, 0, 20, 40, -45)
	assert.InDelta(t, 30*1.4142135623730951, box.Width(), 1e-9)
	assert.InDelta(t, box.Width(), box.Height(), 1e-9)

	assert.True(t, RotatedBox(0, 0, 0, 40, 0).Empty())
}
