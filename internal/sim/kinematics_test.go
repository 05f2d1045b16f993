package sim

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestIntegrator() (Integrator, *Input) {
	clock := NewManualClock(epoch)
	return Integrator{Tuning: DefaultTuning(), Keys: DefaultBindings()}, NewInput(clock, KeyDrift)
}

func TestStepIdle(t *testing.T) {
	it, in := newTestIntegrator()
	start := Vehicle{X: 390, Y: 280}

	got, _ := it.Step(start, in, nil)

	assert.Equal(t, 0.0, got.Speed)
	assert.Equal(t, start.X, got.X)
	assert.Equal(t, start.Y, got.Y)
	assert.Equal(t, 0.0, got.Angle)
}

func TestStepForwardNormal(t *testing.T) {
	it, in := newTestIntegrator()
	in.Press("w")

	got, _ := it.Step(Vehicle{}, in, nil)

	assert.InDelta(t, 0.1, got.Speed, 1e-12)
	assert.InDelta(t, 0.0, got.X, 1e-12)
	assert.InDelta(t, -0.1, got.Y, 1e-12)
	assert.False(t, got.Drift)
}

func TestStepDriftMovesSideways(t *testing.T) {
	it, in := newTestIntegrator()
	in.Press("Shift")
	in.Press("w")

	got, _ := it.Step(Vehicle{}, in, nil)

	assert.True(t, got.Drift)
	assert.InDelta(t, 0.1, got.X, 1e-12)
	assert.InDelta(t, 0.0, got.Y, 1e-12)

	got, _ = it.Step(Vehicle{Angle: 90, Speed: 1}, in, nil)
	assert.InDelta(t, 0.0, got.X, 1e-9)
	assert.InDelta(t, 1.1, got.Y, 1e-9)
}

func TestStepSpeedCaps(t *testing.T) {
	it, in := newTestIntegrator()
	in.Press("w")

	v := Vehicle{}
	for i := 0; i < 100; i++ {
		v, _ = it.Step(v, in, nil)
	}
	assert.Equal(t, DefaultMaxSpeed, v.Speed)

	// Engaging drift above the drift cap snaps down on the next tick.
	in.Press("shift")
	v, _ = it.Step(v, in, nil)
	assert.Equal(t, DefaultDriftSpeed, v.Speed)

	in.Release("w")
	in.Release("shift")
	in.Press("s")
	for i := 0; i < 200; i++ {
		v, _ = it.Step(v, in, nil)
	}
	assert.Equal(t, -DefaultMaxSpeed, v.Speed)
}

func TestStepDecelerationStopsAtZero(t *testing.T) {
	it, in := newTestIntegrator()

	v, _ := it.Step(Vehicle{Speed: 0.03}, in, nil)
	assert.Equal(t, 0.0, v.Speed)

	v, _ = it.Step(Vehicle{Speed: -0.12}, in, nil)
	assert.InDelta(t, -0.07, v.Speed, 1e-12)
}

func TestStepTurning(t *testing.T) {
	it, in := newTestIntegrator()

	in.Press("a")
	v, _ := it.Step(Vehicle{}, in, nil)
	assert.Equal(t, -DefaultTurnRate, v.Angle)

	in.Press("d")
	v, _ = it.Step(v, in, nil)
	assert.Equal(t, -DefaultTurnRate, v.Angle, "left and right cancel")

	in.Release("a")
	in.Press("shift")
	v, _ = it.Step(v, in, nil)
	assert.Equal(t, -DefaultTurnRate+DefaultDriftTurnRate, v.Angle)
}

func TestStepRevertKeepsSpeedAndHeading(t *testing.T) {
	it, in := newTestIntegrator()
	in.Press("w")
	in.Press("d")

	start := Vehicle{X: 10, Y: 20, Speed: 2}
	var checked Pose
	got, hit := it.Step(start, in, func(p Pose) bool {
		checked = p
		return true
	})

	assert.True(t, hit)
	assert.Equal(t, start.X, got.X)
	assert.Equal(t, start.Y, got.Y)
	assert.InDelta(t, 2.1, got.Speed, 1e-12)
	assert.Equal(t, DefaultTurnRate, got.Angle)
	assert.NotEqual(t, start.Y, checked.Y, "validator sees the candidate")

	got, hit = it.Step(start, in, func(Pose) bool { return false })
	assert.False(t, hit)
	assert.NotEqual(t, start.Y, got.Y)
}

func TestStepSpeedNeverExceedsModeCap(t *testing.T) {
	it, in := newTestIntegrator()
	rng := NewRand(7)
	keys := []string{"w", "s", "a", "d", "shift"}

	v := Vehicle{}
	for i := 0; i < 5000; i++ {
		k := keys[rng.Intn(len(keys))]
		if in.IsHeld(k) {
			in.Release(k)
		} else {
			in.Press(k)
		}
		v, _ = it.Step(v, in, nil)
		limit := it.Cap(in.DriftEngaged())
		require.LessOrEqual(t, math.Abs(v.Speed), limit, "tick %d", i)
	}
}
