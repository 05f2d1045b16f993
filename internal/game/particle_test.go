package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drift/internal/sim"
)

func TestParticleSystemOverwritesWhenFull(t *testing.T) {
	ps := NewParticleSystem(3, 7)
	for i := range 5 {
		ps.Add(Particle{X: float64(i), MaxLife: 1})
	}
	require.Len(t, ps.P, 3)
	assert.Equal(t, []float64{3, 4, 2}, []float64{ps.P[0].X, ps.P[1].X, ps.P[2].X})

	ps.Clear()
	assert.Empty(t, ps.P)
}

func TestParticleUpdateExpires(t *testing.T) {
	ps := NewParticleSystem(8, 1)
	ps.Add(Particle{Kind: ParticleSmoke, MaxLife: 0.1})
	ps.Add(Particle{Kind: ParticleSmoke, MaxLife: 1.0})
	ps.Add(Particle{Kind: ParticleSmoke, MaxLife: 1.0, Life: -0.5})

	ps.Update(0.2, sim.RectF{})
	require.Len(t, ps.P, 2)

	ps.Update(0.9, sim.RectF{})
	require.Len(t, ps.P, 1)
	assert.InDelta(t, 0.6, ps.P[0].Life, 1e-9)
}

func TestParticleUpdateIgnoresNonPositiveDt(t *testing.T) {
	ps := NewParticleSystem(8, 1)
	ps.Add(Particle{Kind: ParticleSpark, VX: 10, MaxLife: 1})
	ps.Update(0, sim.RectF{})
	assert.Zero(t, ps.P[0].X)
	assert.Zero(t, ps.P[0].Life)
}

func TestSparksBounceInsideArea(t *testing.T) {
	area := sim.RectF{X1: 100, Y1: 100}
	ps := NewParticleSystem(8, 1)
	ps.Add(Particle{Kind: ParticleSpark, X: 99, Y: 1, VX: 200, VY: -200, MaxLife: 5})

	ps.Update(0.05, area)
	p := ps.P[0]
	assert.GreaterOrEqual(t, p.X, area.X0)
	assert.LessOrEqual(t, p.X, area.X1)
	assert.GreaterOrEqual(t, p.Y, area.Y0)
	assert.Less(t, p.VX, 0.0)
	assert.Greater(t, p.VY, 0.0)
}

func TestSkidMarksStayPut(t *testing.T) {
	ps := NewParticleSystem(8, 1)
	ps.Add(Particle{Kind: ParticleSkid, X: 5, Y: 6, VX: 50, MaxLife: 3})
	ps.Update(0.5, sim.RectF{})
	assert.Equal(t, 5.0, ps.P[0].X)
	assert.Equal(t, 6.0, ps.P[0].Y)
}

func TestParticleRenderDataSplitsPasses(t *testing.T) {
	ps := NewParticleSystem(8, 1)
	ps.Add(Particle{Kind: ParticleSmoke, X: 1, Size: 4, Life: 0.5, MaxLife: 1, Col: Palette.Smoke})
	ps.Add(Particle{Kind: ParticleSpark, X: 2, Size: 2, Life: 0.1, MaxLife: 1, Col: Palette.Spark})
	ps.Add(Particle{Kind: ParticleSkid, X: 3, Size: 5, Life: 0.1, MaxLife: 1})
	ps.Add(Particle{Kind: ParticleSmoke, X: 4, Size: 4, Life: -1, MaxLife: 1})

	glow, norm := ps.ParticleRenderData(nil, nil)
	require.Len(t, glow, spriteStride)
	require.Len(t, norm, 2*spriteStride)
	assert.Equal(t, float32(2), glow[0])
	assert.Equal(t, float32(3), norm[0], "skid marks draw under smoke")
	assert.Equal(t, float32(1), norm[spriteStride])
}

func TestSpawners(t *testing.T) {
	ps := NewParticleSystem(MaxParticles, 3)

	ps.SpawnTireSmoke([2]mgl64.Vec2{{10, 10}, {20, 10}}, 0, 1)
	assert.Empty(t, ps.P)
	ps.SpawnTireSmoke([2]mgl64.Vec2{{10, 10}, {20, 10}}, 1, 1)
	skids := 0
	for _, p := range ps.P {
		if p.Kind == ParticleSkid {
			skids++
		}
	}
	assert.Equal(t, 2, skids)

	ps.Clear()
	ps.SpawnCrashSparks(50, 50, 1)
	assert.NotEmpty(t, ps.P)

	ps.Clear()
	ps.SpawnConfetti(sim.RectF{X1: 800, Y1: 600}, 40)
	assert.Len(t, ps.P, 40)
	ps.SpawnConfetti(sim.RectF{}, 40)
	assert.Len(t, ps.P, 40)
}
