package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"drift/internal/sim"
)

// SpawnTireSmoke puffs smoke and lays a skid mark at each rear wheel.
// intensity scales with speed, 0..1.
func (ps *ParticleSystem) SpawnTireSmoke(wheels [2]mgl64.Vec2, intensity float64, tick uint64) {
	if intensity <= 0 {
		return
	}
	r := sim.NewRand(ps.seed ^ tick*0x9E3779B97F4A7C15)
	for _, w := range wheels {
		ps.Add(Particle{
			X: w.X(), Y: w.Y(),
			Size: 5, MaxLife: 6.0,
			Col: RGB{R: 25, G: 25, B: 28}, Kind: ParticleSkid,
		})
		for range 1 + int(2*intensity) {
			ang := r.RangeF(0, math.Pi*2)
			spd := r.RangeF(6, 24) * intensity
			ps.Add(Particle{
				X: w.X() + r.RangeF(-2, 2), Y: w.Y() + r.RangeF(-2, 2),
				VX: math.Cos(ang) * spd, VY: math.Sin(ang) * spd,
				Size: 7 + r.RangeF(0, 5), MaxLife: r.RangeF(0.6, 1.3),
				Col:  Palette.Smoke.Add(r.Range(-10, 10), r.Range(-10, 10), r.Range(-10, 10)),
				Kind: ParticleSmoke,
			})
		}
	}
}

// SpawnCrashSparks bursts sparks and a little smoke at (x, y).
func (ps *ParticleSystem) SpawnCrashSparks(x, y float64, intensity float64) {
	if intensity <= 0 {
		return
	}
	r := sim.NewRand(ps.seed ^ math.Float64bits(x)*31 ^ math.Float64bits(y))

	for range int(40 * intensity) {
		ang := r.RangeF(0, math.Pi*2)
		spd := r.RangeF(80, 260) * intensity
		ps.Add(Particle{
			X: x + r.RangeF(-3, 3), Y: y + r.RangeF(-3, 3),
			VX: math.Cos(ang) * spd, VY: math.Sin(ang) * spd,
			Size: 2 + r.RangeF(0, 2), MaxLife: r.RangeF(0.2, 0.55),
			Col: Palette.Spark, Kind: ParticleSpark,
		})
	}
	for range int(12*intensity) + 4 {
		ang := r.RangeF(0, math.Pi*2)
		spd := r.RangeF(5, 30)
		ps.Add(Particle{
			X: x + r.RangeF(-4, 4), Y: y + r.RangeF(-4, 4),
			VX: math.Cos(ang) * spd, VY: math.Sin(ang) * spd,
			Size: 10 + r.RangeF(0, 8), Life: -r.RangeF(0, 0.1), MaxLife: r.RangeF(0.8, 1.6),
			Col: Palette.Smoke.Mul(160), Kind: ParticleSmoke,
		})
	}
}

// SpawnConfetti throws confetti up from the bottom edge of area.
func (ps *ParticleSystem) SpawnConfetti(area sim.RectF, count int) {
	if area.Empty() || count <= 0 {
		return
	}
	colours := []RGB{Palette.PipOn, Palette.PipTarget, Palette.CarDrift, Palette.ConeRing, Palette.Cone}
	r := sim.NewRand(ps.seed ^ uint64(count)*0xC0FFEE)
	for i := range count {
		ps.Add(Particle{
			X: r.RangeF(area.X0, area.X1), Y: area.Y1,
			VX: r.RangeF(-60, 60), VY: -r.RangeF(180, 340),
			Size: 3 + r.RangeF(0, 2), Life: -r.RangeF(0, 0.4), MaxLife: r.RangeF(1.6, 2.6),
			Col: colours[i%len(colours)], Kind: ParticleConfetti,
		})
	}
}
