package game

import (
	"math"

	"drift/internal/sim"
)

const (
	sparkBounce = 0.45
	sparkDrag   = 3.2
	smokeDrag   = 1.4
	confettiG   = 140.0
)

// particleDecays holds exponential drag factors precomputed once per frame.
type particleDecays struct {
	smoke    float64
	spark    float64
	confetti float64
}

func computeDecays(dt float64) particleDecays {
	return particleDecays{
		smoke:    math.Exp(-smokeDrag * dt),
		spark:    math.Exp(-sparkDrag * dt),
		confetti: math.Exp(-0.9 * dt),
	}
}

// Update advances all particles by dt. Sparks bounce off the edges of area;
// an empty area disables bouncing.
func (ps *ParticleSystem) Update(dt float64, area sim.RectF) {
	if dt <= 0 {
		return
	}
	d := computeDecays(dt)

	for i := 0; i < len(ps.P); {
		p := &ps.P[i]

		p.Life += dt
		if p.Life >= p.MaxLife {
			ps.P[i] = ps.P[len(ps.P)-1]
			ps.P = ps.P[:len(ps.P)-1]
			continue
		}
		// Skip delayed particles.
		if p.Life < 0 {
			i++
			continue
		}

		switch p.Kind {
		case ParticleSmoke:
			p.VX *= d.smoke
			p.VY *= d.smoke
		case ParticleSpark:
			p.VX *= d.spark
			p.VY *= d.spark
		case ParticleConfetti:
			p.VX *= d.confetti
			p.VY *= d.confetti
			p.VY += confettiG * dt
		case ParticleSkid:
			i++
			continue
		}
		p.X += p.VX * dt
		p.Y += p.VY * dt

		if p.Kind == ParticleSpark && !area.Empty() {
			bounceInside(p, area)
		}
		i++
	}
}

func bounceInside(p *Particle, area sim.RectF) {
	if p.X < area.X0 {
		p.X = area.X0 + (area.X0 - p.X)
		p.VX = -p.VX * sparkBounce
	} else if p.X > area.X1 {
		p.X = area.X1 - (p.X - area.X1)
		p.VX = -p.VX * sparkBounce
	}
	if p.Y < area.Y0 {
		p.Y = area.Y0 + (area.Y0 - p.Y)
		p.VY = -p.VY * sparkBounce
	} else if p.Y > area.Y1 {
		p.Y = area.Y1 - (p.Y - area.Y1)
		p.VY = -p.VY * sparkBounce
	}
}
