package game

import "math"

type ParticleKind uint8

const (
	ParticleSmoke ParticleKind = iota
	ParticleSpark
	ParticleSkid
	ParticleConfetti
)

type Particle struct {
	X, Y   float64
	VX, VY float64

	Size float64

	Life    float64 // negative = delayed start
	MaxLife float64

	Col  RGB
	Kind ParticleKind
}

type ParticleSystem struct {
	Max    int
	P      []Particle
	seed   uint64
	ovrIdx int // circular overwrite index when full
}

func NewParticleSystem(maxParticles int, seed uint64) *ParticleSystem {
	if maxParticles <= 0 {
		maxParticles = MaxParticles
	}
	if seed == 0 {
		seed = 1
	}
	return &ParticleSystem{
		Max:  maxParticles,
		P:    make([]Particle, 0, maxParticles),
		seed: seed,
	}
}

func (ps *ParticleSystem) Clear() {
	ps.P = ps.P[:0]
	ps.ovrIdx = 0
}

func (ps *ParticleSystem) Add(p Particle) {
	if len(ps.P) < ps.Max {
		ps.P = append(ps.P, p)
		return
	}
	// Circular overwrite.
	if ps.ovrIdx >= ps.Max {
		ps.ovrIdx = 0
	}
	ps.P[ps.ovrIdx] = p
	ps.ovrIdx++
}

// ParticleRenderData splits particles into glow (additive) and normal
// (alpha blend) buffers. Skid marks go first in normBuf so smoke draws
// over them. Format: [x, y, size, r, g, b, a] * N.
func (ps *ParticleSystem) ParticleRenderData(glowBuf, normBuf []float32) ([]float32, []float32) {
	glowBuf = glowBuf[:0]
	normBuf = normBuf[:0]

	for pass := 0; pass < 2; pass++ {
		for _, p := range ps.P {
			if p.Life < 0 {
				continue
			}
			if (p.Kind == ParticleSkid) != (pass == 0) {
				continue
			}
			t := clampF(p.Life/p.MaxLife, 0, 1)

			a := 1.0 - t
			size := p.Size
			switch p.Kind {
			case ParticleSmoke:
				fadeIn := math.Min(t/0.15, 1)
				a = (1.0 - t) * fadeIn * 0.55
				size *= 1.0 + t*2.2
			case ParticleSpark:
				a = (1.0 - t) * 1.2
			case ParticleSkid:
				a = 0.5 * (1.0 - t*t)
			case ParticleConfetti:
				a = 1.0 - t*t
			}
			if a <= 0 {
				continue
			}

			rc, gc, bc := p.Col.Floats()
			ac := float32(clampF(a, 0, 1))
			sx := float32(p.X)
			sy := float32(p.Y)
			sz := float32(size)

			if p.Kind == ParticleSpark {
				// Additive: pre-multiply color by alpha.
				glowBuf = append(glowBuf, sx, sy, sz, rc*ac, gc*ac, bc*ac, ac)
			} else {
				normBuf = append(normBuf, sx, sy, sz, rc, gc, bc, ac)
			}
		}
	}
	return glowBuf, normBuf
}
