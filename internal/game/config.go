package game

// Frame loop.
const (
	TickRate         = 60.0
	TickDt           = 1.0 / TickRate
	MaxTicksPerFrame = 5
	MaxFrameDt       = 0.1
)

// Margins around the play area (in play-area pixels). The top margin holds
// the score pips.
const (
	ViewMargin = 12.0
	HUDHeight  = 28.0
)

// Particles.
const (
	MaxParticles      = 4000
	MaxParticleRender = 4000
)

// Texture sizes.
const (
	CarTexSize     = 8
	DiscTexSize    = 64
	AsphaltTexSize = 64
)

// Shake on collision.
const (
	CrashShake         = 6.0
	CrashShakeDuration = 0.35
)
