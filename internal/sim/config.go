package sim

import "time"

// Vehicle handling defaults, per tick at 60 Hz.
const (
	DefaultMaxSpeed      = 4.0
	DefaultDriftSpeed    = 3.0 // cap while drifting, kept below DefaultMaxSpeed
	DefaultAcceleration  = 0.1
	DefaultDeceleration  = 0.05
	DefaultTurnRate      = 2.0 // degrees per tick
	DefaultDriftTurnRate = 3.0
)

// Scoring.
const (
	DefaultWinScore = 50
	DefaultWinDelay = 2 * time.Second
)

// Vehicle footprint in play-area pixels. Heading 0 points up, so the
// rectangle is taller than it is wide.
const (
	DefaultVehicleWidth  = 20.0
	DefaultVehicleHeight = 40.0
)

// Default key tokens.
const (
	KeyForward = "w"
	KeyBack    = "s"
	KeyLeft    = "a"
	KeyRight   = "d"
	KeyDrift   = "shift"
)

// Tuning holds the handling and scoring parameters of one session.
type Tuning struct {
	MaxSpeed      float64
	DriftSpeed    float64
	Acceleration  float64
	Deceleration  float64
	TurnRate      float64
	DriftTurnRate float64

	WinScore int
	WinDelay time.Duration
}

func DefaultTuning() Tuning {
	return Tuning{
		MaxSpeed:      DefaultMaxSpeed,
		DriftSpeed:    DefaultDriftSpeed,
		Acceleration:  DefaultAcceleration,
		Deceleration:  DefaultDeceleration,
		TurnRate:      DefaultTurnRate,
		DriftTurnRate: DefaultDriftTurnRate,
		WinScore:      DefaultWinScore,
		WinDelay:      DefaultWinDelay,
	}
}

// Bindings maps control actions to normalized key tokens.
type Bindings struct {
	Forward string
	Back    string
	Left    string
	Right   string
	Drift   string
}

func DefaultBindings() Bindings {
	return Bindings{
		Forward: KeyForward,
		Back:    KeyBack,
		Left:    KeyLeft,
		Right:   KeyRight,
		Drift:   KeyDrift,
	}
}
