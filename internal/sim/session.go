package sim

import (
	"io"

	"github.com/sirupsen/logrus"
)

type SessionState int

const (
	StateIdle    SessionState = iota
	StateRunning              // ticking; drift episodes toggle inside
)

func (s SessionState) String() string {
	if s == StateRunning {
		return "running"
	}
	return "idle"
}

// SessionConfig wires a session to its collaborators. Scene is required;
// everything else has a usable default.
type SessionConfig struct {
	Tuning Tuning
	Keys   Bindings
	Clock  Clock
	Scene  Scene
	Render Renderer
	Score  ScoreSink
	OnWin  func()
	Bus    *EventBus
	Log    logrus.FieldLogger
}

// Session owns the vehicle, input and score of one play-through and runs
// the per-tick pipeline.
type Session struct {
	log    logrus.FieldLogger
	scene  Scene
	render Renderer
	sink   ScoreSink
	onWin  func()
	bus    *EventBus

	input  *Input
	integ  Integrator
	scorer *Scorer

	vehicle   Vehicle
	state     SessionState
	lastDrift bool

	Ticks  uint64
	Resets int
	Wins   int
}

func NewSession(cfg SessionConfig) *Session {
	if cfg.Clock == nil {
		cfg.Clock = SystemClock{}
	}
	if cfg.Log == nil {
		l := logrus.New()
		l.Out = io.Discard
		cfg.Log = l
	}
	if cfg.Bus == nil {
		cfg.Bus = NewEventBus()
	}
	return &Session{
		log:    cfg.Log,
		scene:  cfg.Scene,
		render: cfg.Render,
		sink:   cfg.Score,
		onWin:  cfg.OnWin,
		bus:    cfg.Bus,
		input:  NewInput(cfg.Clock, cfg.Keys.Drift),
		integ:  Integrator{Tuning: cfg.Tuning, Keys: cfg.Keys},
		scorer: NewScorer(cfg.Tuning, cfg.Keys.Forward, cfg.Clock),
		state:  StateIdle,
	}
}

func (s *Session) Input() *Input { return s.input }
func (s *Session) Vehicle() Vehicle { return s.vehicle }
func (s *Session) State() SessionState { return s.state }
func (s *Session) Score() int { return s.scorer.Score() }
func (s *Session) WinPending() bool { return s.scorer.WinPending() }
func (s *Session) Bus() *EventBus { return s.bus }
func (s *Session) Integrator() Integrator { return s.integ }

// SetVehicle overrides the vehicle state, e.g. to restore a replay.
func (s *Session) SetVehicle(v Vehicle) { s.vehicle = v }

// CenterPose returns the start pose: vehicle centred in the play area,
// heading up.
func (s *Session) CenterPose() Pose {
	area := s.scene.PlayArea()
	box := s.scene.VehicleBox(Pose{})
	return Pose{
		X: area.X0 + area.Width()/2 - box.Width()/2,
		Y: area.Y0 + area.Height()/2 - box.Height()/2,
	}
}

// Start begins a fresh session: score, win guard and drift episode are
// cleared and the vehicle is placed at the centre.
func (s *Session) Start() {
	s.scorer.Reset(s.input)
	s.place()
	s.applyTransform()
}

func (s *Session) place() {
	p := s.CenterPose()
	s.vehicle = Vehicle{X: p.X, Y: p.Y}
	s.lastDrift = false
	s.state = StateRunning
	s.displayScore()
}

// Tick runs one frame: score, integrate with sub-step revert, collision
// reset, win hook, transform. A reverted candidate counts as a collision.
func (s *Session) Tick() {
	if s.state != StateRunning {
		s.place()
	}
	s.Ticks++

	changed, scheduled := s.scorer.Tick(s.input)
	if changed {
		s.displayScore()
		s.bus.Emit(Event{Type: EventScore, X: s.vehicle.X, Y: s.vehicle.Y, Score: s.Score()})
	}
	if scheduled {
		s.log.WithField("score", s.Score()).Debug("win scheduled")
		s.bus.Emit(Event{Type: EventWinScheduled, Score: s.Score()})
	}

	s.trackDrift()
	var hit bool
	s.vehicle, hit = s.integ.Step(s.vehicle, s.input, s.collides)
	if hit || s.collides(s.vehicle.Pose()) {
		s.reset()
	}

	if s.scorer.PollWin() {
		s.Wins++
		s.log.WithField("wins", s.Wins).Info("win")
		s.bus.Emit(Event{Type: EventWin, Score: s.Score()})
		if s.onWin != nil {
			s.onWin()
		}
	}

	s.applyTransform()
}

func (s *Session) trackDrift() {
	drift := s.input.DriftEngaged()
	if drift == s.lastDrift {
		return
	}
	s.lastDrift = drift
	e := Event{X: s.vehicle.X, Y: s.vehicle.Y, Angle: s.vehicle.Angle, Score: s.Score()}
	if drift {
		e.Type = EventDriftStart
		s.log.Debug("drift engaged")
	} else {
		e.Type = EventDriftEnd
		s.log.WithField("score", s.Score()).Debug("drift released")
	}
	s.bus.Emit(e)
}

func (s *Session) collides(p Pose) bool {
	return Collides(s.scene.VehicleBox(p), s.scene.PlayArea(), s.scene.Obstacles())
}

// reset handles a frame-level collision: score and drift cleared, session
// back to Idle and straight into Running at the start pose.
func (s *Session) reset() {
	hit := s.vehicle
	s.Resets++
	s.log.WithFields(logrus.Fields{
		"score":  s.Score(),
		"x":      hit.X,
		"y":      hit.Y,
		"resets": s.Resets,
	}).Info("collision, resetting session")
	s.bus.Emit(Event{Type: EventCollision, X: hit.X, Y: hit.Y, Angle: hit.Angle, Score: s.Score()})

	s.scorer.OnCollision(s.input)
	s.state = StateIdle
	s.place()
	s.bus.Emit(Event{Type: EventReset, X: s.vehicle.X, Y: s.vehicle.Y})
}

func (s *Session) displayScore() {
	if s.sink != nil {
		s.sink.DisplayScore(s.Score())
	}
}

func (s *Session) applyTransform() {
	if s.render != nil {
		s.render.ApplyTransform(s.vehicle.X, s.vehicle.Y, s.vehicle.Angle)
	}
}
