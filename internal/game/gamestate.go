package game

import (
	"github.com/sirupsen/logrus"

	"drift/internal/sim"
)

// Run tracks progress across tracks: the current level, wins and the best
// score seen. The win hook only flags an advance; the frame loop applies it
// between ticks so the session is never restarted from inside its own Tick.
type Run struct {
	Level   int
	Wins    int
	Crashes int
	Best    int

	advance bool
	log     logrus.FieldLogger
}

func NewRun(level int, log logrus.FieldLogger) *Run {
	if level < 1 {
		level = 1
	}
	return &Run{Level: level, log: log}
}

// RequestAdvance is the session's win hook.
func (r *Run) RequestAdvance() {
	r.Wins++
	r.advance = true
}

func (r *Run) AdvancePending() bool { return r.advance }

// NoteScore keeps the best score.
func (r *Run) NoteScore(score int) {
	if score > r.Best {
		r.Best = score
	}
}

// StartLevel loads the track for level into scene and restarts the session
// on it.
func (r *Run) StartLevel(level int, scene *sim.StaticScene, session *sim.Session, particles *ParticleSystem, hud *HUD) {
	if level < 1 {
		level = 1
	}
	r.Level = level
	r.advance = false

	track := sim.GetTrack(level)
	scene.SetTrack(track)
	if particles != nil {
		particles.Clear()
	}
	if hud != nil {
		hud.SetTrack(track.Name)
	}
	session.Start()

	if r.log != nil {
		r.log.WithFields(logrus.Fields{
			"level":     level,
			"track":     track.Name,
			"obstacles": len(track.Obstacles),
		}).Info("track loaded")
	}
}

// AdvanceIfRequested moves to the next level when the win hook fired.
func (r *Run) AdvanceIfRequested(scene *sim.StaticScene, session *sim.Session, particles *ParticleSystem, hud *HUD) bool {
	if !r.advance {
		return false
	}
	r.StartLevel(r.Level+1, scene, session, particles, hud)
	return true
}
