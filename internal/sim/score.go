package sim

import (
	"math"
	"time"
)

// winTimer is the one-shot deferred win hook. It cannot be cancelled once
// scheduled; armed keeps a session from scheduling it twice.
type winTimer struct {
	pending bool
	armed   bool
	fireAt  time.Time
}

// Scorer turns drift time into score and schedules the win hook.
type Scorer struct {
	tuning  Tuning
	forward string
	clock   Clock

	score int
	win   winTimer
}

func NewScorer(tuning Tuning, forward string, clock Clock) *Scorer {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Scorer{
		tuning:  tuning,
		forward: NormalizeKey(forward),
		clock:   clock,
	}
}

func (s *Scorer) Score() int { return s.score }

// Tick recomputes the score from the current drift episode. While drifting
// with forward held the score is the whole seconds since drift was engaged;
// otherwise it stays where it is. Returns whether the score changed and
// whether the win hook was scheduled by this call.
func (s *Scorer) Tick(in *Input) (changed, scheduled bool) {
	if in.DriftEngaged() && in.IsHeld(s.forward) {
		next := int(math.Floor(in.DriftElapsedSeconds()))
		if next < 0 {
			next = 0
		}
		changed = next != s.score
		s.score = next
	}
	if s.tuning.WinScore > 0 && s.score >= s.tuning.WinScore {
		scheduled = s.scheduleWin()
	}
	return changed, scheduled
}

func (s *Scorer) scheduleWin() bool {
	if s.win.pending || s.win.armed {
		return false
	}
	s.win.pending = true
	s.win.armed = true
	s.win.fireAt = s.clock.Now().Add(s.tuning.WinDelay)
	return true
}

// WinPending reports a scheduled win hook that has not fired yet.
func (s *Scorer) WinPending() bool { return s.win.pending }

// PollWin reports true exactly once, on the first call at or after the
// scheduled fire time.
func (s *Scorer) PollWin() bool {
	if !s.win.pending {
		return false
	}
	if s.clock.Now().Before(s.win.fireAt) {
		return false
	}
	s.win.pending = false
	return true
}

// OnCollision zeroes the score and ends the drift episode. A pending win
// hook still fires; the next session may schedule its own.
func (s *Scorer) OnCollision(in *Input) {
	s.Reset(in)
}

// Reset clears the score, the win guard and the drift episode for a new
// session. A pending win hook is left to fire.
func (s *Scorer) Reset(in *Input) {
	s.score = 0
	s.win.armed = false
	if in != nil {
		in.resetDrift()
	}
}
