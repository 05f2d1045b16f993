package sim

import (
	"strings"
	"time"
)

// NormalizeKey turns a raw key identifier into the token the core matches
// against: trimmed and lower-case.
func NormalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// Input is the set of held control keys plus the drift flag. Key events and
// ticks run on the same goroutine, so it carries no lock.
type Input struct {
	clock    Clock
	driftKey string

	held       map[string]struct{}
	drift      bool
	driftStart time.Time // zero when unset
}

func NewInput(clock Clock, driftKey string) *Input {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Input{
		clock:    clock,
		driftKey: NormalizeKey(driftKey),
		held:     make(map[string]struct{}),
	}
}

// Press records a key-down. The drift modifier also engages drift and
// restarts the drift timer, unless drift is already engaged by a key that
// is still held.
func (in *Input) Press(key string) {
	k := NormalizeKey(key)
	if k == "" {
		return
	}
	_, wasHeld := in.held[k]
	in.held[k] = struct{}{}
	if k == in.driftKey && !(wasHeld && in.drift) {
		in.EngageDrift()
	}
}

// Repeat handles OS auto-repeat for a key that is already down. Only keys
// missed by an earlier Press are picked up; the drift timer is left alone.
func (in *Input) Repeat(key string) {
	k := NormalizeKey(key)
	if k == "" {
		return
	}
	if _, ok := in.held[k]; ok {
		return
	}
	in.Press(k)
}

// Release records a key-up. Releasing the drift modifier disengages drift
// but keeps the old drift start.
func (in *Input) Release(key string) {
	k := NormalizeKey(key)
	delete(in.held, k)
	if k == in.driftKey {
		in.DisengageDrift()
	}
}

// Clear drops every held key, e.g. when the window loses focus.
func (in *Input) Clear() {
	for k := range in.held {
		delete(in.held, k)
	}
	in.DisengageDrift()
}

func (in *Input) IsHeld(key string) bool {
	_, ok := in.held[NormalizeKey(key)]
	return ok
}

func (in *Input) EngageDrift() {
	in.drift = true
	in.driftStart = in.clock.Now()
}

func (in *Input) DisengageDrift() {
	in.drift = false
}

func (in *Input) DriftEngaged() bool { return in.drift }

// DriftStart returns the instant drift was last engaged.
func (in *Input) DriftStart() (time.Time, bool) {
	return in.driftStart, !in.driftStart.IsZero()
}

// DriftElapsedSeconds is the time since drift was last engaged. It is 0
// while the drift start is unset.
func (in *Input) DriftElapsedSeconds() float64 {
	if in.driftStart.IsZero() {
		return 0
	}
	return in.clock.Now().Sub(in.driftStart).Seconds()
}

// resetDrift disengages drift and forgets the drift start. Held keys stay
// held; the modifier has to be pressed again to drift.
func (in *Input) resetDrift() {
	in.drift = false
	in.driftStart = time.Time{}
}
