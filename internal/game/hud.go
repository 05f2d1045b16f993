package game

import (
	"fmt"

	"drift/internal/sim"
)

// HUD shows the score in the window title and as a row of pips above the
// play area, one pip per point up to the win score.
type HUD struct {
	score      int
	target     int
	track      string
	winPending bool

	setTitle func(string)
	title    string
}

func NewHUD(target int, setTitle func(string)) *HUD {
	return &HUD{target: target, setTitle: setTitle}
}

// DisplayScore implements sim.ScoreSink.
func (h *HUD) DisplayScore(score int) {
	h.score = score
	h.refresh()
}

func (h *HUD) SetTrack(name string) {
	h.track = name
	h.winPending = false
	h.refresh()
}

func (h *HUD) SetWinPending(v bool) {
	if h.winPending == v {
		return
	}
	h.winPending = v
	h.refresh()
}

func (h *HUD) Score() int { return h.score }

// Title is the current window title.
func (h *HUD) Title() string {
	t := fmt.Sprintf("%s | Score %d", windowTitle, h.score)
	if h.track != "" {
		t += " | " + h.track
	}
	if h.winPending {
		t += " | WIN!"
	}
	return t
}

// refresh pushes the title only when it changed.
func (h *HUD) refresh() {
	t := h.Title()
	if t == h.title {
		return
	}
	h.title = t
	if h.setTitle != nil {
		h.setTitle(t)
	}
}

type pip struct {
	Rect sim.RectF
	Lit  bool
}

// Pips lays out the score row in the HUD strip above area.
func (h *HUD) Pips(area sim.RectF) []pip {
	n := h.target
	if n <= 0 || area.Empty() {
		return nil
	}
	const gap = 2.0
	w := (area.Width() - gap*float64(n-1)) / float64(n)
	if w <= 0 {
		return nil
	}
	y1 := area.Y0 - ViewMargin*0.5
	y0 := y1 - (HUDHeight - ViewMargin)
	out := make([]pip, n)
	for i := range out {
		x0 := area.X0 + float64(i)*(w+gap)
		out[i] = pip{
			Rect: sim.RectF{X0: x0, Y0: y0, X1: x0 + w, Y1: y1},
			Lit:  i < h.score,
		}
	}
	return out
}
