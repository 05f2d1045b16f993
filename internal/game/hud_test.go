package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drift/internal/sim"
)

func TestHUDTitle(t *testing.T) {
	var titles []string
	h := NewHUD(50, func(s string) { titles = append(titles, s) })

	h.DisplayScore(0)
	h.SetTrack("Slalom")
	h.DisplayScore(7)
	h.SetWinPending(true)

	assert.Equal(t, []string{
		"Drift | Score 0",
		"Drift | Score 0 | Slalom",
		"Drift | Score 7 | Slalom",
		"Drift | Score 7 | Slalom | WIN!",
	}, titles)
	assert.Equal(t, 7, h.Score())
}

func TestHUDSkipsUnchangedTitle(t *testing.T) {
	calls := 0
	h := NewHUD(50, func(string) { calls++ })

	h.DisplayScore(3)
	h.DisplayScore(3)
	h.SetWinPending(false)
	assert.Equal(t, 1, calls)
}

func TestHUDPips(t *testing.T) {
	h := NewHUD(50, nil)
	area := sim.RectF{X1: 800, Y1: 600}

	h.DisplayScore(12)
	pips := h.Pips(area)
	require.Len(t, pips, 50)

	lit := 0
	for i, p := range pips {
		if p.Lit {
			lit++
		}
		assert.Less(t, p.Rect.Y1, area.Y0, "pip %d must sit above the play area", i)
		if i > 0 {
			assert.Greater(t, p.Rect.X0, pips[i-1].Rect.X1)
		}
	}
	assert.Equal(t, 12, lit)
	assert.InDelta(t, area.X1, pips[49].Rect.X1, 1e-9)

	h.DisplayScore(80)
	for _, p := range h.Pips(area) {
		assert.True(t, p.Lit)
	}
}

func TestHUDPipsNeedTargetAndArea(t *testing.T) {
	assert.Nil(t, NewHUD(0, nil).Pips(sim.RectF{X1: 800, Y1: 600}))
	assert.Nil(t, NewHUD(50, nil).Pips(sim.RectF{}))
}
