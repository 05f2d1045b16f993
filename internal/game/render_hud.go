package game

import "drift/internal/sim"

// DrawHUD draws the score pips. The whole row turns gold once the score
// reaches the target.
func (r *Renderer) DrawHUD(h *HUD, area sim.RectF) {
	won := h.target > 0 && h.score >= h.target
	for _, p := range h.Pips(area) {
		col := Palette.PipOff
		switch {
		case won:
			col = Palette.PipTarget
		case p.Lit:
			col = Palette.PipOn
		}
		r.DrawRect(p.Rect.X0, p.Rect.Y0, p.Rect.Width(), p.Rect.Height(), col, 1)
	}
}
