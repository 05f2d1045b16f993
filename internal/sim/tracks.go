package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Play area defaults (in play-area pixels).
const (
	TrackWidth  = 800.0
	TrackHeight = 600.0

	// Obstacles never reach inside this radius around the start pose.
	startClearance = 120.0
	edgeMargin     = 24.0
)

// Track is a rectangular play area with round obstacles.
type Track struct {
	Name      string
	Width     float64
	Height    float64
	Obstacles []Circle
}

func (t Track) Bounds() RectF {
	return RectF{X0: 0, Y0: 0, X1: t.Width, Y1: t.Height}
}

func cone(x, y, r float64) Circle {
	return Circle{Center: mgl64.Vec2{x, y}, Radius: r}
}

// GetTrack returns the layout for a level. Levels 1–4 are hand-placed;
// beyond that rings of obstacles are generated from the level number.
func GetTrack(level int) Track {
	w, h := TrackWidth, TrackHeight
	cx, cy := w/2, h/2

	switch level {
	case 1:
		// Open lot with a cone in each quadrant.
		return Track{Name: "Open Lot", Width: w, Height: h, Obstacles: []Circle{
			cone(160, 130, 26), cone(640, 130, 26),
			cone(160, 470, 26), cone(640, 470, 26),
		}}
	case 2:
		// Hexagon of pillars around the start.
		t := Track{Name: "Roundabout", Width: w, Height: h}
		t.Obstacles = ring(cx, cy, 200, 6, 0, 24)
		return t
	case 3:
		// Slalom: two staggered rows.
		t := Track{Name: "Slalom", Width: w, Height: h}
		for i := 0; i < 5; i++ {
			x := 120 + float64(i)*140
			t.Obstacles = append(t.Obstacles, cone(x, 150, 20), cone(x+70, 450, 20))
		}
		return t
	case 4:
		// Tight ring plus corner posts.
		t := Track{Name: "Bowl", Width: w, Height: h}
		t.Obstacles = ring(cx, cy, 170, 8, math.Pi/8, 18)
		t.Obstacles = append(t.Obstacles,
			cone(70, 70, 30), cone(w-70, 70, 30),
			cone(70, h-70, 30), cone(w-70, h-70, 30))
		return t
	}

	return generatedTrack(level)
}

// ring places n obstacles of radius r on a circle around (cx, cy).
func ring(cx, cy, radius float64, n int, phase, r float64) []Circle {
	out := make([]Circle, 0, n)
	for i := 0; i < n; i++ {
		a := phase + 2*math.Pi*float64(i)/float64(n)
		out = append(out, cone(cx+math.Cos(a)*radius, cy+math.Sin(a)*radius, r))
	}
	return out
}

func generatedTrack(level int) Track {
	if level < 1 {
		level = 1
	}
	w, h := TrackWidth, TrackHeight
	cx, cy := w/2, h/2
	rng := NewRand(splitmix64(uint64(level)))

	t := Track{Name: "Proving Ground", Width: w, Height: h}
	rings := 1 + (level-5)/3
	if rings > 3 {
		rings = 3
	}
	maxReach := math.Min(cx, cy) - edgeMargin
	for i := 0; i < rings; i++ {
		r := rng.RangeF(12, 22)
		lo := startClearance + r + float64(i)*50
		hi := math.Min(lo+40, maxReach-r)
		if hi < lo {
			break
		}
		radius := rng.RangeF(lo, hi)
		n := rng.Range(5, 9)
		t.Obstacles = append(t.Obstacles, ring(cx, cy, radius, n, rng.RangeF(0, math.Pi), r)...)
	}
	return t
}
