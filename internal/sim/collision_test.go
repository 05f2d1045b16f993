package sim

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestCollidesBoundary(t *testing.T) {
	bounds := RectF{X0: 0, Y0: 0, X1: 800, Y1: 600}

	tests := []struct {
		name string
		box  RectF
		want bool
	}{
		{"inside", RectF{X0: 390, Y0: 280, X1: 410, Y1: 320}, false},
		{"touching edges", RectF{X0: 0, Y0: 0, X1: 800, Y1: 600}, false},
		{"past left", RectF{X0: -0.5, Y0: 280, X1: 19.5, Y1: 320}, true},
		{"past right", RectF{X0: 790, Y0: 280, X1: 810, Y1: 320}, true},
		{"past top", RectF{X0: 390, Y0: -1, X1: 410, Y1: 39}, true},
		{"past bottom", RectF{X0: 390, Y0: 570, X1: 410, Y1: 610}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Collides(tt.box, bounds, nil))
		})
	}
}

func TestCollidesObstacle(t *testing.T) {
	bounds := RectF{X0: 0, Y0: 0, X1: 800, Y1: 600}
	// Vehicle centre (400, 300), radius 10.
	box := RectF{X0: 390, Y0: 280, X1: 410, Y1: 320}

	far := Circle{Center: mgl64.Vec2{500, 300}, Radius: 20}
	assert.False(t, Collides(box, bounds, []Circle{far}))

	// distance 30 == 20 + 10 is not a collision.
	grazing := Circle{Center: mgl64.Vec2{430, 300}, Radius: 20}
	assert.False(t, Collides(box, bounds, []Circle{grazing}))

	near := Circle{Center: mgl64.Vec2{429, 300}, Radius: 20}
	assert.True(t, Collides(box, bounds, []Circle{far, near}))
}

func TestCollidesBoundaryAndObstacle(t *testing.T) {
	bounds := RectF{X0: 0, Y0: 0, X1: 800, Y1: 600}
	box := RectF{X0: 790, Y0: 280, X1: 810, Y1: 320}
	overlap := Circle{Center: mgl64.Vec2{800, 300}, Radius: 15}

	assert.True(t, Collides(box, bounds, []Circle{overlap}))
	assert.True(t, Collides(box, bounds, nil))
	assert.True(t, Collides(box, RectF{}, []Circle{overlap}))
}

func TestCollidesIgnoresMissingGeometry(t *testing.T) {
	bounds := RectF{X0: 0, Y0: 0, X1: 800, Y1: 600}
	hit := Circle{Center: mgl64.Vec2{400, 300}, Radius: 50}

	assert.False(t, Collides(RectF{}, bounds, []Circle{hit}), "empty vehicle box")

	box := RectF{X0: 900, Y0: 900, X1: 920, Y1: 940}
	assert.False(t, Collides(box, RectF{}, nil), "empty bounds")

	inside := RectF{X0: 390, Y0: 280, X1: 410, Y1: 320}
	assert.False(t, Collides(inside, bounds, []Circle{{Center: mgl64.Vec2{400, 300}}}), "zero radius")
}

func TestCircleInRect(t *testing.T) {
	c := CircleInRect(RectF{X0: 100, Y0: 100, X1: 140, Y1: 140})
	assert.Equal(t, mgl64.Vec2{120, 120}, c.Center)
	assert.Equal(t, 20.0, c.Radius)
	assert.True(t, CircleInRect(RectF{}).Empty())
}
