package game

import (
	"math"

	"drift/internal/sim"
)

// Texture pixels are RGBA8, row-major, s*s.

func solidPixels(s int, col RGB) []uint8 {
	pix := make([]uint8, s*s*4)
	for i := 0; i < s*s; i++ {
		pix[i*4+0] = col.R
		pix[i*4+1] = col.G
		pix[i*4+2] = col.B
		pix[i*4+3] = 255
	}
	return pix
}

// asphaltPixels is a light grey speckle, tinted by the asphalt colour at
// draw time.
func asphaltPixels(s int, seed uint64) []uint8 {
	pix := make([]uint8, s*s*4)
	r := sim.NewRand(seed)
	for i := 0; i < s*s; i++ {
		v := uint8(215 + r.Range(-18, 18))
		if r.Intn(37) == 0 {
			v = 255
		}
		pix[i*4+0] = v
		pix[i*4+1] = v
		pix[i*4+2] = v
		pix[i*4+3] = 255
	}
	return pix
}

// discPixels is a white disc with an anti-aliased edge and a slight
// top-left highlight.
func discPixels(s int) []uint8 {
	pix := make([]uint8, s*s*4)
	half := float64(s) * 0.5
	for y := 0; y < s; y++ {
		for x := 0; x < s; x++ {
			dx := (float64(x) + 0.5 - half) / half
			dy := (float64(y) + 0.5 - half) / half
			d := math.Hypot(dx, dy)
			a := clampF((1.0-d)*half*0.5, 0, 1)
			shade := 0.82 + 0.18*clampF(-(dx+dy)*0.7, 0, 1)
			v := uint8(255 * shade)
			i := (y*s + x) * 4
			pix[i+0] = v
			pix[i+1] = v
			pix[i+2] = v
			pix[i+3] = uint8(255 * a)
		}
	}
	return pix
}

// carPixels is the top view of the car, nose at row 0: bumper, bonnet,
// windscreen, roof, rear window, boot. Body rows are white so the tint
// picks the paint; glass stays grey.
func carPixels(s int) []uint8 {
	pix := make([]uint8, s*s*4)
	body := RGB{R: 255, G: 255, B: 255}
	roof := body.Mul(200)
	glass := Palette.Window
	lamp := RGB{R: 255, G: 250, B: 200}

	set := func(x, y int, col RGB) {
		i := (y*s + x) * 4
		pix[i+0] = col.R
		pix[i+1] = col.G
		pix[i+2] = col.B
		pix[i+3] = 255
	}

	bands := []struct {
		h   int
		col RGB
	}{
		{1, body},  // bumper
		{1, body},  // bonnet
		{1, glass}, // windscreen
		{2, roof},  // roof
		{1, glass}, // rear window
		{2, body},  // boot
	}
	y := 0
	for _, b := range bands {
		for row := 0; row < b.h && y < s; row++ {
			for x := 0; x < s; x++ {
				set(x, y, b.col)
			}
			y++
		}
	}
	for ; y < s; y++ {
		for x := 0; x < s; x++ {
			set(x, y, body)
		}
	}
	if s >= 4 {
		set(0, 0, lamp)
		set(s-1, 0, lamp)
	}
	return pix
}
