package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

func (c RGB) Add(dr, dg, db int) RGB {
	r := int(c.R) + dr
	g := int(c.G) + dg
	b := int(c.B) + db
	if r < 0 {
		r = 0
	} else if r > 255 {
		r = 255
	}
	if g < 0 {
		g = 0
	} else if g > 255 {
		g = 255
	}
	if b < 0 {
		b = 0
	} else if b > 255 {
		b = 255
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}

// Floats returns the colour as 0..1 components.
func (c RGB) Floats() (float32, float32, float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0
}

func lerpU8(a, b uint8, t float64) uint8 {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

func lerpRGB(a, b RGB, t float64) RGB {
	return RGB{R: lerpU8(a.R, b.R, t), G: lerpU8(a.G, b.G, t), B: lerpU8(a.B, b.B, t)}
}

var Palette = struct {
	Backdrop  RGB
	Asphalt   RGB
	Border    RGB
	Cone      RGB
	ConeRing  RGB
	CarBody   RGB
	CarDrift  RGB
	Window    RGB
	Smoke     RGB
	Spark     RGB
	PipOn     RGB
	PipOff    RGB
	PipTarget RGB
}{
	Backdrop:  RGB{R: 24, G: 26, B: 31},
	Asphalt:   RGB{R: 60, G: 66, B: 79},
	Border:    RGB{R: 214, G: 190, B: 153},
	Cone:      RGB{R: 236, G: 112, B: 40},
	ConeRing:  RGB{R: 245, G: 240, B: 230},
	CarBody:   RGB{R: 200, G: 48, B: 52},
	CarDrift:  RGB{R: 255, G: 150, B: 70},
	Window:    RGB{R: 140, G: 140, B: 140},
	Smoke:     RGB{R: 120, G: 120, B: 125},
	Spark:     RGB{R: 255, G: 210, B: 110},
	PipOn:     RGB{R: 100, G: 255, B: 100},
	PipOff:    RGB{R: 70, G: 74, B: 84},
	PipTarget: RGB{R: 255, G: 255, B: 100},
}
