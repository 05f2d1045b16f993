package game

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"drift/internal/sim"
)

// spriteStride is the float count per sprite: x, y, size, r, g, b, a.
const spriteStride = 7

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type Renderer struct {
	// Quad program.
	quadProg uint32
	quadVAO  uint32
	quadVBO  uint32

	uOrigin     int32
	uSize       int32
	uRotation   int32
	uCamera     int32
	uZoom       int32
	uResolution int32
	uTex        int32
	uTint       int32
	uUVScale    int32

	// Sprite program.
	spriteProg uint32
	spriteVAO  uint32
	spriteVBO  uint32

	spUCamera     int32
	spUZoom       int32
	spUResolution int32

	// Glow program, shares spriteVAO.
	glowProg        uint32
	glowUCamera     int32
	glowUZoom       int32
	glowUResolution int32

	whiteTex   uint32
	asphaltTex uint32
	discTex    uint32
	carTex     uint32

	cam      Camera
	fbW, fbH int

	// Last pose handed over by the session.
	pose    sim.Pose
	hasPose bool
}

func NewRenderer() (*Renderer, error) {
	quadProg, err := linkProgram(quadVertSrc, quadFragSrc)
	if err != nil {
		return nil, fmt.Errorf("quad program: %w", err)
	}
	spriteProg, err := linkProgram(spriteVertSrc, spriteFragSrc)
	if err != nil {
		gl.DeleteProgram(quadProg)
		return nil, fmt.Errorf("sprite program: %w", err)
	}
	glowProg, err := linkProgram(spriteVertSrc, glowFragSrc)
	if err != nil {
		gl.DeleteProgram(quadProg)
		gl.DeleteProgram(spriteProg)
		return nil, fmt.Errorf("glow program: %w", err)
	}

	r := &Renderer{
		quadProg:   quadProg,
		spriteProg: spriteProg,
		glowProg:   glowProg,
	}

	// Quad VAO/VBO: a unit quad (6 vertices, 2 triangles).
	var qVAO, qVBO uint32
	gl.GenVertexArrays(1, &qVAO)
	gl.GenBuffers(1, &qVBO)
	gl.BindVertexArray(qVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, qVBO)

	quadVerts := [12]float32{
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVerts)*4, gl.Ptr(&quadVerts[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))
	r.quadVAO = qVAO
	r.quadVBO = qVBO

	gl.UseProgram(quadProg)
	r.uOrigin = gl.GetUniformLocation(quadProg, gl.Str("uOrigin\x00"))
	r.uSize = gl.GetUniformLocation(quadProg, gl.Str("uSize\x00"))
	r.uRotation = gl.GetUniformLocation(quadProg, gl.Str("uRotation\x00"))
	r.uCamera = gl.GetUniformLocation(quadProg, gl.Str("uCamera\x00"))
	r.uZoom = gl.GetUniformLocation(quadProg, gl.Str("uZoom\x00"))
	r.uResolution = gl.GetUniformLocation(quadProg, gl.Str("uResolution\x00"))
	r.uTex = gl.GetUniformLocation(quadProg, gl.Str("uTex\x00"))
	r.uTint = gl.GetUniformLocation(quadProg, gl.Str("uTint\x00"))
	r.uUVScale = gl.GetUniformLocation(quadProg, gl.Str("uUVScale\x00"))
	gl.Uniform1i(r.uTex, 0)
	gl.Uniform4f(r.uTint, 1, 1, 1, 1, 1)
	gl.Uniform2f(r.uUVScale, 1, 1, 1)

	// Sprite VAO/VBO: streaming buffer for point sprites.
	var sVAO, sVBO uint32
	gl.GenVertexArrays(1, &sVAO)
	gl.GenBuffers(1, &sVBO)
	gl.BindVertexArray(sVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, sVBO)

	stride := int32(spriteStride * 4)
	gl.BufferData(gl.ARRAY_BUFFER, MaxParticleRender*int(stride), nil, gl.STREAM_DRAW)
	// aWorldPos (vec2)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	// aSize (float)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	// aColor (vec4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))
	r.spriteVAO = sVAO
	r.spriteVBO = sVBO

	gl.UseProgram(spriteProg)
	r.spUCamera = gl.GetUniformLocation(spriteProg, gl.Str("uCamera\x00"))
	r.spUZoom = gl.GetUniformLocation(spriteProg, gl.Str("uZoom\x00"))
	r.spUResolution = gl.GetUniformLocation(spriteProg, gl.Str("uResolution\x00"))

	gl.UseProgram(glowProg)
	r.glowUCamera = gl.GetUniformLocation(glowProg, gl.Str("uCamera\x00"))
	r.glowUZoom = gl.GetUniformLocation(glowProg, gl.Str("uZoom\x00"))
	r.glowUResolution = gl.GetUniformLocation(glowProg, gl.Str("uResolution\x00"))

	gl.BindVertexArray(0)

	r.whiteTex = uploadTexture(solidPixels(1, RGB{R: 255, G: 255, B: 255}), 1, gl.NEAREST, gl.CLAMP_TO_EDGE)
	r.asphaltTex = uploadTexture(asphaltPixels(AsphaltTexSize, 0xA5F4A17), AsphaltTexSize, gl.NEAREST, gl.REPEAT)
	r.discTex = uploadTexture(discPixels(DiscTexSize), DiscTexSize, gl.LINEAR, gl.CLAMP_TO_EDGE)
	r.carTex = uploadTexture(carPixels(CarTexSize), CarTexSize, gl.NEAREST, gl.CLAMP_TO_EDGE)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.quadVBO, r.spriteVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.quadVAO, r.spriteVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.quadProg, r.spriteProg, r.glowProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	for _, id := range []uint32{r.whiteTex, r.asphaltTex, r.discTex, r.carTex} {
		if id != 0 {
			gl.DeleteTextures(1, &id)
		}
	}
}

// ApplyTransform records the vehicle pose for the next DrawVehicle.
func (r *Renderer) ApplyTransform(x, y, angleDeg float64) {
	r.pose = sim.Pose{X: x, Y: y, Angle: angleDeg}
	r.hasPose = true
}

// Pose returns the last pose applied and whether one has been applied.
func (r *Renderer) Pose() (sim.Pose, bool) { return r.pose, r.hasPose }

func (r *Renderer) BeginFrame(cam Camera, fbW, fbH int) {
	r.cam = cam
	r.fbW, r.fbH = fbW, fbH

	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	cr, cg, cb := Palette.Backdrop.Floats()
	gl.ClearColor(cr, cg, cb, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(r.quadProg)
	gl.BindVertexArray(r.quadVAO)
	gl.Uniform2f(r.uCamera, float32(cam.X), float32(cam.Y))
	gl.Uniform1f(r.uZoom, float32(cam.Zoom))
	gl.Uniform2f(r.uResolution, float32(fbW), float32(fbH))
	gl.ActiveTexture(gl.TEXTURE0)
}

// drawQuad draws tex stretched over the w*h rectangle whose top-left is
// (x, y), rotated by rot radians about its centre.
func (r *Renderer) drawQuad(tex uint32, x, y, w, h, rot float64, col RGB, alpha float32, uvX, uvY float32) {
	gl.UseProgram(r.quadProg)
	gl.BindVertexArray(r.quadVAO)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	cr, cg, cb := col.Floats()
	gl.Uniform4f(r.uTint, cr, cg, cb, alpha)
	gl.Uniform2f(r.uOrigin, float32(x), float32(y))
	gl.Uniform2f(r.uSize, float32(w), float32(h))
	gl.Uniform1f(r.uRotation, float32(rot))
	gl.Uniform2f(r.uUVScale, uvX, uvY)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)

	gl.Disable(gl.BLEND)
}

// DrawPlayArea draws the asphalt with a painted border around it.
func (r *Renderer) DrawPlayArea(area sim.RectF) {
	if area.Empty() {
		return
	}
	const border = 4.0
	r.drawQuad(r.whiteTex, area.X0-border, area.Y0-border,
		area.Width()+2*border, area.Height()+2*border, 0, Palette.Border, 1, 1, 1)
	tile := float64(AsphaltTexSize * 2)
	r.drawQuad(r.asphaltTex, area.X0, area.Y0, area.Width(), area.Height(), 0, Palette.Asphalt, 1,
		float32(area.Width()/tile), float32(area.Height()/tile))
}

// DrawObstacles draws each non-empty circle as a cone seen from above.
func (r *Renderer) DrawObstacles(obstacles []sim.Circle) {
	for _, o := range obstacles {
		if o.Empty() {
			continue
		}
		d := o.Radius * 2
		x := o.Center.X() - o.Radius
		y := o.Center.Y() - o.Radius
		r.drawQuad(r.discTex, x+2, y+3, d, d, 0, RGB{}, 0.35, 1, 1)
		r.drawQuad(r.discTex, x, y, d, d, 0, Palette.Cone, 1, 1, 1)
		tip := o.Radius * 0.35
		r.drawQuad(r.discTex, o.Center.X()-tip, o.Center.Y()-tip, tip*2, tip*2, 0, Palette.ConeRing, 1, 1, 1)
	}
}

// DrawVehicle draws the car at the last applied pose.
func (r *Renderer) DrawVehicle(w, h float64, drifting bool) {
	if !r.hasPose {
		return
	}
	body := Palette.CarBody
	if drifting {
		body = lerpRGB(Palette.CarBody, Palette.CarDrift, 0.45)
	}
	rot := r.pose.Angle * math.Pi / 180
	r.drawQuad(r.carTex, r.pose.X, r.pose.Y, w, h, rot, body, 1, 1, 1)
}

// DrawRect fills an axis-aligned rectangle, used by the HUD.
func (r *Renderer) DrawRect(x, y, w, h float64, col RGB, alpha float32) {
	r.drawQuad(r.whiteTex, x, y, w, h, 0, col, alpha, 1, 1)
}

func uploadTexture(pix []uint8, s int, filter, wrap int32) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(s), int32(s), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	return tex
}
