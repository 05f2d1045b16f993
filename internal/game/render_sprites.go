package game

import "github.com/go-gl/gl/v4.1-core/gl"

// DrawSprites renders an array of point sprites using the sprite program.
// buf format: [x, y, size, r, g, b, a] * N.
// additive: true = additive (glow-like), false = standard alpha blend.
func (r *Renderer) DrawSprites(buf []float32, additive bool) {
	if len(buf) == 0 {
		return
	}
	count := len(buf) / spriteStride
	if count > MaxParticleRender {
		count = MaxParticleRender
	}

	gl.UseProgram(r.spriteProg)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)

	gl.Uniform2f(r.spUCamera, float32(r.cam.X), float32(r.cam.Y))
	gl.Uniform1f(r.spUZoom, float32(r.cam.Zoom))
	gl.Uniform2f(r.spUResolution, float32(r.fbW), float32(r.fbH))

	gl.Enable(gl.BLEND)
	if additive {
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)
	} else {
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	}

	gl.BufferData(gl.ARRAY_BUFFER, count*spriteStride*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))

	gl.Disable(gl.BLEND)
}

// DrawGlowSprites renders light sprites with additive blending and radial falloff.
// RGB values should be pre-multiplied by desired brightness.
func (r *Renderer) DrawGlowSprites(buf []float32) {
	if len(buf) == 0 {
		return
	}
	count := len(buf) / spriteStride
	if count > MaxParticleRender {
		count = MaxParticleRender
	}
	gl.UseProgram(r.glowProg)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)
	gl.Uniform2f(r.glowUCamera, float32(r.cam.X), float32(r.cam.Y))
	gl.Uniform1f(r.glowUZoom, float32(r.cam.Zoom))
	gl.Uniform2f(r.glowUResolution, float32(r.fbW), float32(r.fbH))
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE)
	gl.BufferData(gl.ARRAY_BUFFER, count*spriteStride*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))
	gl.Disable(gl.BLEND)
}
