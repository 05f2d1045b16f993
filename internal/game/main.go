package game

import (
	"fmt"
	"math"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/sirupsen/logrus"

	"drift/internal/config"
	"drift/internal/sim"
)

// RunDesktop opens the game window and runs the fixed-step loop until the
// window closes or Escape is pressed.
func RunDesktop(cfg config.Config, log *logrus.Logger) error {
	runtime.LockOSThread()

	window, err := initWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	log.WithField("gl", gl.GoStr(gl.GetString(gl.VERSION))).Debug("gl ready")

	if err := InitAudio(); err != nil {
		log.WithError(err).Warn("audio init failed, continuing without sound")
	}

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	keys := cfg.Keys()
	scene := sim.NewStaticScene(sim.GetTrack(cfg.Track), cfg.VehicleWidth, cfg.VehicleHeight)
	hud := NewHUD(cfg.Tuning.WinScore, window.SetTitle)
	run := NewRun(cfg.Track, log)
	bus := sim.NewEventBus()
	session := sim.NewSession(sim.SessionConfig{
		Tuning: cfg.Tuning,
		Keys:   keys,
		Scene:  scene,
		Render: rend,
		Score:  hud,
		OnWin:  run.RequestAdvance,
		Bus:    bus,
		Log:    log,
	})
	particles := NewParticleSystem(MaxParticles, uint64(time.Now().UnixNano()))
	var cam Camera

	bindInput(window, session.Input())

	vw, vh := scene.VehicleSize()
	bus.Subscribe(sim.EventCollision, func(e sim.Event) {
		run.Crashes++
		PlaySound(SoundCrash)
		cam.AddShake(CrashShake, CrashShakeDuration)
		particles.SpawnCrashSparks(e.X+vw*0.5, e.Y+vh*0.5, 1.0)
	})
	bus.Subscribe(sim.EventDriftStart, func(sim.Event) {
		PlaySound(SoundSkid)
	})
	bus.Subscribe(sim.EventScore, func(e sim.Event) {
		run.NoteScore(e.Score)
		PlaySound(SoundPoint)
	})
	bus.Subscribe(sim.EventWinScheduled, func(sim.Event) {
		particles.SpawnConfetti(scene.PlayArea(), 160)
	})
	bus.Subscribe(sim.EventWin, func(e sim.Event) {
		PlaySound(SoundWin)
		log.WithFields(logrus.Fields{"level": run.Level, "score": e.Score}).Info("track complete")
	})

	run.StartLevel(cfg.Track, scene, session, particles, hud)
	PlaySound(SoundStart)

	// Reusable render buffers.
	var glowBuf, normBuf, shadowBuf, lightBuf []float32

	acc := 0.0
	last := glfw.GetTime()
	statsAt := last
	frames := 0
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > MaxFrameDt {
			dt = MaxFrameDt
		}

		glfw.PollEvents()

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		acc += dt
		ticks := 0
		for acc >= TickDt && ticks < MaxTicksPerFrame {
			session.Tick()
			v := session.Vehicle()
			if v.Drift && math.Abs(v.Speed) > 0.2 {
				intensity := math.Abs(v.Speed) / session.Integrator().Cap(true)
				particles.SpawnTireSmoke(RearWheels(v.Pose(), vw, vh), intensity, session.Ticks)
			}
			acc -= TickDt
			ticks++
		}
		if ticks == MaxTicksPerFrame {
			acc = 0
		}
		run.AdvanceIfRequested(scene, session, particles, hud)
		hud.SetWinPending(session.WinPending())

		particles.Update(dt, scene.PlayArea())
		cam.Fit(scene.PlayArea(), fbW, fbH)
		cam.UpdateShake(dt, uint64(now*1000))

		renderCam := cam
		renderCam.X, renderCam.Y = cam.EffectivePos()

		v := session.Vehicle()
		pose, _ := rend.Pose()
		braking := session.Input().IsHeld(keys.Back) && v.Speed > 0

		rend.BeginFrame(renderCam, fbW, fbH)
		rend.DrawPlayArea(scene.PlayArea())
		glowBuf, normBuf = particles.ParticleRenderData(glowBuf, normBuf)
		rend.DrawSprites(normBuf, false)
		rend.DrawObstacles(scene.Obstacles())
		shadowBuf = VehicleShadowSprites(pose, vw, vh, shadowBuf)
		rend.DrawSprites(shadowBuf, false)
		rend.DrawVehicle(vw, vh, v.Drift)
		lightBuf = VehicleLightSprites(pose, vw, vh, braking, lightBuf)
		rend.DrawGlowSprites(lightBuf)
		rend.DrawGlowSprites(glowBuf)
		rend.DrawHUD(hud, scene.PlayArea())

		window.SwapBuffers()

		frames++
		if now-statsAt >= 5 {
			log.WithFields(logrus.Fields{
				"fps":       float64(frames) / (now - statsAt),
				"ticks":     session.Ticks,
				"particles": len(particles.P),
				"score":     session.Score(),
				"best":      run.Best,
			}).Debug("frame stats")
			statsAt = now
			frames = 0
		}
	}

	log.WithFields(logrus.Fields{
		"level":   run.Level,
		"wins":    run.Wins,
		"crashes": run.Crashes,
		"best":    run.Best,
	}).Info("session ended")
	return nil
}
