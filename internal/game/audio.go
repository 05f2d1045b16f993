package game

import (
	"io"
	"math"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// SoundKind identifies different sound effects.
type SoundKind int

const (
	SoundSkid SoundKind = iota
	SoundCrash
	SoundPoint
	SoundWin
	SoundStart
)

// AudioSystem manages procedural sound effects.
type AudioSystem struct {
	ctx   *oto.Context
	ready chan struct{}
}

var globalAudio *AudioSystem

// activeSkids limits overlapping skid loops.
var activeSkids int32
var crashVariantCounter uint64

var sfxVolume = 0.58

// InitAudio initializes the audio system.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return err
	}
	globalAudio = &AudioSystem{ctx: ctx, ready: ready}
	return nil
}

// PlaySound plays a procedurally generated sound effect.
func PlaySound(kind SoundKind) {
	PlaySoundWithGain(kind, 1.0)
}

func PlaySoundWithGain(kind SoundKind, gain float64) {
	if globalAudio == nil || gain <= 0 {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	if kind == SoundSkid {
		if atomic.LoadInt32(&activeSkids) >= 1 {
			return
		}
		atomic.AddInt32(&activeSkids, 1)
	}
	samples := generateSound(kind)
	if len(samples) == 0 {
		if kind == SoundSkid {
			atomic.AddInt32(&activeSkids, -1)
		}
		return
	}
	go func() {
		if kind == SoundSkid {
			defer atomic.AddInt32(&activeSkids, -1)
		}
		reader := &soundReader{data: samples}
		player := globalAudio.ctx.NewPlayer(reader)
		player.SetVolume(sfxVolume * clampF(gain, 0, 1))
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// softSat applies gentle tanh-like saturation.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
// carrier: base frequency, modRatio: modulator/carrier ratio, modIdx: modulation depth.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

// makeBuf allocates a stereo float32 buffer for n samples.
func makeBuf(n int) []byte { return make([]byte, n*8) }

// ---- Sound effects -------------------------------------------------------

func generateSound(kind SoundKind) []byte {
	switch kind {
	case SoundSkid:
		return genSkid()
	case SoundCrash:
		return genCrash()
	case SoundPoint:
		return genPoint()
	case SoundWin:
		return genWin()
	case SoundStart:
		return genStart()
	}
	return nil
}

// genSkid: tyre squeal, a wobbling narrow band of noise around 1.2 kHz.
func genSkid() []byte {
	n := int(0.55 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(0x5C1D)
	lp1, lp2 := 0.0, 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.06, 0.3, 0.7, 0.35)
		raw := lcg(&seed)
		lp1 = lp1*0.70 + raw*0.30
		lp2 = lp2*0.96 + raw*0.04
		band := (lp1 - lp2) * 0.5
		wobble := 1.0 + 0.08*math.Sin(2*math.Pi*9*t)
		tone := fm(t, 1180*wobble, 0.5, 0.8) * 0.22
		s := (band + tone) * env * 0.6
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genCrash: sub thump, a noise crack and a short metallic ring.
func genCrash() []byte {
	dur := 0.45
	n := int(dur * SampleRate)
	buf := makeBuf(n)
	seed := atomic.AddUint64(&crashVariantCounter, 1) ^ uint64(time.Now().UnixNano())
	lp1, lp2 := 0.0, 0.0
	subPhase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)

		subFreq := 120.0 * math.Pow(30.0/120.0, p*1.8)
		subPhase += 2 * math.Pi * subFreq / SampleRate
		sub := math.Sin(subPhase) * math.Exp(-p*6.5) * 0.5

		crack := 0.0
		if p < 0.03 {
			crack = lcg(&seed) * (1 - p/0.03) * 0.8
		}

		raw := lcg(&seed)
		lp1 = lp1*0.76 + raw*0.24
		lp2 = lp2*0.975 + raw*0.025
		body := (lp1 - lp2) * math.Exp(-p*7.0) * 0.35

		ring := fm(t, 690, 1.41, 2.2) * math.Exp(-p*9.0) * 0.12

		putStereoF32(buf, i, softSat((sub+crack+body+ring)*0.86))
	}
	return buf
}

// genPoint: snappy FM pop with ascending pitch.
func genPoint() []byte {
	n := int(0.09 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.5, 0.0, 0.1)
		freq := 620 + 600*p
		s := fm(t, freq, 2.0, 3.5*env) * env * 0.4
		s += math.Sin(2*math.Pi*freq*3*t) * env * 0.05
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genWin: ascending FM bell staircase, each note ringing over the next.
func genWin() []byte {
	notes := []float64{440, 554.37, 659.25, 880, 1108.73}
	noteStep := int(0.09 * SampleRate)
	total := len(notes)*noteStep + int(0.25*SampleRate)
	mix := make([]float64, total)

	for fi, freq := range notes {
		start := fi * noteStep
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.003, 0.65, 0.04, 0.28)
			s := fm(t, freq, 3.5, 5.5*env) * env * 0.28
			s += math.Sin(2*math.Pi*freq*2*t) * env * 0.07
			mix[start+j] += s
		}
	}
	buf := makeBuf(total)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genStart: crisp click and a brief high tone.
func genStart() []byte {
	n := SampleRate * 65 / 1000
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.004, 0.55, 0.0, 0.1)
		freq := 1400 - 700*p
		s := fm(t, freq, 1.0, 0.6) * env * 0.38
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}
