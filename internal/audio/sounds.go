package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// SampleRate is the output rate of every synthesized effect.
const SampleRate = beep.SampleRate(44100)

// Effect durations
const (
	shotDuration      = 80 * time.Millisecond
	explosionDuration = 400 * time.Millisecond
	lifeLostDuration  = 300 * time.Millisecond
	gameOverNote      = 200 * time.Millisecond
)

// Effect returns a finite streamer for the event at the given linear volume
// in [0, 1], or nil when the event has no sound.
func Effect(k core.EventKind, sr beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch k {
	case core.EventShot:
		s = tone(sr, 880, shotDuration)
	case core.EventExplosion:
		s = noiseBurst(sr, explosionDuration)
	case core.EventLifeLost:
		s = sweep(sr, 440, 220, lifeLostDuration)
	case core.EventGameOver:
		s = beep.Seq(
			tone(sr, 330, gameOverNote),
			tone(sr, 262, gameOverNote),
			tone(sr, 196, 2*gameOverNote),
		)
	}
	if s == nil {
		return nil
	}
	return withVolume(s, volume)
}

// withVolume maps a linear volume onto the logarithmic scale of effects.Volume.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is a sine note with a linear fade-out. Frequencies the sample rate
// cannot represent yield silence of the same length.
func tone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	n := sr.N(d)
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return beep.Silence(n)
	}
	return fadeOut(beep.Take(n, sine), n)
}

// fadeOut scales s linearly from full amplitude to zero over n samples.
func fadeOut(s beep.Streamer, n int) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		m, ok := s.Stream(samples)
		for i := 0; i < m; i++ {
			gain := 1 - float64(pos)/float64(n)
			samples[i][0] *= gain
			samples[i][1] *= gain
			pos++
		}
		return m, ok
	})
}

// noiseBurst is white noise with an exponential decay envelope.
func noiseBurst(sr beep.SampleRate, d time.Duration) beep.Streamer {
	n := sr.N(d)
	rng := rand.New(rand.NewSource(1))
	pos := 0
	noise := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			env := math.Exp(-5 * float64(pos) / float64(n))
			v := (rng.Float64()*2 - 1) * env * 0.8
			samples[i][0] = v
			samples[i][1] = v
			pos++
		}
		return len(samples), true
	})
	return beep.Take(n, noise)
}

// sweep glides linearly from one frequency to another.
func sweep(sr beep.SampleRate, from, to float64, d time.Duration) beep.Streamer {
	n := sr.N(d)
	pos := 0
	phase := 0.0
	glide := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			progress := float64(pos) / float64(n)
			freq := from + (to-from)*progress
			phase += 2 * math.Pi * freq / float64(sr)
			v := 0.5 * math.Sin(phase) * (1 - progress)
			samples[i][0] = v
			samples[i][1] = v
			pos++
		}
		return len(samples), true
	})
	return beep.Take(n, glide)
}
