package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/typefall/constants"
)

// envelope applies a linear attack and release to a finite streamer
type envelope struct {
	streamer beep.Streamer
	total    int
	attack   int
	release  int
	position int
}

func newEnvelope(s beep.Streamer, sr beep.SampleRate, total, attack, release time.Duration) beep.Streamer {
	return &envelope{
		streamer: beep.Take(sr.N(total), s),
		total:    sr.N(total),
		attack:   sr.N(attack),
		release:  sr.N(release),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := range samples[:n] {
		vol := 1.0
		switch {
		case e.attack > 0 && e.position < e.attack:
			vol = float64(e.position) / float64(e.attack)
		case e.release > 0 && e.position >= e.total-e.release:
			vol = float64(e.total-e.position) / float64(e.release)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a streamer linearly; math.Log2(0) is -Inf so zero is mapped to Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is a shaped sine at freq; generators.SineTone only fails on freq >= sr/2
func tone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return beep.Silence(sr.N(d))
	}
	return newEnvelope(sine, sr, d, 5*time.Millisecond, d/2)
}

// CompleteCue is a two-note upward chirp
func CompleteCue(sr beep.SampleRate, vol float64) beep.Streamer {
	half := constants.CompleteSoundDuration / 2
	return newVolume(beep.Seq(
		tone(sr, constants.CompleteSoundFreq, half),
		tone(sr, constants.CompleteSoundFreq*1.5, half),
	), 0.3*vol)
}

// StageCue is a major triad arpeggio
func StageCue(sr beep.SampleRate, vol float64) beep.Streamer {
	step := constants.CompleteSoundDuration
	return newVolume(beep.Seq(
		tone(sr, constants.StageSoundFreq, step),
		tone(sr, constants.StageSoundFreq*1.25, step),
		tone(sr, constants.StageSoundFreq*1.5, step),
	), 0.3*vol)
}

// ErrorCue is a short harmonic-rich buzz
func ErrorCue(sr beep.SampleRate, vol float64) beep.Streamer {
	d := constants.ErrorSoundDuration
	return newVolume(newEnvelope(&buzzGenerator{sr: sr, freq: constants.ErrorSoundFreq}, sr, d, 2*time.Millisecond, d/4), 0.25*vol)
}

// MissCue is a decaying noisy rumble
func MissCue(sr beep.SampleRate, vol float64) beep.Streamer {
	d := constants.MissSoundDuration
	return newVolume(beep.Take(sr.N(d), &rumbleGenerator{sr: sr, freq: constants.MissSoundFreq}), 0.5*vol)
}

// buzzGenerator sums the first three harmonics of freq
type buzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func (g *buzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.6 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.3 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*3*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *buzzGenerator) Err() error {
	return nil
}

// rumbleGenerator mixes a low sine with noise under an exponential decay
type rumbleGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func (g *rumbleGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		env := math.Exp(-t * 10)
		noise := rand.Float64()*2 - 1
		sample := env * (0.6*math.Sin(2*math.Pi*g.freq*t) + 0.2*noise)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *rumbleGenerator) Err() error {
	return nil
}
