package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

const (
	sampleRate = beep.SampleRate(44100)
	amplitude  = 0.2
	attack     = 5 * time.Millisecond
)

// Note frequencies in Hz
const (
	noteC4 = 261.63
	noteE4 = 329.63
	noteG4 = 392.00
	noteC5 = 523.25
	noteE5 = 659.25
	noteG5 = 783.99
)

// ToneGenerator streams a sine tone with a short linear attack and release
// so consecutive notes do not click.
type ToneGenerator struct {
	sr    beep.SampleRate
	freq  float64
	pos   int
	total int
	ramp  int
}

// NewToneGenerator creates a tone of the given frequency and duration.
func NewToneGenerator(sr beep.SampleRate, freq float64, d time.Duration) *ToneGenerator {
	return &ToneGenerator{
		sr:    sr,
		freq:  freq,
		total: sr.N(d),
		ramp:  sr.N(attack),
	}
}

// Stream implements beep.Streamer.
func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)
		v := amplitude * g.envelope() * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

// Err implements beep.Streamer.
func (g *ToneGenerator) Err() error {
	return nil
}

func (g *ToneGenerator) envelope() float64 {
	if g.ramp <= 0 {
		return 1
	}
	if g.pos < g.ramp {
		return float64(g.pos) / float64(g.ramp)
	}
	if left := g.total - g.pos; left < g.ramp {
		return float64(left) / float64(g.ramp)
	}
	return 1
}

// startJingle is a rising major arpeggio.
func startJingle() beep.Streamer {
	const d = 90 * time.Millisecond
	return beep.Seq(
		NewToneGenerator(sampleRate, noteC5, d),
		NewToneGenerator(sampleRate, noteE5, d),
		NewToneGenerator(sampleRate, noteG5, 2*d),
	)
}

// gameOverJingle is a falling arpeggio, slower than the start cue.
func gameOverJingle() beep.Streamer {
	const d = 160 * time.Millisecond
	return beep.Seq(
		NewToneGenerator(sampleRate, noteG4, d),
		NewToneGenerator(sampleRate, noteE4, d),
		NewToneGenerator(sampleRate, noteC4, 3*d),
	)
}
