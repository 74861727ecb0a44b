package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Preset identifies a built-in synthesized effect
type Preset uint8

const (
	PresetClick Preset = iota
	PresetError
	PresetSuccess
	PresetWhoosh
	PresetBell
)

func (p Preset) String() string {
	switch p {
	case PresetClick:
		return "click"
	case PresetError:
		return "error"
	case PresetSuccess:
		return "success"
	case PresetWhoosh:
		return "whoosh"
	case PresetBell:
		return "bell"
	default:
		return "unknown"
	}
}

// length returns the natural duration of the effect
func (p Preset) length() time.Duration {
	switch p {
	case PresetClick:
		return 30 * time.Millisecond
	case PresetError:
		return 150 * time.Millisecond
	case PresetSuccess:
		return 220 * time.Millisecond
	case PresetWhoosh:
		return 250 * time.Millisecond
	case PresetBell:
		return 450 * time.Millisecond
	default:
		return 100 * time.Millisecond
	}
}

// generator builds the streamer synthesizing the effect
func (p Preset) generator(sr beep.SampleRate) beep.Streamer {
	switch p {
	case PresetClick:
		return &ClickGenerator{sr: sr}
	case PresetError:
		return &BuzzGenerator{sr: sr, freq: 110}
	case PresetSuccess:
		return &ChimeGenerator{sr: sr}
	case PresetWhoosh:
		return &WhooshGenerator{sr: sr, seed: 0x9e3779b9}
	case PresetBell:
		return &BellGenerator{sr: sr, freq: 880}
	default:
		return beep.Silence(-1)
	}
}

// ClickGenerator generates a short high tick with a fast decay
type ClickGenerator struct {
	sr  beep.SampleRate
	pos int
}

func (g *ClickGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-t * 200)
		sample := 0.3 * envelope * math.Sin(2*math.Pi*1400*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ClickGenerator) Err() error {
	return nil
}

// BuzzGenerator generates a low rejection rasp from two detuned
// oscillators beating against each other
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// The pair beats at the detune offset, a harsh low wobble
		a := math.Sin(2 * math.Pi * g.freq * t)
		b := math.Sin(2 * math.Pi * (g.freq*1.5 + 7) * t)
		sample := 0.22*a + 0.11*b

		// Soft knee in, exponential tail out
		envelope := math.Min(t/0.015, 1.0) * math.Exp(-t*4)
		sample *= envelope

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}

// ChimeGenerator generates a rising two-note confirmation chime
type ChimeGenerator struct {
	sr  beep.SampleRate
	pos int
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	noteLen := float64(g.sr) * 0.11
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		freq := 660.0
		noteT := float64(g.pos) / noteLen
		if noteT >= 1 {
			freq = 880.0
			noteT -= 1
		}

		envelope := math.Exp(-noteT * 5)
		sample := 0.25 * envelope * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}

// WhooshGenerator generates filtered noise with a swept envelope
type WhooshGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
	last float64
}

func (g *WhooshGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	total := float64(g.sr) * 0.25
	for i := range samples {
		progress := float64(g.pos) / total
		if progress > 1 {
			progress = 1
		}

		// Amplitude rises then falls across the sweep
		envelope := math.Sin(progress * math.Pi)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		// One-pole low-pass keeps it breathy instead of hissy
		g.last += 0.08 * (noise - g.last)
		sample := 0.35 * envelope * g.last

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *WhooshGenerator) Err() error {
	return nil
}

// BellGenerator generates a struck bell with inharmonic partials
type BellGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func (g *BellGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-t * 6)
		sample := 0.0
		sample += 0.25 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.12 * math.Sin(2*math.Pi*g.freq*2.76*t)
		sample += 0.06 * math.Sin(2*math.Pi*g.freq*5.4*t)
		sample *= envelope

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BellGenerator) Err() error {
	return nil
}
