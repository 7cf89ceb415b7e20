package sound

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/deitrix/drilltris/game"
)

// SampleRate is the rate every clip is rendered at.
const SampleRate = beep.SampleRate(44100)

// Name identifies a clip in the bank.
type Name string

const (
	Lock    Name = "lock"
	Hold    Name = "hold"
	Drill   Name = "drill"
	Chain   Name = "chain"
	Explode Name = "explode"
	Buy     Name = "buy"
	Lose    Name = "lose"
	Win     Name = "win"
)

// NameFor returns the clip that goes with e, or "" for events without a sound.
func NameFor(e game.Event) Name {
	switch e.Type {
	case game.EventLocked:
		return Lock
	case game.EventHeld:
		return Hold
	case game.EventDrilled:
		if e.Chain {
			return Chain
		}
		return Drill
	case game.EventExploded:
		return Explode
	case game.EventPurchased:
		return Buy
	case game.EventGameOver:
		return Lose
	case game.EventCleared:
		return Win
	}
	return ""
}

// Bank holds every clip rendered to 16-bit little endian stereo PCM.
type Bank struct {
	clips map[Name][]byte
}

// NewBank renders every clip.
func NewBank() *Bank {
	ms := time.Millisecond
	return &Bank{clips: map[Name][]byte{
		Lock:    Render(Tone(220, 40*ms, 0.25)),
		Hold:    Render(Tone(660, 30*ms, 0.15)),
		Drill:   Render(Sweep(880, 440, 150*ms, 0.3)),
		Chain:   Render(beep.Seq(Sweep(880, 440, 150*ms, 0.3), Noise(200*ms, 0.35))),
		Explode: Render(Noise(300*ms, 0.4)),
		Buy:     Render(beep.Seq(Tone(988, 60*ms, 0.2), Tone(1319, 90*ms, 0.2))),
		Lose:    Render(Sweep(440, 110, 600*ms, 0.3)),
		Win: Render(beep.Seq(
			Tone(523, 100*ms, 0.25),
			Tone(659, 100*ms, 0.25),
			Tone(784, 100*ms, 0.25),
			Tone(1047, 250*ms, 0.25),
		)),
	}}
}

// Clip returns the PCM for n, or nil.
func (b *Bank) Clip(n Name) []byte {
	return b.clips[n]
}

// For returns the PCM to play for e, or nil.
func (b *Bank) For(e game.Event) []byte {
	return b.Clip(NameFor(e))
}

// Render drains s into 16-bit little endian stereo PCM.
func Render(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			for _, v := range frame {
				out = binary.LittleEndian.AppendUint16(out, uint16(int16(max(-1, min(1, v))*math.MaxInt16)))
			}
		}
		if !ok {
			return out
		}
	}
}

// Tone is a sine wave of the given length.
func Tone(freq float64, d time.Duration, volume float64) beep.Streamer {
	return Sweep(freq, freq, d, volume)
}

// Sweep is a sine wave gliding linearly between two frequencies over d.
func Sweep(from, to float64, d time.Duration, volume float64) beep.Streamer {
	n := SampleRate.N(d)
	return shape(beep.Take(n, &sweepGenerator{from: from, to: to, span: max(n, 1)}), n, volume)
}

// Noise is white noise from a fixed xorshift seed, so every render is identical.
func Noise(d time.Duration, volume float64) beep.Streamer {
	n := SampleRate.N(d)
	return shape(beep.Take(n, &noiseGenerator{state: 2463534242}), n, volume)
}

// shape scales s to volume and fades it out over n samples, which avoids a click at the end.
func shape(s beep.Streamer, n int, volume float64) beep.Streamer {
	faded := &fadeOut{Streamer: s, total: max(n, 1)}
	if volume <= 0 {
		return &effects.Volume{Streamer: faded, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: faded, Base: 2, Volume: math.Log2(volume)}
}

type sweepGenerator struct {
	from, to float64
	span     int
	pos      int
	phase    float64
}

func (g *sweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		f := g.from + (g.to-g.from)*min(float64(g.pos)/float64(g.span), 1)
		g.phase += f / float64(SampleRate)
		g.phase -= math.Floor(g.phase)
		v := math.Sin(2 * math.Pi * g.phase)
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *sweepGenerator) Err() error { return nil }

type noiseGenerator struct {
	state uint32
}

func (g *noiseGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		g.state ^= g.state << 13
		g.state ^= g.state >> 17
		g.state ^= g.state << 5
		v := float64(g.state)/math.MaxUint32*2 - 1
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

func (g *noiseGenerator) Err() error { return nil }

// fadeOut ramps the gain of the wrapped stream linearly from 1 to 0 over total samples.
type fadeOut struct {
	beep.Streamer
	pos, total int
}

func (f *fadeOut) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.Streamer.Stream(samples)
	for i := range samples[:n] {
		gain := max(0, 1-float64(f.pos)/float64(f.total))
		samples[i][0] *= gain
		samples[i][1] *= gain
		f.pos++
	}
	return n, ok
}
