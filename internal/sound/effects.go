// Package sound generates the short audio cues played during interactive games.
package sound

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lgbarn/atomic-chess-go/internal/engine"
)

// SampleRate is the rate all effects are generated at.
const SampleRate = beep.SampleRate(44100)

// Effect identifies a sound cue.
type Effect int

const (
	EffectNone Effect = iota
	EffectMove
	EffectExplosion
	EffectRejected
	EffectGameOver
)

var effectNames = [...]string{"none", "move", "explosion", "rejected", "game over"}

func (e Effect) String() string {
	if e >= 0 && int(e) < len(effectNames) {
		return effectNames[e]
	}
	return "unknown"
}

const (
	moveDuration      = 40 * time.Millisecond
	explosionDuration = 350 * time.Millisecond
	explosionPerPiece = 60 * time.Millisecond
	rejectedDuration  = 120 * time.Millisecond
	gameOverNote      = 180 * time.Millisecond
)

// EffectFor picks the cue for an accepted move. A finished game outranks
// the explosion that ended it.
func EffectFor(r *engine.MoveResult) Effect {
	switch {
	case r == nil:
		return EffectNone
	case r.Status.Finished():
		return EffectGameOver
	case r.IsCapture():
		return EffectExplosion
	default:
		return EffectMove
	}
}

// noise produces white noise for a fixed number of samples.
type noise struct {
	remaining int
}

func (n *noise) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if n.remaining <= 0 {
			return i, false
		}
		v := rand.Float64()*2 - 1
		samples[i][0] = v
		samples[i][1] = v
		n.remaining--
	}
	return len(samples), true
}

func (n *noise) Err() error { return nil }

// decay fades a streamer linearly to silence over total samples.
type decay struct {
	streamer beep.Streamer
	position int
	total    int
}

func (d *decay) Stream(samples [][2]float64) (int, bool) {
	n, ok := d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if d.position >= d.total {
			return i, false
		}
		vol := float64(d.total-d.position) / float64(d.total)
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// newVolume scales s by vol; zero or negative is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone returns a decaying sine note of the given length.
func tone(freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(SampleRate, freq)
	if err != nil {
		return beep.Silence(SampleRate.N(d))
	}
	n := SampleRate.N(d)
	return &decay{streamer: beep.Take(n, sine), total: n}
}

// Streamer builds the samples for an effect. victims lengthens the
// explosion, one step per destroyed piece. The result is finite.
func Streamer(e Effect, victims int, volume float64) beep.Streamer {
	var s beep.Streamer
	switch e {
	case EffectMove:
		s = tone(660, moveDuration)
	case EffectExplosion:
		d := explosionDuration + time.Duration(victims)*explosionPerPiece
		n := SampleRate.N(d)
		boom := &decay{streamer: &noise{remaining: n}, total: n}
		s = beep.Mix(newVolume(boom, 0.55), newVolume(tone(55, d), 0.4))
	case EffectRejected:
		s = tone(110, rejectedDuration)
	case EffectGameOver:
		s = beep.Seq(tone(523, gameOverNote), tone(659, gameOverNote), tone(784, 2*gameOverNote))
	default:
		return beep.Silence(0)
	}
	return newVolume(s, volume)
}
