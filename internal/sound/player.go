package sound

import (
	"time"

	"github.com/gopxl/beep/speaker"

	"github.com/lgbarn/atomic-chess-go/internal/engine"
)

// Player plays effects through the system speaker. A Player whose speaker
// failed to initialise stays usable and simply plays nothing.
type Player struct {
	enabled bool
	volume  float64
}

// NewPlayer initialises the speaker. The returned error is informational:
// the Player is always non-nil and falls back to silence.
func NewPlayer(volume float64) (*Player, error) {
	p := &Player{volume: volume}
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return p, err
	}
	p.enabled = true
	return p, nil
}

// Silent returns a Player that never touches the speaker.
func Silent() *Player {
	return &Player{}
}

// Enabled reports whether the speaker is live.
func (p *Player) Enabled() bool {
	return p != nil && p.enabled
}

// Play starts e asynchronously.
func (p *Player) Play(e Effect, victims int) {
	if !p.Enabled() || e == EffectNone {
		return
	}
	speaker.Play(Streamer(e, victims, p.volume))
}

// PlayMove plays the cue for an accepted move.
func (p *Player) PlayMove(r *engine.MoveResult) {
	if r == nil {
		return
	}
	p.Play(EffectFor(r), len(r.Victims))
}

// Close releases the speaker.
func (p *Player) Close() {
	if p.Enabled() {
		speaker.Close()
		p.enabled = false
	}
}
