package audio

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/Garsondee/Parris-Island-Trials/internal/game"
)

const sampleRate = beep.SampleRate(44100)

// Player plays short synthesized cues for game events. A Player whose
// speaker failed to open stays silent.
type Player struct {
	mu     sync.Mutex
	ready  bool
	muted  bool
	broken map[game.EventKind]bool // kinds whose cue failed to render
}

// New opens the speaker. On failure it still returns a usable silent Player
// along with the error, since the game runs fine without sound.
func New(muted bool) (*Player, error) {
	p := &Player{muted: muted, broken: make(map[game.EventKind]bool)}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return p, fmt.Errorf("audio init: %w", err)
	}
	p.ready = true
	return p, nil
}

// Play starts the cue for kind and returns without waiting for it.
func (p *Player) Play(kind game.EventKind) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready || p.muted || p.broken[kind] {
		return
	}
	s, err := cueStreamer(sampleRate, kind)
	if err != nil {
		p.broken[kind] = true
		slog.Warn("audio cue disabled", "kind", kind.String(), "error", err)
		return
	}
	if s != nil {
		speaker.Play(s)
	}
}

// ToggleMute flips muting and reports the new state.
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	return p.muted
}

// Muted reports whether cues are suppressed.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Close releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ready {
		speaker.Close()
		p.ready = false
	}
}
