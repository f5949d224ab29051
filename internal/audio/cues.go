package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/Garsondee/Parris-Island-Trials/internal/game"
)

// note is one tone of a cue. A zero freq is a rest.
type note struct {
	freq float64
	dur  time.Duration
	vol  float64 // linear gain, 1 is full
}

// cues maps event kinds to their tone sequences. Kinds without an entry are
// silent.
var cues = map[game.EventKind][]note{
	// DI yell: two harsh low blasts.
	game.EventCaught: {
		{freq: 180, dur: 90 * time.Millisecond, vol: 0.8},
		{dur: 30 * time.Millisecond},
		{freq: 140, dur: 140 * time.Millisecond, vol: 0.8},
	},
	game.EventEscaped: {
		{freq: 523.25, dur: 70 * time.Millisecond, vol: 0.5},
		{freq: 783.99, dur: 110 * time.Millisecond, vol: 0.5},
	},
	game.EventEscapeFailed: {
		{freq: 110, dur: 160 * time.Millisecond, vol: 0.6},
	},
	game.EventAutoEscaped: {
		{freq: 440, dur: 60 * time.Millisecond, vol: 0.4},
		{freq: 587.33, dur: 90 * time.Millisecond, vol: 0.4},
	},
	game.EventGearCollected: {
		{freq: 659.25, dur: 80 * time.Millisecond, vol: 0.5},
		{freq: 880, dur: 80 * time.Millisecond, vol: 0.5},
		{freq: 1318.51, dur: 160 * time.Millisecond, vol: 0.5},
	},
	game.EventLost: {
		{freq: 220, dur: 200 * time.Millisecond, vol: 0.6},
		{freq: 174.61, dur: 200 * time.Millisecond, vol: 0.6},
		{freq: 130.81, dur: 400 * time.Millisecond, vol: 0.6},
	},
	game.EventFootstep: {
		{freq: 90, dur: 25 * time.Millisecond, vol: 0.15},
	},
	game.EventWeather: {
		{freq: 60, dur: 300 * time.Millisecond, vol: 0.2},
	},
}

// cueStreamer renders the cue for kind at sample rate sr. It returns nil for
// silent kinds.
func cueStreamer(sr beep.SampleRate, kind game.EventKind) (beep.Streamer, error) {
	notes, ok := cues[kind]
	if !ok {
		return nil, nil
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		samples := sr.N(n.dur)
		if n.freq == 0 {
			parts = append(parts, beep.Silence(samples))
			continue
		}
		tone, err := generators.SineTone(sr, n.freq)
		if err != nil {
			return nil, fmt.Errorf("%s cue: %w", kind, err)
		}
		parts = append(parts, newVolume(beep.Take(samples, tone), n.vol))
	}
	return beep.Seq(parts...), nil
}

// cueLength is the number of samples the cue for kind lasts.
func cueLength(sr beep.SampleRate, kind game.EventKind) int {
	total := 0
	for _, n := range cues[kind] {
		total += sr.N(n.dur)
	}
	return total
}

// newVolume wraps s with a linear gain. Log2(0) is -Inf, so zero is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
