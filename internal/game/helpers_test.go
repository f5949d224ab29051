package game

import (
	"io"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedRand replays fixed draws. Once a script runs out, Float64 returns
// 0.99 and Intn returns n-1, which never spawns dust and backs the DI off by
// the full range.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.99
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return n - 1
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func openMap(t *testing.T) *Map {
	t.Helper()
	m, err := NewMap(MapWidth, MapHeight, 0, nil)
	require.NoError(t, err)
	return m
}

func mapWith(t *testing.T, zones ...Zone) *Map {
	t.Helper()
	m, err := NewMap(MapWidth, MapHeight, 0, zones)
	require.NoError(t, err)
	return m
}

func zone(kind ZoneKind, x, y, w, h int) Zone {
	return Zone{Rect: Rect{X: x, Y: y, W: w, H: h}, Kind: kind}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestSim builds a quiet, deterministic run on an open map with the gear
// parked in a far corner. Later options override the defaults.
func newTestSim(t *testing.T, opts ...Option) *Sim {
	t.Helper()
	base := []Option{
		WithMap(openMap(t)),
		WithRand(rand.New(rand.NewSource(1))), // #nosec G404 -- test
		WithDayNight(0),
		WithLogger(quietLogger()),
		WithGearAt(Vec2{X: 1500, Y: 1100}),
	}
	s, err := NewSim(append(base, opts...)...)
	require.NoError(t, err)
	return s
}

// latch puts the run into a fresh latch with the DI on the recruit.
func latch(s *Sim) {
	s.st.Latch = LatchLatched
	s.st.LatchTimer = 0
	s.st.DI.Pos = s.st.Recruit.Pos
}

func hasEvent(events []Event, kind EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
