package game

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrNoEntropy is returned when no random seed can be obtained.
var ErrNoEntropy = errors.New("game: randomness source unavailable")

// Rand is the randomness a run draws from. *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Starting positions.
var (
	RecruitStart = Vec2{X: 400, Y: 250}
	DIStart      = Vec2{X: 1200, Y: 500}
)

// Sim owns the authoritative State and advances it one tick per Step.
type Sim struct {
	RunID uuid.UUID

	st   State
	m    *Map
	res  *Resolver
	tune Tuning
	rng  Rand

	now      func() time.Time
	dayNight func() float64
	log      *EventLog
	logger   *slog.Logger

	recruitStart Vec2
	diStart      Vec2
	gearAt       *Vec2

	tickEvents []Event
}

// Option configures a Sim in NewSim.
type Option func(*Sim)

// WithSeed draws all randomness from a seeded source.
func WithSeed(seed int64) Option {
	return func(s *Sim) {
		s.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- game only
	}
}

// WithRand sets the randomness source.
func WithRand(r Rand) Option {
	return func(s *Sim) { s.rng = r }
}

// WithMap sets the zone layout.
func WithMap(m *Map) Option {
	return func(s *Sim) { s.m = m }
}

// WithTuning replaces the game balance.
func WithTuning(t Tuning) Option {
	return func(s *Sim) { s.tune = t }
}

// WithClock sets the wall clock the day/night cycle reads.
func WithClock(now func() time.Time) Option {
	return func(s *Sim) { s.now = now }
}

// WithDayNight supplies a precomputed light factor in place of the clock.
func WithDayNight(factor float64) Option {
	return func(s *Sim) {
		f := clampf(factor, 0, 1)
		s.dayNight = func() float64 { return f }
	}
}

// WithEventLog records events into el.
func WithEventLog(el *EventLog) Option {
	return func(s *Sim) { s.log = el }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Sim) { s.logger = l }
}

// WithStartPositions overrides where the recruit and DI begin.
func WithStartPositions(recruit, di Vec2) Option {
	return func(s *Sim) {
		s.recruitStart = recruit
		s.diStart = di
	}
}

// WithGearAt places the gear instead of rolling a position.
func WithGearAt(p Vec2) Option {
	return func(s *Sim) { s.gearAt = &p }
}

// NewSim builds a run ready for its first Step. Without WithSeed or WithRand
// the source is seeded from the operating system.
func NewSim(opts ...Option) (*Sim, error) {
	s := &Sim{
		RunID:        uuid.New(),
		tune:         DefaultTuning(),
		now:          time.Now,
		recruitStart: RecruitStart,
		diStart:      DIStart,
	}
	for _, o := range opts {
		o(s)
	}
	if err := s.tune.Validate(); err != nil {
		return nil, err
	}
	if s.m == nil {
		s.m = ParrisIsland()
	}
	if s.rng == nil {
		var seed [8]byte
		if _, err := cryptorand.Read(seed[:]); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNoEntropy, err)
		}
		s.rng = rand.New(rand.NewSource(int64(binary.LittleEndian.Uint64(seed[:])))) // #nosec G404 -- seeded from crypto/rand
	}
	if s.log == nil {
		s.log = NewEventLog(false)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	s.logger = s.logger.With("run", s.RunID.String())
	s.res = NewResolver(s.m, s.tune.SpriteSize)

	t := s.tune
	s.st = State{
		Recruit: Actor{Pos: s.res.Clamp(s.recruitStart), Speed: t.RecruitSpeed, SprintSpeed: t.SprintSpeed},
		DI:      Actor{Pos: s.res.Clamp(s.diStart), Speed: t.DISpeed},
		Stamina: NewStaminaPool(t.MaxStamina, t.StaminaDrain, t.StaminaRegen),
		Camera:  Camera{W: t.ViewWidth, H: t.ViewHeight},
		Running: true,
	}
	if s.gearAt != nil {
		s.st.Gear.Pos = *s.gearAt
	} else {
		s.st.Gear.Pos = s.placeGear()
	}
	s.updateCamera()
	s.st.DayNight = s.lightFactor()
	s.logger.Info("run started",
		"recruit", fmtVec(s.st.Recruit.Pos), "di", fmtVec(s.st.DI.Pos), "gear", fmtVec(s.st.Gear.Pos))
	return s, nil
}

// gearPlacementTries bounds the re-rolls for a reachable gear spot.
const gearPlacementTries = 32

// placeGear rolls a gear position inside the map minus the margin,
// re-rolling spots a recruit could never stand close enough to collect.
func (s *Sim) placeGear() Vec2 {
	margin := s.tune.GearMargin
	spanX := max(s.m.width-2*margin, 1)
	spanY := max(s.m.height-2*margin, 1)
	var p Vec2
	for i := 0; i < gearPlacementTries; i++ {
		p = Vec2{X: float64(s.rng.Intn(spanX) + margin), Y: float64(s.rng.Intn(spanY) + margin)}
		if s.gearReachable(p) {
			return p
		}
	}
	return p
}

// gearReachable reports whether a recruit standing on p stays within pickup
// range once blocking zones and the ground snap under roofed buildings
// have had their say.
func (s *Sim) gearReachable(p Vec2) bool {
	if s.res.Blocked(p) {
		return false
	}
	return s.res.settle(p).Dist(p) < s.tune.GearRadius
}

// Map returns the run's zone layout.
func (s *Sim) Map() *Map { return s.m }

// Tuning returns the run's balance.
func (s *Sim) Tuning() Tuning { return s.tune }

// Log returns the run's event log.
func (s *Sim) Log() *EventLog { return s.log }

// Running reports whether the loop should keep going.
func (s *Sim) Running() bool { return s.st.Running }

// Outcome reports how the run stands.
func (s *Sim) Outcome() Outcome { return s.st.Outcome(s.tune.MaxCatches) }

// Step advances the run by one tick and returns the tick's events.
func (s *Sim) Step(in Input) []Event {
	if !s.st.Running {
		return nil
	}
	s.tickEvents = nil

	// 1. INPUT: quit, escape attempt, movement intent.
	if in.Quit {
		s.st.Running = false
		s.st.quit = true
		s.emit(EventQuit)
		return s.tickEvents
	}
	if in.Escape && s.st.Latch == LatchLatched {
		s.attemptEscape()
	}
	dir := in.Direction()

	// 2. STAMINA: sprint drain or regeneration.
	speed := s.st.Recruit.Speed
	if s.st.Stamina.Update(in.Sprint, s.st.Latch == LatchLatched) {
		speed = s.st.Recruit.SprintSpeed
	}

	// 3. RECRUIT: resolve movement unless held by the DI.
	if s.st.Latch == LatchFree {
		mv := s.res.Move(s.st.Recruit.Pos, dir, speed)
		s.st.Recruit.Pos = mv.Pos
		for i := 0; i < mv.SandPits; i++ {
			s.st.Stamina.Drain(s.tune.StaminaDrain)
		}
	}

	// 4. CAMERA.
	s.updateCamera()

	// 5. DI: pursuit stops for good once the gear is secured.
	if !s.st.Gear.Collected {
		if lost := s.updateDI(); lost {
			return s.tickEvents
		}
	}

	// 6. GEAR.
	s.checkGear()

	// 7. ANIMATION.
	s.advanceFrames(dir)

	// 8+9. WEATHER and dust.
	s.st.DayNight = s.lightFactor()
	s.updateWeather()
	s.driftDust()

	// 10. COUNTERS.
	s.st.FrameCount++
	s.st.SinceCatch++
	return s.tickEvents
}

func (s *Sim) updateCamera() {
	c := &s.st.Camera
	c.Pos = Vec2{
		X: s.st.Recruit.Pos.X - float64(c.W)/2,
		Y: s.st.Recruit.Pos.Y - float64(c.H)/2,
	}
	c.Pos.X = clampf(c.Pos.X, 0, float64(s.m.width-c.W))
	c.Pos.Y = clampf(c.Pos.Y, 0, float64(s.m.height-c.H))
}

func (s *Sim) checkGear() {
	g := &s.st.Gear
	if g.Collected || s.st.Recruit.Pos.Dist(g.Pos) >= s.tune.GearRadius {
		return
	}
	g.Collected = true
	s.emit(EventGearCollected)
	if s.st.Latch == LatchLatched {
		s.st.Latch = LatchFree
		s.st.LatchTimer = 0
		s.backOff()
	}
}

// advanceFrames cycles the walk and yell animations on their cadences.
func (s *Sim) advanceFrames(dir Vec2) {
	latched := s.st.Latch == LatchLatched
	if !dir.IsZero() && s.st.FrameCount%s.tune.RecruitFrameEvery == 0 && !latched {
		s.st.Recruit.Frame = (s.st.Recruit.Frame + 1) % RecruitFrames
		s.emit(EventFootstep)
	}
	if !s.st.Gear.Collected && s.st.FrameCount%s.tune.DIFrameEvery == 0 && !latched {
		s.st.DI.Frame = (s.st.DI.Frame + 1) % DIFrames
	}
}

func (s *Sim) lightFactor() float64 {
	if s.dayNight != nil {
		return s.dayNight()
	}
	return DayNightFactor(s.now())
}

func (s *Sim) emit(kind EventKind) {
	e := Event{
		Tick:       s.st.FrameCount,
		Kind:       kind,
		Pos:        s.st.Recruit.Pos,
		CatchCount: s.st.CatchCount,
		Stamina:    s.st.Stamina.Current,
	}
	s.tickEvents = append(s.tickEvents, e)
	s.log.Add(e)

	switch kind {
	case EventFootstep:
		return
	case EventWeather:
		s.logger.Debug(kind.String(), "tick", e.Tick)
	default:
		s.logger.Info(kind.String(), "tick", e.Tick, "catches", e.CatchCount,
			"max_catches", s.tune.MaxCatches, "stamina", e.Stamina)
	}
}

// Frame returns a snapshot of the state for presentation.
func (s *Sim) Frame() Frame {
	st := &s.st
	dust := make([]DustParticle, len(st.Dust))
	copy(dust, st.Dust)
	events := make([]Event, len(s.tickEvents))
	copy(events, s.tickEvents)
	return Frame{
		Tick:         st.FrameCount,
		Recruit:      st.Recruit,
		DI:           st.DI,
		Gear:         st.Gear,
		Stamina:      st.Stamina.Current,
		MaxStamina:   st.Stamina.Max,
		CatchCount:   st.CatchCount,
		MaxCatches:   s.tune.MaxCatches,
		Latched:      st.Latch == LatchLatched,
		LatchTimer:   st.LatchTimer,
		WeatherTimer: st.WeatherTimer,
		DayNight:     st.DayNight,
		Camera:       st.Camera,
		Dust:         dust,
		Events:       events,
		Running:      st.Running,
		Outcome:      st.Outcome(s.tune.MaxCatches),
	}
}

// Summary returns a short human-readable account of the run so far.
func (s *Sim) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- Parris Island Trials, run %s ---\n", s.RunID)
	fmt.Fprintf(&sb, "ticks=%d outcome=%s\n", s.st.FrameCount, s.Outcome())
	fmt.Fprintf(&sb, "Times Caught: %d/%d\n", s.st.CatchCount, s.tune.MaxCatches)
	fmt.Fprintf(&sb, "escapes=%d failed=%d auto=%d\n",
		s.log.Count(EventEscaped), s.log.Count(EventEscapeFailed), s.log.Count(EventAutoEscaped))
	if e, ok := s.log.FirstOf(EventGearCollected); ok {
		fmt.Fprintf(&sb, "gear secured at T=%d\n", e.Tick)
	} else {
		sb.WriteString("gear not secured\n")
	}
	fmt.Fprintf(&sb, "stamina=%.1f/%.0f\n", s.st.Stamina.Current, s.st.Stamina.Max)
	return sb.String()
}

func fmtVec(v Vec2) string {
	return fmt.Sprintf("(%.0f,%.0f)", v.X, v.Y)
}
