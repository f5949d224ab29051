package game

// Animation cycle lengths.
const (
	RecruitFrames = 4
	DIFrames      = 2
)

// Actor is a moving character on the map.
type Actor struct {
	Pos         Vec2
	Frame       int // animation frame index
	Speed       float64
	SprintSpeed float64
}

// Gear is the collectible objective.
type Gear struct {
	Pos       Vec2
	Collected bool
}

// LatchState says whether the DI has hold of the recruit.
type LatchState uint8

const (
	LatchFree LatchState = iota
	LatchLatched
)

func (l LatchState) String() string {
	switch l {
	case LatchFree:
		return "free"
	case LatchLatched:
		return "latched"
	default:
		return "unknown"
	}
}

// Camera is the viewport's top-left corner in world space. It only feeds
// presentation and dust culling.
type Camera struct {
	Pos Vec2
	W   int
	H   int
}

// View returns the viewport rectangle.
func (c Camera) View() Rect {
	return Rect{X: int(c.Pos.X), Y: int(c.Pos.Y), W: c.W, H: c.H}
}

// DustParticle is one speck of a dust storm.
type DustParticle struct {
	Pos Vec2
}

// Outcome summarises how a run stands.
type Outcome uint8

const (
	OutcomeInProgress Outcome = iota
	OutcomeGearSecured
	OutcomeLost
	OutcomeQuit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeInProgress:
		return "in_progress"
	case OutcomeGearSecured:
		return "gear_secured"
	case OutcomeLost:
		return "lost"
	case OutcomeQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// State is the authoritative game state. Only Sim mutates it.
type State struct {
	Recruit Actor
	DI      Actor
	Gear    Gear
	Stamina StaminaPool

	Latch      LatchState
	LatchTimer int // ticks since the current catch
	CatchCount int
	SinceCatch int // ticks since the last catch, gates the next one

	FrameCount   int
	WeatherTimer int
	DayNight     float64
	Camera       Camera
	Dust         []DustParticle

	Running bool
	quit    bool
}

// Outcome derives the run outcome from the state.
func (st *State) Outcome(maxCatches int) Outcome {
	switch {
	case st.quit:
		return OutcomeQuit
	case st.CatchCount >= maxCatches:
		return OutcomeLost
	case st.Gear.Collected:
		return OutcomeGearSecured
	default:
		return OutcomeInProgress
	}
}

// Input is one tick of player intent.
type Input struct {
	Up, Down, Left, Right bool
	Sprint                bool
	Escape                bool // edge-triggered escape attempt
	Quit                  bool
}

// Direction returns the unit movement direction of the held keys.
func (in Input) Direction() Vec2 {
	var d Vec2
	if in.Up {
		d.Y--
	}
	if in.Down {
		d.Y++
	}
	if in.Left {
		d.X--
	}
	if in.Right {
		d.X++
	}
	return d.Normalize()
}

// Frame is a read-only snapshot handed to presentation once per tick.
type Frame struct {
	Tick       int
	Recruit    Actor
	DI         Actor
	Gear       Gear
	Stamina    float64
	MaxStamina float64
	CatchCount int
	MaxCatches int
	Latched    bool
	LatchTimer int

	WeatherTimer int
	DayNight     float64
	Camera       Camera
	Dust         []DustParticle

	Events  []Event
	Running bool
	Outcome Outcome
}
