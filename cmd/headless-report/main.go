package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/Garsondee/Parris-Island-Trials/internal/config"
	"github.com/Garsondee/Parris-Island-Trials/internal/game"
)

// bot produces one tick of input from the latest frame.
type bot func(f game.Frame) game.Input

type batchConfig struct {
	runs     int
	ticks    int
	seedBase int64
	seedStep int64
	bot      string
	tuning   game.Tuning
	events   bool
	logger   *slog.Logger
}

type runStats struct {
	runIndex int
	seed     int64
	runID    string

	ticks    int
	outcome  game.Outcome
	catches  int
	escapes  int
	failed   int
	auto     int
	stamina  float64
	maxCatch int

	firstCatchTick int
	gearTick       int

	eventLog string
}

var errUsage = errors.New("usage")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps a run error to the process status: 2 for bad arguments,
// 1 for anything else.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		return 2
	default:
		return 1
	}
}

func run(args []string, stdout io.Writer) error {
	var (
		runs     int
		ticks    int
		seedBase int64
		seedStep int64
		botName  string
		copyOut  bool
		events   bool
	)
	fs := flag.NewFlagSet("headless-report", flag.ContinueOnError)
	fs.IntVar(&runs, "runs", 5, "number of headless runs")
	fs.IntVar(&ticks, "ticks", 3600, "tick limit per run")
	fs.Int64Var(&seedBase, "seed-base", 42, "RNG seed for run 1")
	fs.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	fs.StringVar(&botName, "bot", "gear", "player bot: gear, flee or idle")
	fs.BoolVar(&copyOut, "copy", false, "copy the report to the clipboard")
	fs.BoolVar(&events, "events", false, "print each run's event log")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	cfg := config.Load()
	logger, closeLog, err := config.SetupLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	bc := batchConfig{
		runs:     runs,
		ticks:    ticks,
		seedBase: seedBase,
		seedStep: seedStep,
		bot:      botName,
		tuning:   cfg.Tuning(),
		events:   events,
		logger:   logger,
	}
	all, err := runBatch(bc)
	if err != nil {
		return err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "=== Headless Chase Report ===\n")
	fmt.Fprintf(&sb, "bot=%s runs=%d ticks=%d seed_base=%d seed_step=%d\n\n", botName, runs, ticks, seedBase, seedStep)
	for _, rs := range all {
		printRun(&sb, rs)
	}
	printAggregate(&sb, all)
	fmt.Fprint(stdout, sb.String())

	if copyOut {
		if err := clipboard.WriteAll(sb.String()); err != nil {
			logger.Warn("copy report failed", "error", err)
		} else {
			fmt.Fprintln(stdout, "(report copied to clipboard)")
		}
	}
	return nil
}

func botFor(name string) (bot, error) {
	switch name {
	case "gear":
		return gearBot, nil
	case "flee":
		return fleeBot, nil
	case "idle":
		return func(game.Frame) game.Input { return game.Input{} }, nil
	}
	return nil, fmt.Errorf("%w: unsupported bot %q (supported: gear, flee, idle)", errUsage, name)
}

// mashEvery is how often a latched bot tries to break free.
const mashEvery = 20

// gearBot heads straight for the gear and sprints when the DI is close.
func gearBot(f game.Frame) game.Input {
	if f.Latched {
		return game.Input{Escape: f.Tick%mashEvery == 0}
	}
	in := steer(f.Recruit.Pos, f.Gear.Pos)
	in.Sprint = f.Recruit.Pos.Dist(f.DI.Pos) < 150 && f.Stamina > 20
	return in
}

// fleeBot runs directly away from the DI.
func fleeBot(f game.Frame) game.Input {
	if f.Latched {
		return game.Input{Escape: f.Tick%mashEvery == 0}
	}
	away := f.Recruit.Pos.Add(f.Recruit.Pos.Sub(f.DI.Pos))
	in := steer(f.Recruit.Pos, away)
	in.Sprint = f.Stamina > 20
	return in
}

// steer holds the keys that move from toward to, with a small dead zone so
// the bot does not jitter on arrival.
func steer(from, to game.Vec2) game.Input {
	const deadZone = 2
	d := to.Sub(from)
	return game.Input{
		Left:  d.X < -deadZone,
		Right: d.X > deadZone,
		Up:    d.Y < -deadZone,
		Down:  d.Y > deadZone,
	}
}

func runBatch(bc batchConfig) ([]runStats, error) {
	if bc.runs <= 0 {
		return nil, fmt.Errorf("%w: -runs must be > 0", errUsage)
	}
	if bc.ticks <= 0 {
		return nil, fmt.Errorf("%w: -ticks must be > 0", errUsage)
	}
	b, err := botFor(bc.bot)
	if err != nil {
		return nil, err
	}
	if bc.logger == nil {
		bc.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	all := make([]runStats, 0, bc.runs)
	for i := 0; i < bc.runs; i++ {
		seed := bc.seedBase + int64(i)*bc.seedStep
		rs, err := runOne(i+1, seed, bc, b)
		if err != nil {
			return nil, fmt.Errorf("run %d: %w", i+1, err)
		}
		all = append(all, rs)
	}
	return all, nil
}

func runOne(runIndex int, seed int64, bc batchConfig, b bot) (runStats, error) {
	el := game.NewEventLog(false)
	sim, err := game.NewSim(
		game.WithSeed(seed),
		game.WithTuning(bc.tuning),
		game.WithDayNight(0),
		game.WithEventLog(el),
		game.WithLogger(bc.logger),
	)
	if err != nil {
		return runStats{}, err
	}

	for t := 0; t < bc.ticks && sim.Outcome() == game.OutcomeInProgress; t++ {
		sim.Step(b(sim.Frame()))
	}

	f := sim.Frame()
	rs := runStats{
		runIndex:       runIndex,
		seed:           seed,
		runID:          sim.RunID.String(),
		ticks:          f.Tick,
		outcome:        f.Outcome,
		catches:        f.CatchCount,
		maxCatch:       f.MaxCatches,
		escapes:        el.Count(game.EventEscaped),
		failed:         el.Count(game.EventEscapeFailed),
		auto:           el.Count(game.EventAutoEscaped),
		stamina:        f.Stamina,
		firstCatchTick: firstTick(el, game.EventCaught),
		gearTick:       firstTick(el, game.EventGearCollected),
	}
	if bc.events {
		rs.eventLog = el.Format()
	}
	return rs, nil
}

func firstTick(el *game.EventLog, kind game.EventKind) int {
	if e, ok := el.FirstOf(kind); ok {
		return e.Tick
	}
	return -1
}

func printRun(w io.Writer, rs runStats) {
	fmt.Fprintf(w, "--- Run %d (seed=%d id=%s) ---\n", rs.runIndex, rs.seed, rs.runID)
	fmt.Fprintf(w, "outcome=%s ticks=%d catches=%d/%d stamina=%.1f\n",
		rs.outcome, rs.ticks, rs.catches, rs.maxCatch, rs.stamina)
	fmt.Fprintf(w, "latch_events: escaped=%d failed=%d auto=%d\n", rs.escapes, rs.failed, rs.auto)
	fmt.Fprintf(w, "phase_markers: first_catch=%d gear=%d\n", rs.firstCatchTick, rs.gearTick)
	if rs.eventLog != "" {
		fmt.Fprint(w, rs.eventLog)
	}
	fmt.Fprintln(w)
}

func printAggregate(w io.Writer, all []runStats) {
	outcomes := map[game.Outcome]int{}
	totalCatches := 0
	totalEscapes := 0
	totalFailed := 0
	totalAuto := 0
	catchTicks := make([]int, 0, len(all))
	gearTicks := make([]int, 0, len(all))

	for _, rs := range all {
		outcomes[rs.outcome]++
		totalCatches += rs.catches
		totalEscapes += rs.escapes
		totalFailed += rs.failed
		totalAuto += rs.auto
		if rs.firstCatchTick >= 0 {
			catchTicks = append(catchTicks, rs.firstCatchTick)
		}
		if rs.gearTick >= 0 {
			gearTicks = append(gearTicks, rs.gearTick)
		}
	}

	fmt.Fprintln(w, "=== Aggregate ===")
	fmt.Fprintf(w, "runs=%d\n", len(all))
	fmt.Fprintf(w, "outcomes: gear_secured=%d lost=%d in_progress=%d\n",
		outcomes[game.OutcomeGearSecured], outcomes[game.OutcomeLost], outcomes[game.OutcomeInProgress])
	fmt.Fprintf(w, "avg_per_run: catches=%.1f escaped=%.1f failed=%.1f auto=%.1f\n",
		avg(totalCatches, len(all)), avg(totalEscapes, len(all)), avg(totalFailed, len(all)), avg(totalAuto, len(all)))
	fmt.Fprintf(w, "phase_marker_avg_ticks: first_catch=%s gear=%s\n", avgTickString(catchTicks), avgTickString(gearTicks))
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}
