package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/Parris-Island-Trials/internal/game"
)

const (
	tickInterval = 16 * time.Millisecond
	lingerTicks  = 120 // ticks the final screen stays up after a loss
	statusRows   = 2
)

// Cues plays sounds for game events.
type Cues interface {
	Play(kind game.EventKind)
	ToggleMute() bool
}

// App runs a Sim in a terminal.
type App struct {
	sim    *game.Sim
	screen tcell.Screen
	cues   Cues
	keys   keyTracker
	logger *slog.Logger

	copyText func(string) error
	status   string
	statusAt int
	linger   int
	ticks    int
}

// Option configures an App.
type Option func(*App)

// WithCues routes events to an audio player.
func WithCues(c Cues) Option {
	return func(a *App) { a.cues = c }
}

// WithLogger sets the logger for frontend diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) { a.logger = l }
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(write func(string) error) Option {
	return func(a *App) { a.copyText = write }
}

// WithScreen uses s instead of the terminal. s must not be initialised yet.
func WithScreen(s tcell.Screen) Option {
	return func(a *App) { a.screen = s }
}

// New takes over the terminal. Call Close to restore it.
func New(sim *game.Sim, opts ...Option) (*App, error) {
	a := &App{
		sim:      sim,
		logger:   slog.Default(),
		copyText: clipboard.WriteAll,
		linger:   lingerTicks,
	}
	for _, o := range opts {
		o(a)
	}
	if a.screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("open terminal: %w", err)
		}
		a.screen = s
	}
	if err := a.screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	a.screen.HideCursor()
	a.screen.Clear()
	return a, nil
}

// Close restores the terminal.
func (a *App) Close() {
	a.screen.Fini()
}

// Run steps the game at about 60 ticks a second until the player quits, the
// run is lost and the final screen has lingered, or ctx is done.
func (a *App) Run(ctx context.Context) error {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			a.handleEvent(ev)
		case <-ticker.C:
			if !a.tick() {
				return nil
			}
		}
	}
}

func (a *App) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a.keys.handle(ev)
	case *tcell.EventResize:
		a.screen.Sync()
	}
}

// tick advances one frame and redraws. It reports false once the loop
// should stop.
func (a *App) tick() bool {
	a.ticks++
	if !a.sim.Running() {
		if a.sim.Outcome() == game.OutcomeQuit || a.linger <= 0 {
			return false
		}
		a.linger--
		return true
	}

	wantCopy, wantMute := a.keys.takeCommands()
	if wantCopy {
		if err := a.copyText(a.sim.Summary()); err != nil {
			a.logger.Warn("copy summary failed", "error", err)
			a.setStatus("Clipboard unavailable")
		} else {
			a.setStatus("Summary copied")
		}
	}
	if wantMute && a.cues != nil {
		if a.cues.ToggleMute() {
			a.setStatus("Sound off")
		} else {
			a.setStatus("Sound on")
		}
	}

	for _, e := range a.sim.Step(a.keys.next()) {
		if msg := e.Kind.Message(); msg != "" {
			a.setStatus(msg)
		}
		if a.cues != nil {
			a.cues.Play(e.Kind)
		}
	}
	a.draw(a.sim.Frame())
	return a.sim.Running() || a.sim.Outcome() != game.OutcomeQuit
}

func (a *App) setStatus(msg string) {
	a.status = msg
	a.statusAt = a.ticks
}

func (a *App) draw(f game.Frame) {
	s := a.screen
	s.Clear()
	w, h := s.Size()
	cols := min(w, f.Camera.W/cellW)
	rows := min(h-statusRows, f.Camera.H/cellH)

	ground := rgb(game.LerpColor(game.DayColor, game.NightColor, f.DayNight))
	base := tcell.StyleDefault.Background(ground)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			s.SetContent(x, y, ' ', nil, base)
		}
	}
	put := func(p game.Vec2, g glyph) {
		x, y := cellOf(p, f.Camera)
		if x < 0 || y < 0 || x >= cols || y >= rows {
			return
		}
		s.SetContent(x, y, g.r, nil, base.Foreground(g.fg))
	}

	m := a.sim.Map()
	for _, kind := range game.ZoneKinds {
		g, ok := zoneGlyphs[kind]
		if !ok {
			continue
		}
		m.Each(kind, func(z game.Zone) {
			for wy := z.Y; wy < z.Bottom(); wy += cellH / 2 {
				for wx := z.X; wx < z.Right(); wx += cellW / 2 {
					put(game.Vec2{X: float64(wx), Y: float64(wy)}, g)
				}
			}
		})
	}

	half := float64(a.sim.Tuning().SpriteSize) / 2
	centre := func(p game.Vec2) game.Vec2 { return p.Add(game.Vec2{X: half, Y: half}) }
	for _, d := range f.Dust {
		put(d.Pos, glyphDust)
	}
	if !f.Gear.Collected {
		put(centre(f.Gear.Pos), glyphGear)
		di := glyphDI
		if f.DI.Frame == 1 {
			di = glyphDIYell
		}
		put(centre(f.DI.Pos), di)
	}
	put(centre(f.Recruit.Pos), glyphRecruit)

	a.drawStatus(f, rows, w)
	s.Show()
}

func (a *App) drawStatus(f game.Frame, row, width int) {
	bar := 20
	filled := 0
	if f.MaxStamina > 0 {
		filled = int(f.Stamina / f.MaxStamina * float64(bar))
	}
	line := fmt.Sprintf("Stamina [%-*s] Times Caught: %d/%d", bar, strings.Repeat("=", filled), f.CatchCount, f.MaxCatches)
	switch {
	case f.Latched:
		line += "  Press Space to Escape!"
	case f.Gear.Collected:
		line += "  Mission Complete: Gear Secured!"
	case f.Recruit.Pos.Dist(f.DI.Pos) < 100:
		line += "  You look like the monkey off Ace Ventura!"
	}
	drawString(a.screen, 0, row, width, line, tcell.StyleDefault.Bold(true))

	msg := ""
	if a.status != "" && a.ticks-a.statusAt < 60 {
		msg = a.status
	}
	drawString(a.screen, 0, row+1, width, msg+"  [wasd/hjkl move, caps sprint, space escape, x stop, c copy, m mute, q quit]", tcell.StyleDefault)
}

func drawString(s tcell.Screen, x, y, width int, str string, style tcell.Style) {
	for _, r := range str {
		if x >= width {
			return
		}
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
