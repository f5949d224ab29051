package render

import (
	"log/slog"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/Parris-Island-Trials/internal/game"
)

// gameOverLinger is how many frames the window stays up after a loss so
// the banner can be read.
const gameOverLinger = 120

// Cues plays sounds for game events.
type Cues interface {
	Play(kind game.EventKind)
	ToggleMute() bool
}

// Game drives a Sim from an ebiten window. It implements ebiten.Game.
type Game struct {
	sim    *game.Sim
	cues   Cues
	msgs   *MessageLog
	ctl    controls
	keys   keyFunc
	frame  game.Frame
	face   text.Face
	logger *slog.Logger

	copyText  func(string) error
	showDebug bool
	linger    int

	width, height int
}

// Option configures a Game.
type Option func(*Game)

// WithCues routes events to an audio player.
func WithCues(c Cues) Option {
	return func(g *Game) { g.cues = c }
}

// WithLogger sets the logger for frontend diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(write func(string) error) Option {
	return func(g *Game) { g.copyText = write }
}

func withKeys(k keyFunc) Option {
	return func(g *Game) { g.keys = k }
}

func New(sim *game.Sim, opts ...Option) *Game {
	t := sim.Tuning()
	g := &Game{
		sim:      sim,
		msgs:     NewMessageLog(),
		ctl:      newControls(),
		keys:     ebiten.IsKeyPressed,
		face:     text.NewGoXFace(basicfont.Face7x13),
		logger:   slog.Default(),
		copyText: clipboard.WriteAll,
		linger:   gameOverLinger,
		width:    t.ViewWidth,
		height:   t.ViewHeight,
	}
	for _, o := range opts {
		o(g)
	}
	g.frame = sim.Frame()
	return g
}

// Frame returns the snapshot the next Draw renders.
func (g *Game) Frame() game.Frame { return g.frame }

func (g *Game) Update() error {
	g.msgs.Advance()

	if !g.sim.Running() {
		if g.frame.Outcome == game.OutcomeQuit || g.linger <= 0 {
			return ebiten.Termination
		}
		g.linger--
		return nil
	}

	in, cmd := g.ctl.read(g.keys)
	g.handleCommands(cmd)

	for _, e := range g.sim.Step(in) {
		g.msgs.AddEvent(e.Kind)
		if g.cues != nil {
			g.cues.Play(e.Kind)
		}
	}
	g.frame = g.sim.Frame()
	return nil
}

func (g *Game) handleCommands(cmd commands) {
	if cmd.Copy {
		if err := g.copyText(g.sim.Summary()); err != nil {
			g.logger.Warn("copy summary failed", "error", err)
			g.msgs.Add("Clipboard unavailable", msgLifetime)
		} else {
			g.msgs.Add("Summary copied", msgLifetime)
		}
	}
	if cmd.Mute && g.cues != nil {
		if g.cues.ToggleMute() {
			g.msgs.Add("Sound off", msgLifetime)
		} else {
			g.msgs.Add("Sound on", msgLifetime)
		}
	}
	if cmd.Debug {
		g.showDebug = !g.showDebug
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
