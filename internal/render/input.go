package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Parris-Island-Trials/internal/game"
)

// keyFunc reports whether a key is held. ebiten.IsKeyPressed in play.
type keyFunc func(ebiten.Key) bool

// commands are frontend-only actions that never reach the simulation.
type commands struct {
	Copy  bool // copy the run summary
	Mute  bool // toggle audio cues
	Debug bool // toggle the debug overlay
}

// controls turns held keys into one tick of input. Space, Escape and the
// command keys are edge-triggered.
type controls struct {
	prevKeys map[ebiten.Key]bool
}

func newControls() controls {
	return controls{prevKeys: make(map[ebiten.Key]bool)}
}

// edgeKeys are only acted on the frame they go down.
var edgeKeys = [...]ebiten.Key{
	ebiten.KeySpace, ebiten.KeyEscape, ebiten.KeyC, ebiten.KeyM, ebiten.KeyF3,
}

func (c *controls) read(pressed keyFunc) (game.Input, commands) {
	currentKeys := map[ebiten.Key]bool{}
	edge := func(k ebiten.Key) bool {
		return currentKeys[k] && !c.prevKeys[k]
	}
	for _, k := range edgeKeys {
		currentKeys[k] = pressed(k)
	}

	in := game.Input{
		Up:     pressed(ebiten.KeyW) || pressed(ebiten.KeyArrowUp),
		Down:   pressed(ebiten.KeyS) || pressed(ebiten.KeyArrowDown),
		Left:   pressed(ebiten.KeyA) || pressed(ebiten.KeyArrowLeft),
		Right:  pressed(ebiten.KeyD) || pressed(ebiten.KeyArrowRight),
		Sprint: pressed(ebiten.KeyShiftLeft) || pressed(ebiten.KeyShiftRight),
		Escape: edge(ebiten.KeySpace),
		Quit:   edge(ebiten.KeyEscape),
	}
	cmd := commands{
		Copy:  edge(ebiten.KeyC),
		Mute:  edge(ebiten.KeyM),
		Debug: edge(ebiten.KeyF3),
	}

	c.prevKeys = currentKeys
	return in, cmd
}
