package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/Parris-Island-Trials/internal/game"
)

// holdTicks is how long a key press keeps its direction held. Terminals
// report presses and auto-repeats but never releases, so a held key is
// approximated by refreshing this window on every repeat.
const holdTicks = 30

type direction int

const (
	dirUp direction = iota
	dirDown
	dirLeft
	dirRight
	dirCount
)

// keyTracker emulates held keys from terminal key events.
type keyTracker struct {
	held   [dirCount]int
	sprint int
	escape bool
	quit   bool

	copyReq bool
	muteReq bool
}

func runeDirection(r rune) (direction, bool, bool) {
	switch r {
	case 'w', 'k':
		return dirUp, false, true
	case 's', 'j':
		return dirDown, false, true
	case 'a', 'h':
		return dirLeft, false, true
	case 'd', 'l':
		return dirRight, false, true
	case 'W', 'K':
		return dirUp, true, true
	case 'S', 'J':
		return dirDown, true, true
	case 'A', 'H':
		return dirLeft, true, true
	case 'D', 'L':
		return dirRight, true, true
	}
	return 0, false, false
}

func (kt *keyTracker) press(d direction, sprint bool) {
	kt.held[d] = holdTicks
	// A press cancels the opposite direction, which has no release event.
	switch d {
	case dirUp:
		kt.held[dirDown] = 0
	case dirDown:
		kt.held[dirUp] = 0
	case dirLeft:
		kt.held[dirRight] = 0
	case dirRight:
		kt.held[dirLeft] = 0
	}
	if sprint {
		kt.sprint = holdTicks
	} else {
		kt.sprint = 0
	}
}

// handle records one key event.
func (kt *keyTracker) handle(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		kt.quit = true
	case tcell.KeyUp:
		kt.press(dirUp, ev.Modifiers()&tcell.ModShift != 0)
	case tcell.KeyDown:
		kt.press(dirDown, ev.Modifiers()&tcell.ModShift != 0)
	case tcell.KeyLeft:
		kt.press(dirLeft, ev.Modifiers()&tcell.ModShift != 0)
	case tcell.KeyRight:
		kt.press(dirRight, ev.Modifiers()&tcell.ModShift != 0)
	case tcell.KeyRune:
		r := ev.Rune()
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			if r == 'c' || r == 'C' {
				kt.quit = true
			}
			return
		}
		switch r {
		case ' ':
			kt.escape = true
		case 'q':
			kt.quit = true
		case 'c':
			kt.copyReq = true
		case 'm':
			kt.muteReq = true
		case 'x':
			kt.held = [dirCount]int{}
			kt.sprint = 0
		default:
			if d, sprint, ok := runeDirection(r); ok {
				kt.press(d, sprint)
			}
		}
	}
}

// next returns the input for one tick and ages the held keys.
func (kt *keyTracker) next() game.Input {
	in := game.Input{
		Up:     kt.held[dirUp] > 0,
		Down:   kt.held[dirDown] > 0,
		Left:   kt.held[dirLeft] > 0,
		Right:  kt.held[dirRight] > 0,
		Sprint: kt.sprint > 0,
		Escape: kt.escape,
		Quit:   kt.quit,
	}
	for i := range kt.held {
		if kt.held[i] > 0 {
			kt.held[i]--
		}
	}
	if kt.sprint > 0 {
		kt.sprint--
	}
	kt.escape = false
	return in
}

// takeCommands returns and clears the pending frontend commands.
func (kt *keyTracker) takeCommands() (wantCopy, wantMute bool) {
	wantCopy, wantMute = kt.copyReq, kt.muteReq
	kt.copyReq, kt.muteReq = false, false
	return wantCopy, wantMute
}
