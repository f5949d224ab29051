package tui

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/Parris-Island-Trials/internal/game"
)

// World units per terminal cell. Cells are roughly twice as tall as wide.
const (
	cellW = 16
	cellH = 32
)

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

type glyph struct {
	r  rune
	fg tcell.Color
}

var zoneGlyphs = map[game.ZoneKind]glyph{
	game.ZoneWater:          {'~', tcell.NewRGBColor(0, 119, 190)},
	game.ZoneRoad:           {'░', tcell.NewRGBColor(128, 128, 128)},
	game.ZoneSandPit:        {'∴', tcell.NewRGBColor(150, 130, 100)},
	game.ZoneRifleRange:     {'≡', tcell.NewRGBColor(0, 100, 0)},
	game.ZoneParadeDeck:     {'▒', tcell.NewRGBColor(255, 255, 255)},
	game.ZoneObstacleCourse: {'#', tcell.NewRGBColor(139, 69, 19)},
	game.ZoneBarrack:        {'█', tcell.NewRGBColor(139, 69, 19)},
	game.ZoneChowHall:       {'▓', tcell.NewRGBColor(139, 69, 19)},
}

var (
	glyphRecruit = glyph{'@', tcell.NewRGBColor(0, 255, 0)}
	glyphDI      = glyph{'D', tcell.NewRGBColor(210, 180, 140)}
	glyphDIYell  = glyph{'Ð', tcell.NewRGBColor(210, 180, 140)}
	glyphGear    = glyph{'$', tcell.NewRGBColor(85, 107, 47)}
	glyphDust    = glyph{'·', tcell.NewRGBColor(139, 69, 19)}
)

// cellOf maps a world point to a viewport cell.
func cellOf(p game.Vec2, cam game.Camera) (int, int) {
	return int((p.X - cam.Pos.X) / cellW), int((p.Y - cam.Pos.Y) / cellH)
}
