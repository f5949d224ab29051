package render

import (
	"image/color"

	"github.com/Garsondee/Parris-Island-Trials/internal/game"
)

var (
	colRecruit   = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	colDI        = color.RGBA{R: 210, G: 180, B: 140, A: 255}
	colBlack     = color.RGBA{A: 255}
	colWhite     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colBrown     = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	colGray      = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	colDarkSand  = color.RGBA{R: 150, G: 130, B: 100, A: 255}
	colGrass     = color.RGBA{R: 0, G: 100, B: 0, A: 255}
	colPavement  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colWater     = color.RGBA{R: 0, G: 119, B: 190, A: 255}
	colGear      = color.RGBA{R: 85, G: 107, B: 47, A: 255}
	colGearStrap = color.RGBA{R: 60, G: 40, B: 20, A: 255}
	colPanel     = color.RGBA{R: 6, G: 10, B: 6, A: 200}
	colPanelEdge = color.RGBA{R: 60, G: 100, B: 60, A: 180}
)

// zoneColor returns the fill colour for a zone kind. Background tiles use
// the day/night ground colour instead.
func zoneColor(k game.ZoneKind) color.RGBA {
	switch k {
	case game.ZoneWater:
		return colWater
	case game.ZoneRoad:
		return colGray
	case game.ZoneBarrack, game.ZoneObstacleCourse, game.ZoneChowHall:
		return colBrown
	case game.ZoneSandPit:
		return colDarkSand
	case game.ZoneRifleRange:
		return colGrass
	case game.ZoneParadeDeck:
		return colPavement
	default:
		return colBlack
	}
}

// shade darkens c by f in [0,1].
func shade(c color.RGBA, f float64) color.RGBA {
	k := 1 - f
	return color.RGBA{R: uint8(float64(c.R) * k), G: uint8(float64(c.G) * k), B: uint8(float64(c.B) * k), A: c.A}
}
