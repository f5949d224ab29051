package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Parris-Island-Trials/internal/game"
)

const (
	staminaBarWidth  = 200
	staminaBarHeight = 20
	dustSize         = 8
	tauntRange       = 100 // DI taunts a free recruit within this distance
)

// overlay is what the HUD shows for a frame.
type overlay struct {
	StaminaFill     float32 // filled width of the stamina bar
	CatchLine       string
	Taunt           bool
	EscapePrompt    bool
	MissionComplete bool
}

func buildOverlay(f game.Frame) overlay {
	fill := float32(0)
	if f.MaxStamina > 0 {
		fill = float32(f.Stamina / f.MaxStamina * staminaBarWidth)
	}
	near := f.Recruit.Pos.Dist(f.DI.Pos) < tauntRange
	return overlay{
		StaminaFill:     fill,
		CatchLine:       fmt.Sprintf("Times Caught: %d/%d", f.CatchCount, f.MaxCatches),
		Taunt:           !f.Gear.Collected && near && !f.Latched,
		EscapePrompt:    f.Latched,
		MissionComplete: f.Gear.Collected,
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	f := g.frame
	ground := game.LerpColor(game.DayColor, game.NightColor, f.DayNight)
	screen.Fill(ground)

	g.drawMap(screen, f, ground)
	g.drawActors(screen, f)
	g.drawDust(screen, f)
	g.drawHUD(screen, f)
	g.msgs.Draw(screen, g.face, g.width, g.height)

	if g.showDebug {
		g.drawDebug(screen, f)
	}
}

// toScreen converts a world rectangle to camera space, reporting false when
// it is entirely outside the viewport.
func toScreen(r game.Rect, cam game.Camera) (x, y float32, ok bool) {
	sx := r.X - int(cam.Pos.X)
	sy := r.Y - int(cam.Pos.Y)
	if sx+r.W <= 0 || sx >= cam.W || sy+r.H <= 0 || sy >= cam.H {
		return 0, 0, false
	}
	return float32(sx), float32(sy), true
}

func (g *Game) drawMap(screen *ebiten.Image, f game.Frame, ground color.RGBA) {
	m := g.sim.Map()
	grid := shade(ground, 0.06)
	for _, kind := range game.ZoneKinds {
		m.Each(kind, func(z game.Zone) {
			x, y, ok := toScreen(z.Rect, f.Camera)
			if !ok {
				return
			}
			w, h := float32(z.W), float32(z.H)
			if kind == game.ZoneBackgroundTile {
				vector.StrokeRect(screen, x, y, w, h, 1, grid, false)
				return
			}
			c := zoneColor(kind)
			vector.FillRect(screen, x, y, w, h, c, false)
			switch kind {
			case game.ZoneBarrack, game.ZoneChowHall:
				// Roof ridge.
				vector.FillRect(screen, x, y+h/2-2, w, 4, shade(c, 0.3), false)
			case game.ZoneObstacleCourse:
				for bx := float32(8); bx < w; bx += 24 {
					vector.FillRect(screen, x+bx, y+4, 4, h-8, shade(c, 0.4), false)
				}
			case game.ZoneRifleRange:
				for tx := float32(16); tx < w; tx += 32 {
					vector.StrokeRect(screen, x+tx, y+4, 8, 8, 1, colWhite, false)
				}
			}
			vector.StrokeRect(screen, x, y, w, h, 1, shade(c, 0.25), false)
		})
	}
}

func (g *Game) drawActors(screen *ebiten.Image, f game.Frame) {
	size := g.sim.Tuning().SpriteSize
	box := func(p game.Vec2) game.Rect {
		return game.Rect{X: int(p.X), Y: int(p.Y), W: size, H: size}
	}
	s := float32(size)

	if !f.Gear.Collected {
		if x, y, ok := toScreen(box(f.Gear.Pos), f.Camera); ok {
			vector.FillRect(screen, x+6, y+8, s-12, s-12, colGear, false)
			vector.FillRect(screen, x+s/2-2, y+8, 4, s-12, colGearStrap, false)
			vector.StrokeRect(screen, x+6, y+8, s-12, s-12, 1, colBlack, false)
		}
	}

	if x, y, ok := toScreen(box(f.Recruit.Pos), f.Camera); ok {
		vector.FillRect(screen, x+8, y+4, s-16, s-12, colRecruit, false)
		// Stride: legs swap sides through the walk cycle.
		stride := float32(f.Recruit.Frame%2) * 4
		vector.FillRect(screen, x+10+stride, y+s-8, 4, 8, shade(colRecruit, 0.5), false)
		vector.FillRect(screen, x+s-14-stride, y+s-8, 4, 8, shade(colRecruit, 0.5), false)
	}

	if !f.Gear.Collected {
		if x, y, ok := toScreen(box(f.DI.Pos), f.Camera); ok {
			vector.FillRect(screen, x+6, y+4, s-12, s-8, colDI, false)
			// Campaign cover.
			vector.FillRect(screen, x+2, y, s-4, 5, colBrown, false)
			mouth := float32(2)
			if f.DI.Frame == 1 {
				mouth = 6
			}
			vector.FillRect(screen, x+s/2-4, y+14, 8, mouth, colBlack, false)
		}
	}
}

func (g *Game) drawDust(screen *ebiten.Image, f game.Frame) {
	for _, d := range f.Dust {
		r := game.Rect{X: int(d.Pos.X), Y: int(d.Pos.Y), W: dustSize, H: dustSize}
		if x, y, ok := toScreen(r, f.Camera); ok {
			vector.FillRect(screen, x, y, dustSize, dustSize, colBrown, false)
		}
	}
}

func (g *Game) drawHUD(screen *ebiten.Image, f game.Frame) {
	o := buildOverlay(f)

	vector.FillRect(screen, 10, 10, staminaBarWidth, staminaBarHeight, colBlack, false)
	vector.FillRect(screen, 10, 10, o.StaminaFill, staminaBarHeight, colRecruit, false)

	drawShadowed(screen, o.CatchLine, g.face, 10, 40)
	if o.Taunt {
		drawShadowed(screen, "You look like the monkey off Ace Ventura!", g.face, 10, float64(g.height-102))
	}
	if o.MissionComplete {
		drawShadowed(screen, "Mission Complete: Gear Secured!", g.face, 10, float64(g.height-62))
	}
	if o.EscapePrompt {
		const prompt = "Press Space to Escape!"
		w, _ := text.Measure(prompt, g.face, msgLineHeight)
		drawText(screen, prompt, g.face, (float64(g.width)-w)/2, float64(g.height-150), colWhite)
	}
}

func (g *Game) drawDebug(screen *ebiten.Image, f game.Frame) {
	lines := fmt.Sprintf("TPS %.0f  tick %d\nrecruit (%.0f,%.0f) frame %d\nDI (%.0f,%.0f) latch %d/%d\nweather %d  light %.2f  dust %d\nC=copy  M=mute  F3=debug",
		ebiten.ActualTPS(), f.Tick,
		f.Recruit.Pos.X, f.Recruit.Pos.Y, f.Recruit.Frame,
		f.DI.Pos.X, f.DI.Pos.Y, f.LatchTimer, g.sim.Tuning().LatchDuration,
		f.WeatherTimer, f.DayNight, len(f.Dust))
	vector.FillRect(screen, float32(g.width-236), 6, 230, 82, colPanel, false)
	vector.StrokeRect(screen, float32(g.width-236), 6, 230, 82, 1, colPanelEdge, false)
	ebitenutil.DebugPrintAt(screen, lines, g.width-230, 8)
}

func drawText(dst *ebiten.Image, s string, face text.Face, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.LineSpacing = msgLineHeight
	text.Draw(dst, s, face, op)
}

// drawShadowed draws dark text over a white shadow offset by two pixels.
func drawShadowed(dst *ebiten.Image, s string, face text.Face, x, y float64) {
	drawText(dst, s, face, x+2, y+2, colWhite)
	drawText(dst, s, face, x, y, colBlack)
}
