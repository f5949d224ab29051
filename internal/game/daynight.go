package game

import (
	"image/color"
	"time"
)

const (
	sunrise = 6.0
	sunset  = 18.0
)

// depotZone is the fixed UTC-5 clock the lighting follows year round.
var depotZone = time.FixedZone("EST", -5*60*60)

// Ground colours for full day and full night.
var (
	DayColor   = color.RGBA{R: 194, G: 178, B: 128, A: 255}
	NightColor = color.RGBA{R: 80, G: 80, B: 100, A: 255}
)

// DayNightFactor returns the light factor for an instant: 0 is full
// daylight, 1 is full night.
func DayNightFactor(now time.Time) float64 {
	est := now.In(depotZone)
	hour := float64(est.Hour()) + float64(est.Minute())/60
	return FactorAtHour(hour)
}

// FactorAtHour maps an hour in [0,24) to the light factor. Daylight dims
// from sunrise to sunset; the night holds full dark until the midpoint after
// midnight, then brightens back to zero at sunrise.
func FactorAtHour(hour float64) float64 {
	var t float64
	if hour >= sunrise && hour < sunset {
		t = (hour - sunrise) / (sunset - sunrise)
	} else {
		night := hour - sunset
		if hour < sunrise {
			night = hour + 24 - sunset
		}
		n := night / (24 - (sunset - sunrise))
		if n < 0.5 {
			t = 1
		} else {
			t = 1 - (n-0.5)*2
		}
	}
	return clampf(t, 0, 1)
}

// LerpColor blends day into night by t per channel.
func LerpColor(day, night color.RGBA, t float64) color.RGBA {
	t = clampf(t, 0, 1)
	mix := func(a, b uint8) uint8 {
		return uint8((1-t)*float64(a) + t*float64(b))
	}
	return color.RGBA{
		R: mix(day.R, night.R),
		G: mix(day.G, night.G),
		B: mix(day.B, night.B),
		A: 255,
	}
}
