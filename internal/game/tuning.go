package game

import (
	"errors"
	"fmt"
)

// ErrBadTuning is returned by Tuning.Validate.
var ErrBadTuning = errors.New("game: invalid tuning")

// Tuning holds every gameplay constant of a run.
type Tuning struct {
	RecruitSpeed float64
	SprintSpeed  float64
	DISpeed      float64

	MaxStamina   float64
	StaminaDrain float64 // per sprint tick, and per sand pit tick
	StaminaRegen float64

	MaxCatches    int // catches before the run is lost
	CatchCooldown int // ticks between catches
	LatchDuration int // ticks before an automatic escape
	CatchRadius   float64
	GearRadius    float64

	EscapeCap     float64 // best possible escape chance
	EscapePenalty float64 // stamina lost on a failed escape
	BackoffRange  int     // DI backs off up to this far on each axis

	ViewWidth  int
	ViewHeight int
	SpriteSize int
	GearMargin int // gear is placed at least this far from the map edge

	WeatherInterval int // ticks between dust storms
	WeatherDuration int
	DustChance      int // one in DustChance per spawn point per tick

	RecruitFrameEvery int
	DIFrameEvery      int
}

// DefaultTuning returns the stock game balance.
func DefaultTuning() Tuning {
	return Tuning{
		RecruitSpeed: 1.5,
		SprintSpeed:  3.0,
		DISpeed:      1.5,

		MaxStamina:   100,
		StaminaDrain: 0.1,
		StaminaRegen: 0.2,

		MaxCatches:    15,
		CatchCooldown: 120,
		LatchDuration: 120,
		CatchRadius:   20,
		GearRadius:    20,

		EscapeCap:     0.9,
		EscapePenalty: 15,
		BackoffRange:  100,

		ViewWidth:  800,
		ViewHeight: 600,
		SpriteSize: SpriteSize,
		GearMargin: 100,

		WeatherInterval: 600,
		WeatherDuration: 120,
		DustChance:      5,

		RecruitFrameEvery: 10,
		DIFrameEvery:      15,
	}
}

// Validate rejects balances the simulation cannot run with.
func (t Tuning) Validate() error {
	switch {
	case t.RecruitSpeed <= 0 || t.SprintSpeed <= 0 || t.DISpeed <= 0:
		return fmt.Errorf("%w: speeds must be positive", ErrBadTuning)
	case t.MaxStamina <= 0:
		return fmt.Errorf("%w: max stamina must be positive", ErrBadTuning)
	case t.StaminaDrain < 0 || t.StaminaRegen < 0 || t.EscapePenalty < 0:
		return fmt.Errorf("%w: stamina rates must not be negative", ErrBadTuning)
	case t.MaxCatches <= 0:
		return fmt.Errorf("%w: max catches must be positive", ErrBadTuning)
	case t.CatchCooldown < 0 || t.LatchDuration <= 0:
		return fmt.Errorf("%w: latch timings out of range", ErrBadTuning)
	case t.EscapeCap < 0 || t.EscapeCap > 1:
		return fmt.Errorf("%w: escape cap %.2f outside [0,1]", ErrBadTuning, t.EscapeCap)
	case t.BackoffRange < 0:
		return fmt.Errorf("%w: negative backoff range", ErrBadTuning)
	case t.ViewWidth <= 0 || t.ViewHeight <= 0 || t.SpriteSize <= 0:
		return fmt.Errorf("%w: view and sprite sizes must be positive", ErrBadTuning)
	case t.GearMargin < 0:
		return fmt.Errorf("%w: negative gear margin", ErrBadTuning)
	case t.WeatherInterval <= 0 || t.WeatherDuration < 0 || t.DustChance <= 0:
		return fmt.Errorf("%w: weather timings out of range", ErrBadTuning)
	case t.RecruitFrameEvery <= 0 || t.DIFrameEvery <= 0:
		return fmt.Errorf("%w: animation cadences must be positive", ErrBadTuning)
	}
	return nil
}
