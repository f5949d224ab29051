package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTuning_Valid(t *testing.T) {
	require.NoError(t, DefaultTuning().Validate())
}

func TestTuningValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Tuning)
	}{
		{"zero speed", func(tu *Tuning) { tu.DISpeed = 0 }},
		{"zero stamina", func(tu *Tuning) { tu.MaxStamina = 0 }},
		{"negative regen", func(tu *Tuning) { tu.StaminaRegen = -1 }},
		{"no catches", func(tu *Tuning) { tu.MaxCatches = 0 }},
		{"no latch", func(tu *Tuning) { tu.LatchDuration = 0 }},
		{"escape cap above one", func(tu *Tuning) { tu.EscapeCap = 1.01 }},
		{"negative backoff", func(tu *Tuning) { tu.BackoffRange = -5 }},
		{"zero view", func(tu *Tuning) { tu.ViewWidth = 0 }},
		{"negative margin", func(tu *Tuning) { tu.GearMargin = -1 }},
		{"zero dust chance", func(tu *Tuning) { tu.DustChance = 0 }},
		{"zero cadence", func(tu *Tuning) { tu.RecruitFrameEvery = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tu := DefaultTuning()
			tt.mutate(&tu)
			assert.ErrorIs(t, tu.Validate(), ErrBadTuning)
		})
	}
}
