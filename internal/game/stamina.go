package game

// StaminaPool is the recruit's sprint and escape resource.
type StaminaPool struct {
	Current   float64
	Max       float64
	DrainRate float64 // per sprint tick
	RegenRate float64 // per resting tick
}

// NewStaminaPool returns a full pool.
func NewStaminaPool(max, drain, regen float64) StaminaPool {
	return StaminaPool{Current: max, Max: max, DrainRate: drain, RegenRate: regen}
}

func (p *StaminaPool) clamp() {
	p.Current = clampf(p.Current, 0, p.Max)
}

// Update applies one tick of drain or regeneration and reports whether the
// recruit sprints this tick. A latched recruit neither sprints nor recovers.
func (p *StaminaPool) Update(sprintHeld, latched bool) bool {
	sprinting := sprintHeld && p.Current > 0 && !latched
	switch {
	case sprinting:
		p.Current -= p.DrainRate
	case !latched && p.Current < p.Max:
		p.Current += p.RegenRate
	}
	p.clamp()
	return sprinting
}

// Drain removes amount, never going below zero.
func (p *StaminaPool) Drain(amount float64) {
	p.Current -= amount
	p.clamp()
}

// Fraction returns Current/Max in [0,1].
func (p StaminaPool) Fraction() float64 {
	if p.Max <= 0 {
		return 0
	}
	return clampf(p.Current/p.Max, 0, 1)
}

// Empty reports whether no stamina is left.
func (p StaminaPool) Empty() bool { return p.Current <= 0 }

// EscapeChance is the probability of breaking a latch: the stamina fraction,
// capped.
func (p StaminaPool) EscapeChance(limit float64) float64 {
	c := p.Fraction()
	if c > limit {
		return limit
	}
	return c
}

// escapeSucceeds resolves one escape roll for a uniform draw in [0,1).
func escapeSucceeds(chance, draw float64) bool {
	return draw < chance
}
