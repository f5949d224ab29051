package game

// backoffTries bounds the draws for a backoff spot clear of buildings.
const backoffTries = 8

// updateDI runs the drill instructor for one tick: hold the latch if there
// is one, otherwise chase and try to catch. It reports whether the catch
// limit was reached, which ends the run.
func (s *Sim) updateDI() bool {
	if s.st.Latch == LatchLatched {
		s.holdLatch()
		return false
	}
	s.pursue()
	return s.tryCatch()
}

// pursue steps the DI straight at the recruit through the same zone rules
// the recruit obeys.
func (s *Sim) pursue() {
	di := &s.st.DI
	dir := s.st.Recruit.Pos.Sub(di.Pos).Normalize()
	di.Pos = s.res.Move(di.Pos, dir, di.Speed).Pos
}

// tryCatch latches the DI onto a recruit in reach once the cooldown since
// the previous catch has passed.
func (s *Sim) tryCatch() bool {
	if s.st.Latch != LatchFree || s.st.SinceCatch < s.tune.CatchCooldown {
		return false
	}
	if s.st.DI.Pos.Dist(s.st.Recruit.Pos) >= s.tune.CatchRadius {
		return false
	}
	s.st.Latch = LatchLatched
	s.st.LatchTimer = 0
	s.st.CatchCount++
	s.st.SinceCatch = 0
	s.emit(EventCaught)
	if s.st.CatchCount >= s.tune.MaxCatches {
		s.st.Running = false
		s.emit(EventLost)
		return true
	}
	return false
}

// holdLatch pins the DI to the recruit and lets go when the latch times
// out, or half as soon once the recruit is out of stamina.
func (s *Sim) holdLatch() {
	s.st.LatchTimer++
	s.st.DI.Pos = s.st.Recruit.Pos
	limit := s.tune.LatchDuration
	if s.st.LatchTimer >= limit || (s.st.Stamina.Empty() && s.st.LatchTimer >= limit/2) {
		s.release(EventAutoEscaped)
	}
}

// attemptEscape rolls the recruit's escape from a latch.
func (s *Sim) attemptEscape() {
	chance := s.st.Stamina.EscapeChance(s.tune.EscapeCap)
	if escapeSucceeds(chance, s.rng.Float64()) {
		s.release(EventEscaped)
		return
	}
	s.st.Stamina.Drain(s.tune.EscapePenalty)
	s.emit(EventEscapeFailed)
}

// release ends the latch and sends the DI backing off.
func (s *Sim) release(kind EventKind) {
	s.st.Latch = LatchFree
	s.st.LatchTimer = 0
	s.backOff()
	s.emit(kind)
}

// backOff shifts the DI by a random offset of up to BackoffRange on each
// axis, redrawing when the spot is inside a building.
func (s *Sim) backOff() {
	r := s.tune.BackoffRange
	from := s.st.DI.Pos
	for i := 0; i < backoffTries; i++ {
		off := Vec2{
			X: float64(s.rng.Intn(2*r+1) - r),
			Y: float64(s.rng.Intn(2*r+1) - r),
		}
		p := s.res.Clamp(from.Add(off))
		if !s.res.Blocked(p) {
			s.st.DI.Pos = p
			return
		}
	}
	s.st.DI.Pos = s.res.Clamp(from)
}
