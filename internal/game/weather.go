package game

// updateWeather starts a dust storm every WeatherInterval ticks and, while
// one is blowing, may spawn a speck at the recruit and one somewhere in view.
func (s *Sim) updateWeather() {
	t := s.tune
	if s.st.FrameCount%t.WeatherInterval == 0 && t.WeatherDuration > 0 {
		s.st.WeatherTimer = t.WeatherDuration
		s.emit(EventWeather)
	}
	if s.st.WeatherTimer <= 0 {
		return
	}
	s.st.WeatherTimer--

	half := float64(t.SpriteSize) / 2
	if s.rng.Intn(t.DustChance) == 0 {
		s.spawnDust(s.st.Recruit.Pos.Add(Vec2{X: half, Y: half}))
	}
	if s.rng.Intn(t.DustChance) == 0 {
		cam := s.st.Camera
		s.spawnDust(Vec2{
			X: cam.Pos.X + float64(s.rng.Intn(cam.W)),
			Y: cam.Pos.Y + float64(s.rng.Intn(cam.H)),
		})
	}
}

func (s *Sim) spawnDust(p Vec2) {
	s.st.Dust = append(s.st.Dust, DustParticle{Pos: p})
}

// driftDust moves every speck down one unit and drops those that left the
// camera view.
func (s *Sim) driftDust() {
	cam := s.st.Camera
	kept := s.st.Dust[:0]
	for _, d := range s.st.Dust {
		d.Pos.Y++
		if d.Pos.Y > cam.Pos.Y+float64(cam.H) || d.Pos.X < cam.Pos.X || d.Pos.X > cam.Pos.X+float64(cam.W) {
			continue
		}
		kept = append(kept, d)
	}
	s.st.Dust = kept
}
