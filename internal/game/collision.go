package game

// zonePolicy is the collision rule applied to one zone kind.
type zonePolicy struct {
	slide bool // run resolveSlide against the zone first
	block bool // revert to the pre-tick position on overlap
	slow  bool // redo the move from the pre-tick position at half speed
}

// zonePolicies maps each kind to its rule. Kinds without an entry are
// cosmetic.
var zonePolicies = [zoneKindCount]zonePolicy{
	ZoneBarrack:        {slide: true, block: true},
	ZoneObstacleCourse: {slide: true, block: true},
	ZoneSandPit:        {slow: true},
	ZoneRifleRange:     {block: true},
	ZoneParadeDeck:     {block: true},
	ZoneChowHall:       {slide: true, block: true},
}

// collisionOrder is the order kinds are resolved in. Each zone works on the
// position left by the previous one, so the order changes outcomes.
var collisionOrder = [...]ZoneKind{
	ZoneBarrack,
	ZoneObstacleCourse,
	ZoneSandPit,
	ZoneRifleRange,
	ZoneParadeDeck,
	ZoneChowHall,
}

// groundKinds are roofed structures an actor is never drawn above.
var groundKinds = [...]ZoneKind{ZoneBarrack, ZoneChowHall}

// resolveSlide steps pos by dir*speed. If the step would overlap obstacle it
// tries a double-length horizontal step, then a double-length vertical step,
// and stays put when both are blocked.
func resolveSlide(pos, dir Vec2, speed float64, obstacle Rect, size int) Vec2 {
	candidate := pos.Add(dir.Scale(speed))
	if !boxAt(candidate, size).Intersects(obstacle) {
		return candidate
	}
	slide := Vec2{pos.X + dir.X*speed*2, pos.Y}
	if !boxAt(slide, size).Intersects(obstacle) {
		return slide
	}
	slide = Vec2{pos.X, pos.Y + dir.Y*speed*2}
	if !boxAt(slide, size).Intersects(obstacle) {
		return slide
	}
	return pos
}

// Movement is the outcome of one resolved move.
type Movement struct {
	Pos Vec2
	// SandPits counts the sand pit zones that slowed the move.
	SandPits int
}

// Resolver moves sprite-sized actors across a Map.
type Resolver struct {
	m    *Map
	size int
}

// NewResolver returns a resolver for actors of the given sprite size.
func NewResolver(m *Map, spriteSize int) *Resolver {
	return &Resolver{m: m, size: spriteSize}
}

// Move advances an actor at from along dir (normalised here) at speed and
// resolves it against every collidable zone, then applies the ground snap,
// the map clamp, and a final hard-block check.
func (r *Resolver) Move(from, dir Vec2, speed float64) Movement {
	dir = dir.Normalize()
	pos := from

	// Pre-pass against the first barrack only. With no barracks this is a
	// plain step, so an actor always advances at least once.
	var first Rect
	if barracks := r.m.zones[ZoneBarrack]; len(barracks) > 0 {
		first = barracks[0].Rect
	}
	pos = resolveSlide(pos, dir, speed, first, r.size)

	sand := 0
	for _, kind := range collisionOrder {
		pol := zonePolicies[kind]
		for _, z := range r.m.zones[kind] {
			if pol.slide {
				pos = resolveSlide(pos, dir, speed, z.Rect, r.size)
			}
			if !boxAt(pos, r.size).Intersects(z.Rect) {
				continue
			}
			switch {
			case pol.slow:
				pos = from.Add(dir.Scale(speed / 2))
				sand++
			case pol.block:
				pos = from
			}
		}
	}

	pos = r.settle(pos)
	if r.Blocked(pos) && !r.Blocked(from) {
		pos = from
	}
	return Movement{Pos: pos, SandPits: sand}
}

// settle applies the ground snap and then the map clamp.
func (r *Resolver) settle(pos Vec2) Vec2 {
	return r.Clamp(r.groundSnap(pos))
}

// groundSnap pushes an actor whose column overlaps a roofed structure, and
// who stands above its bottom edge, down onto that edge.
func (r *Resolver) groundSnap(pos Vec2) Vec2 {
	for _, kind := range groundKinds {
		for _, z := range r.m.zones[kind] {
			left := pos.X
			right := pos.X + float64(r.size)
			if right > float64(z.X) && left < float64(z.Right()) && pos.Y < float64(z.Bottom()) {
				pos.Y = float64(z.Bottom())
			}
		}
	}
	return pos
}

// Clamp keeps an actor's box inside the map.
func (r *Resolver) Clamp(pos Vec2) Vec2 {
	pos.X = clampf(pos.X, 0, float64(r.m.width-r.size))
	pos.Y = clampf(pos.Y, 0, float64(r.m.height-r.size))
	return pos
}

// Blocked reports whether an actor at pos overlaps any blocking zone.
func (r *Resolver) Blocked(pos Vec2) bool {
	box := boxAt(pos, r.size)
	for _, kind := range collisionOrder {
		if !zonePolicies[kind].block {
			continue
		}
		for _, z := range r.m.zones[kind] {
			if box.Intersects(z.Rect) {
				return true
			}
		}
	}
	return false
}
