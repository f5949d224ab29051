package game

import (
	"errors"
	"fmt"
)

// ZoneKind identifies the terrain or structure a zone represents.
type ZoneKind uint8

const (
	ZoneBarrack        ZoneKind = iota // Squad bay building, blocks movement
	ZoneObstacleCourse                 // Walls and logs, blocks movement
	ZoneSandPit                        // Slows movement, drains recruit stamina
	ZoneRoad                           // Cosmetic
	ZoneRifleRange                     // Off limits, blocks without sliding
	ZoneParadeDeck                     // Off limits, blocks without sliding
	ZoneChowHall                       // Building, blocks movement
	ZoneWater                          // Cosmetic
	ZoneBackgroundTile                 // Uniform ground grid, cosmetic
	zoneKindCount                      // sentinel
)

// String returns a short lowercase label for the kind.
func (k ZoneKind) String() string {
	switch k {
	case ZoneBarrack:
		return "barrack"
	case ZoneObstacleCourse:
		return "obstacle_course"
	case ZoneSandPit:
		return "sand_pit"
	case ZoneRoad:
		return "road"
	case ZoneRifleRange:
		return "rifle_range"
	case ZoneParadeDeck:
		return "parade_deck"
	case ZoneChowHall:
		return "chow_hall"
	case ZoneWater:
		return "water"
	case ZoneBackgroundTile:
		return "background_tile"
	default:
		return "unknown"
	}
}

// ZoneKinds lists every kind in draw order (ground first, structures last).
var ZoneKinds = [...]ZoneKind{
	ZoneBackgroundTile,
	ZoneWater,
	ZoneRoad,
	ZoneSandPit,
	ZoneRifleRange,
	ZoneParadeDeck,
	ZoneObstacleCourse,
	ZoneBarrack,
	ZoneChowHall,
}

// Zone is a typed rectangular region of the map.
type Zone struct {
	Rect
	Kind ZoneKind
}

// ErrEmptyMap is returned when a map has no playable area.
var ErrEmptyMap = errors.New("game: map has no area")

// ErrBadZone is returned for zones with no area or an unknown kind.
var ErrBadZone = errors.New("game: invalid zone")

// Map is the static zone layout of a run. It is never modified after NewMap.
type Map struct {
	width  int
	height int
	zones  [zoneKindCount][]Zone
}

// NewMap groups zones by kind, preserving their order, and lays a uniform
// background tile grid of tileSize over the whole map (no grid if tileSize
// is zero).
func NewMap(width, height, tileSize int, zones []Zone) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyMap, width, height)
	}
	m := &Map{width: width, height: height}
	for i, z := range zones {
		if z.Empty() || z.Kind >= zoneKindCount {
			return nil, fmt.Errorf("%w: #%d %s %+v", ErrBadZone, i, z.Kind, z.Rect)
		}
		m.zones[z.Kind] = append(m.zones[z.Kind], z)
	}
	if tileSize > 0 {
		m.zones[ZoneBackgroundTile] = append(m.zones[ZoneBackgroundTile], BackgroundTiles(width, height, tileSize)...)
	}
	return m, nil
}

// BackgroundTiles returns a grid of size×size tiles covering w×h.
func BackgroundTiles(w, h, size int) []Zone {
	if size <= 0 {
		return nil
	}
	tiles := make([]Zone, 0, ((w+size-1)/size)*((h+size-1)/size))
	for y := 0; y < h; y += size {
		for x := 0; x < w; x += size {
			tiles = append(tiles, Zone{Rect: Rect{X: x, Y: y, W: size, H: size}, Kind: ZoneBackgroundTile})
		}
	}
	return tiles
}

// Width returns the map width in world units.
func (m *Map) Width() int { return m.width }

// Height returns the map height in world units.
func (m *Map) Height() int { return m.height }

// Bounds returns the map rectangle.
func (m *Map) Bounds() Rect { return Rect{W: m.width, H: m.height} }

// Zones returns a copy of the zones of one kind, in map order.
func (m *Map) Zones(kind ZoneKind) []Zone {
	if kind >= zoneKindCount {
		return nil
	}
	out := make([]Zone, len(m.zones[kind]))
	copy(out, m.zones[kind])
	return out
}

// Count returns how many zones of a kind the map holds.
func (m *Map) Count(kind ZoneKind) int {
	if kind >= zoneKindCount {
		return 0
	}
	return len(m.zones[kind])
}

// Each calls fn for every zone of a kind without copying.
func (m *Map) Each(kind ZoneKind, fn func(Zone)) {
	if kind >= zoneKindCount {
		return
	}
	for _, z := range m.zones[kind] {
		fn(z)
	}
}

// KindAt returns the topmost non-tile zone kind covering the point, or
// ZoneBackgroundTile when only open ground is there.
func (m *Map) KindAt(x, y float64) ZoneKind {
	for i := len(ZoneKinds) - 1; i >= 0; i-- {
		k := ZoneKinds[i]
		if k == ZoneBackgroundTile {
			continue
		}
		for _, z := range m.zones[k] {
			if z.Contains(x, y) {
				return k
			}
		}
	}
	return ZoneBackgroundTile
}
