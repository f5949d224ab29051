package game

// Default world dimensions.
const (
	MapWidth   = 1600
	MapHeight  = 1200
	TileSize   = 32
	SpriteSize = 32
)

// ParrisIsland returns the depot layout: a north–south main road with two
// crossroads and side paths, two barracks, the chow hall, the obstacle
// course, a sand pit, the rifle range and the parade deck.
func ParrisIsland() *Map {
	z := func(kind ZoneKind, x, y, w, h int) Zone {
		return Zone{Rect: Rect{X: x, Y: y, W: w, H: h}, Kind: kind}
	}
	zones := []Zone{
		// Main road and crossroads.
		z(ZoneRoad, 800-16, 0, 32, MapHeight),
		z(ZoneRoad, 800-16, 300-16, 32, 32),
		z(ZoneRoad, 800-16, 900-16, 32, 32),
		// Side paths.
		z(ZoneRoad, 100, 300-16, 16, 32),
		z(ZoneRoad, 1500, 300-16, 16, 32),
		z(ZoneRoad, 100, 900-16, 16, 32),
		z(ZoneRoad, 1500, 900-16, 16, 32),

		z(ZoneBarrack, 200, 100, 64, 64),
		z(ZoneBarrack, 500, 400, 64, 64),
		// The chow hall footprint is also listed with the barracks.
		z(ZoneBarrack, 600, 500, 64, 64),
		z(ZoneChowHall, 600, 500, 64, 64),

		z(ZoneObstacleCourse, 100, 300, 192, 48),
		z(ZoneSandPit, 300, 300, 100, 100),
		z(ZoneRifleRange, 600, 100, 192, 48),
		z(ZoneParadeDeck, 100, 500, 192, 48),
	}
	m, err := NewMap(MapWidth, MapHeight, TileSize, zones)
	if err != nil {
		panic(err) // static layout
	}
	return m
}
