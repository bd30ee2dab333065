package components

import "github.com/yohamta/donburi"

// GardenData is the singleton plant registry. Order is the draw order: earlier
// entries are drawn first and sit visually underneath later ones.
type GardenData struct {
	Order   []donburi.Entity
	Sinking bool
}

var Garden = donburi.NewComponentType[GardenData]()

// Insert places e at index i, shifting later entries up. i must be in [0, len(Order)].
func (g *GardenData) Insert(i int, e donburi.Entity) {
	var zero donburi.Entity
	g.Order = append(g.Order, zero)
	copy(g.Order[i+1:], g.Order[i:])
	g.Order[i] = e
}

// ClockData is the singleton frame clock driving sway and timed transitions.
type ClockData struct {
	Frames  int
	Seconds float64
}

var Clock = donburi.NewComponentType[ClockData]()

// Millis returns the clock in milliseconds.
func (c *ClockData) Millis() float64 {
	return c.Seconds * 1000
}
