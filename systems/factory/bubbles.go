package factory

import (
	"math/rand/v2"

	"github.com/automoto/petalfall/archetypes"
	"github.com/automoto/petalfall/components"
	cfg "github.com/automoto/petalfall/config"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateBubbleBurst spawns count bubbles at (x, y).
func CreateBubbleBurst(ecs *ecs.ECS, x, y float64, count int) {
	origin := math.Vec2{X: x, Y: y}
	for i := 0; i < count; i++ {
		entry := archetypes.Bubble.Spawn(ecs)
		components.Bubble.Set(entry, NewBubble(origin))
	}
}

// NewBubble returns a bubble at origin with a random drift and fall speed.
func NewBubble(origin math.Vec2) *components.BubbleData {
	c := cfg.Bubble
	return &components.BubbleData{
		Pos: origin,
		Vel: math.Vec2{
			X: (rand.Float64() - 0.5) * c.SpeedXRange,
			Y: rand.Float64()*c.SpeedYRange + c.MinSpeedY,
		},
		Size:    rand.Float64()*c.SizeRange + c.MinSize,
		Life:    c.Life,
		MaxLife: c.Life,
	}
}
