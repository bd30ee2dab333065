package systems

import (
	"github.com/automoto/petalfall/archetypes"
	"github.com/automoto/petalfall/components"
	cfg "github.com/automoto/petalfall/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the frame clock by one tick. Must run before any
// system that reads the clock.
func UpdateClock(ecs *ecs.ECS) {
	clock := getOrCreateClock(ecs)
	clock.Frames++
	clock.Seconds += 1 / float64(cfg.C.TPS)
}

func getOrCreateClock(ecs *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		entry = archetypes.Clock.Spawn(ecs)
	}
	return components.Clock.Get(entry)
}
