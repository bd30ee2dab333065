package factory

import (
	"math"
	"math/rand/v2"

	"github.com/automoto/petalfall/archetypes"
	"github.com/automoto/petalfall/components"
	cfg "github.com/automoto/petalfall/config"
	"github.com/automoto/petalfall/shared/gamemath"
	"github.com/automoto/petalfall/shared/palette"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

// EnsureGarden returns the plant registry, creating it on first use.
func EnsureGarden(ecs *ecs.ECS) *components.GardenData {
	entry, ok := components.Garden.First(ecs.World)
	if !ok {
		entry = archetypes.Garden.Spawn(ecs)
	}
	return components.Garden.Get(entry)
}

// CreatePlant spawns a stem growing toward (x, y) and inserts it at a random
// position in the draw order, so new growth may appear behind older flowers.
func CreatePlant(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	garden := EnsureGarden(ecs)

	plant := archetypes.Plant.Spawn(ecs)
	components.Stem.Set(plant, NewStem(math2.Vec2{X: x, Y: y}, float64(cfg.C.Height)))

	// A garden that is already sinking takes the new stem down with it.
	if garden.Sinking {
		components.Stem.Get(plant).Sinking = true
	}

	garden.Insert(layerIndex(len(garden.Order)), plant.Entity())
	return plant
}

// layerIndex draws an insertion index uniformly from [0, n].
func layerIndex(n int) int {
	return rand.IntN(n + 1)
}

// NewStem builds a stem that starts below viewportHeight and ends at end.
// The whole path is sampled here; growth afterwards only walks the samples.
func NewStem(end math2.Vec2, viewportHeight float64) *components.StemData {
	c := cfg.Stem

	start := math2.Vec2{
		X: end.X + (rand.Float64()-0.5)*c.StartJitterX,
		Y: viewportHeight + c.StartBelow,
	}
	dx := start.X - end.X
	dy := start.Y - end.Y
	cp1 := math2.Vec2{
		X: start.X - dx*c.ControlAlongX + (rand.Float64()-0.5)*c.ControlJitter,
		Y: start.Y - dy*c.ControlAlongY,
	}
	cp2 := math2.Vec2{
		X: end.X + dx*c.ControlAlongX + (rand.Float64()-0.5)*c.ControlJitter,
		Y: end.Y + dy*c.ControlAlongY,
	}

	steps := int(math.Floor(start.Distance(end) / c.PixelsPerStep))
	if steps < c.MinSampleCount {
		steps = c.MinSampleCount
	}

	return &components.StemData{
		Start:       start,
		End:         end,
		Control1:    cp1,
		Control2:    cp2,
		Points:      gamemath.SampleCubic(start, cp1, cp2, end, steps),
		GrowthSpeed: rand.Float64()*c.GrowthSpeedRange + c.MinGrowthSpeed,
		Width:       rand.Float64()*c.WidthRange + c.MinWidth,
		Color:       palette.Pick(c.Colors),
	}
}

// AttachFlower adds a freshly generated flower to a plant, anchored at its stem's end.
func AttachFlower(plant *donburi.Entry) *components.FlowerData {
	stem := components.Stem.Get(plant)
	flower := NewFlower(stem.End)
	plant.AddComponent(components.Flower)
	components.Flower.Set(plant, flower)
	return components.Flower.Get(plant)
}

// NewFlower generates petal geometry once for a flower at anchor.
func NewFlower(anchor math2.Vec2) *components.FlowerData {
	c := cfg.Flower

	n := c.MinPetals + rand.IntN(c.PetalCountRange)
	base := palette.Pick(c.PetalColors)
	secondary := palette.Pick(c.PetalColors)

	petals := make([]components.Petal, n)
	for i := range petals {
		length := rand.Float64()*c.PetalLengthRange + c.MinPetalLength
		petals[i] = components.Petal{
			Angle:        float64(i)/float64(n)*2*math.Pi + (rand.Float64()-0.5)*c.PetalAngleJitter,
			Length:       length,
			Width:        length * (rand.Float64()*c.PetalWidthRange + c.MinPetalWidth),
			Color:        palette.Mix(base, secondary, rand.Float64()*c.MaxSecondaryMix),
			ControlDist1: rand.Float64()*c.ControlDistRange + c.MinControlDist,
			ControlDist2: rand.Float64()*c.ControlDistRange + c.MinControlDist,
		}
	}

	return &components.FlowerData{
		Anchor:      anchor,
		TargetScale: rand.Float64()*c.TargetScaleRange + c.MinTargetScale,
		GrowthRate:  rand.Float64()*c.GrowthRateRange + c.MinGrowthRate,
		Rotation:    (rand.Float64() - 0.5) * c.MaxTilt,
		Petals:      petals,
		CoreRadius:  rand.Float64()*c.CoreRadiusRange + c.MinCoreRadius,
		CoreColor:   c.CoreColor,
	}
}
