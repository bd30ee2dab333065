package systems

import (
	"image/color"

	"github.com/automoto/petalfall/canvas"
	"github.com/automoto/petalfall/components"
	cfg "github.com/automoto/petalfall/config"
	"github.com/automoto/petalfall/shared/gamemath"
	"github.com/automoto/petalfall/shared/palette"
	"github.com/automoto/petalfall/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateGarden advances every plant in draw order, blooms stems that have
// finished growing, then prunes plants that have sunk away completely.
func UpdateGarden(ecs *ecs.ECS) {
	garden := factory.EnsureGarden(ecs)

	for _, e := range garden.Order {
		if !ecs.World.Valid(e) {
			continue
		}
		plant := ecs.World.Entry(e)
		stem := components.Stem.Get(plant)
		stem.Advance()

		if stem.Finished && !stem.Sinking && !plant.HasComponent(components.Flower) {
			factory.AttachFlower(plant)
		}
		if plant.HasComponent(components.Flower) {
			components.Flower.Get(plant).Advance()
		}
	}

	pruneGarden(ecs, garden)
}

// pruneGarden removes plants whose stem has retracted and whose flower, if any,
// has shrunk away. Runs after the advance pass so no plant skips a frame.
func pruneGarden(ecs *ecs.ECS, garden *components.GardenData) {
	kept := garden.Order[:0]
	for _, e := range garden.Order {
		if !ecs.World.Valid(e) {
			continue
		}
		plant := ecs.World.Entry(e)
		if plantGone(plant) {
			plant.Remove()
			continue
		}
		kept = append(kept, e)
	}
	garden.Order = kept
}

func plantGone(plant *donburi.Entry) bool {
	if !components.Stem.Get(plant).Retracted() {
		return false
	}
	if !plant.HasComponent(components.Flower) {
		return true
	}
	return components.Flower.Get(plant).Removed
}

// SetAllSinking turns every plant toward removal. Safe to call repeatedly.
func SetAllSinking(ecs *ecs.ECS) {
	garden := factory.EnsureGarden(ecs)
	garden.Sinking = true

	for _, e := range garden.Order {
		if !ecs.World.Valid(e) {
			continue
		}
		plant := ecs.World.Entry(e)
		components.Stem.Get(plant).Sinking = true
		if plant.HasComponent(components.Flower) {
			components.Flower.Get(plant).Sinking = true
		}
	}
}

// GardenSize returns the number of live plants.
func GardenSize(ecs *ecs.ECS) int {
	return len(factory.EnsureGarden(ecs).Order)
}

// DrawGarden renders stems and flowers in registry order.
func DrawGarden(ecs *ecs.ECS, screen *ebiten.Image) {
	drawGarden(ecs, surfaceFor(screen))
}

func drawGarden(ecs *ecs.ECS, surface canvas.Surface) {
	garden := factory.EnsureGarden(ecs)
	millis := getOrCreateClock(ecs).Millis()

	for _, e := range garden.Order {
		if !ecs.World.Valid(e) {
			continue
		}
		plant := ecs.World.Entry(e)
		DrawStem(surface, components.Stem.Get(plant))
		if plant.HasComponent(components.Flower) {
			DrawFlower(surface, components.Flower.Get(plant), millis)
		}
	}
}

// DrawStem strokes the grown part of the stem. No-op before the first sample.
func DrawStem(surface canvas.Surface, stem *components.StemData) {
	pts := stem.Visible()
	if len(pts) < 2 {
		return
	}
	surface.StrokePolyline(pts, stem.Width, stem.Color.RGBA())
}

// DrawFlower renders the petals in their stored order, each over a soft shadow,
// then the core disc on top. No-op while the flower has no size.
func DrawFlower(surface canvas.Surface, flower *components.FlowerData, clockMillis float64) {
	if flower.Scale <= 0 {
		return
	}
	c := cfg.Flower
	g := flower.Transform(clockMillis)

	for _, p := range flower.Petals {
		var pg ebiten.GeoM
		pg.Rotate(p.Angle)
		pg.Concat(g)

		outline := transformPoints(p.Outline(c.PetalCurveSegs), pg)
		drawPetalShadow(surface, outline)

		surface.FillPolygon(outline, canvas.Paint{
			Radial:  true,
			Center0: applyGeoM(pg, math.Vec2{Y: p.Length * c.GradientStartY}),
			Center1: applyGeoM(pg, math.Vec2{Y: p.Length * c.GradientEndY}),
			Radius1: p.Length * flower.Scale,
			From:    p.Color.RGBA(),
			To:      palette.Darken(p.Color, c.EdgeDarken).RGBA(),
		})
	}

	surface.FillCircle(flower.Anchor, flower.CoreRadius*flower.Scale, flower.CoreColor.RGBA())
}

// drawPetalShadow approximates a blurred drop shadow with translucent outlines
// expanded outward, widest first.
func drawPetalShadow(surface canvas.Surface, outline []math.Vec2) {
	c := cfg.Flower
	if c.ShadowLayers <= 0 {
		return
	}
	alpha := c.ShadowAlpha / float64(c.ShadowLayers)
	shade := color.NRGBA{A: uint8(alpha*255 + 0.5)}
	for i := c.ShadowLayers; i >= 1; i-- {
		spread := c.ShadowBlur * float64(i) / float64(c.ShadowLayers)
		surface.FillPolygon(gamemath.Expand(outline, spread), canvas.Solid(shade))
	}
}

func applyGeoM(g ebiten.GeoM, p math.Vec2) math.Vec2 {
	x, y := g.Apply(p.X, p.Y)
	return math.Vec2{X: x, Y: y}
}

func transformPoints(pts []math.Vec2, g ebiten.GeoM) []math.Vec2 {
	for i, p := range pts {
		pts[i] = applyGeoM(g, p)
	}
	return pts
}
