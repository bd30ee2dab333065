package components

import (
	"math"

	cfg "github.com/automoto/petalfall/config"
	"github.com/automoto/petalfall/shared/gamemath"
	"github.com/automoto/petalfall/shared/palette"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

// Petal is one bezier-shaped leaf of a flower, in flower-local units.
type Petal struct {
	Angle        float64 // rotation from the flower's up axis (radians)
	Length       float64
	Width        float64
	Color        palette.Color
	ControlDist1 float64 // outer control distance of the leading curve, fraction of Width
	ControlDist2 float64 // control distance of the trailing curve, fraction of Width
}

// FlowerData is a radial petal cluster anchored to the end of a finished stem.
type FlowerData struct {
	Anchor      math2.Vec2
	Scale       float64
	TargetScale float64
	GrowthRate  float64
	Rotation    float64
	Petals      []Petal
	CoreRadius  float64
	CoreColor   palette.Color

	Sinking bool
	Removed bool
}

var Flower = donburi.NewComponentType[FlowerData]()

// Advance grows Scale toward TargetScale, or shrinks it to zero while sinking.
// Removed latches once a sinking flower reaches zero.
func (f *FlowerData) Advance() {
	if !f.Sinking {
		if f.Scale < f.TargetScale {
			f.Scale = math.Min(f.Scale+f.GrowthRate, f.TargetScale)
		}
		return
	}

	f.Scale -= f.GrowthRate * cfg.Flower.SinkMultiplier
	if f.Scale <= 0 {
		f.Scale = 0
		f.Removed = true
	}
}

// Sway is the time-varying tilt. The anchor X doubles as phase so neighbouring
// flowers drift out of step without stored state.
func (f *FlowerData) Sway(clockMillis float64) float64 {
	return math.Sin(clockMillis*cfg.Flower.SwayFrequency+f.Anchor.X) * cfg.Flower.SwayAmplitude
}

// Transform maps flower-local coordinates to screen space at the given clock.
func (f *FlowerData) Transform(clockMillis float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.Scale(f.Scale, f.Scale)
	g.Rotate(f.Rotation + f.Sway(clockMillis))
	g.Translate(f.Anchor.X, f.Anchor.Y)
	return g
}

// Outline returns the closed petal outline in petal-local coordinates, with the
// petal pointing down the +Y axis from the flower centre.
func (p Petal) Outline(segs int) []math2.Vec2 {
	cp1 := math2.Vec2{X: p.Width * p.ControlDist1, Y: p.Length * 0.5}
	cp2x := -p.Width * p.ControlDist2
	tip := math2.Vec2{Y: p.Length}
	origin := math2.Vec2{}

	pts := make([]math2.Vec2, 0, 2*segs+1)
	pts = append(pts, origin)
	pts = gamemath.AppendCubic(pts, origin, cp1, math2.Vec2{X: cp1.X, Y: p.Length}, tip, segs)
	pts = gamemath.AppendCubic(pts, tip, math2.Vec2{X: -cp2x, Y: p.Length}, math2.Vec2{X: cp2x, Y: cp1.Y}, origin, segs)
	// The last sample closes back onto the origin.
	return pts[:len(pts)-1]
}
