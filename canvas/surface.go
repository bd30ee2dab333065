// Package canvas is the drawing surface the garden renders onto.
//
// Systems draw through Surface so the same render code drives the ebiten
// screen in the game and a Recorder in tests.
package canvas

import (
	"image/color"

	"github.com/automoto/petalfall/shared/gamemath"
	"github.com/yohamta/donburi/features/math"
)

// Paint describes how a polygon is filled.
type Paint struct {
	// Solid fill. Used when Radial is false.
	Color color.Color

	// Radial selects a two-point conical gradient that starts as a point at
	// Center0 with color From and ends as a circle of Radius1 around Center1
	// with color To.
	Radial  bool
	Center0 math.Vec2
	Center1 math.Vec2
	Radius1 float64
	From    color.Color
	To      color.Color
}

// Solid returns a solid paint of c.
func Solid(c color.Color) Paint {
	return Paint{Color: c}
}

// At returns the paint color at p.
func (pt Paint) At(p math.Vec2) color.Color {
	if !pt.Radial {
		return pt.Color
	}
	t := gamemath.RadialGradientT(p, pt.Center0, pt.Center1, pt.Radius1)
	return lerpColor(pt.From, pt.To, t)
}

// Surface is a 2D drawing target in screen pixels.
type Surface interface {
	// StrokePolyline draws an open polyline with round caps and joins.
	StrokePolyline(points []math.Vec2, width float64, clr color.Color)
	// FillPolygon fills a closed outline using the non-zero winding rule.
	FillPolygon(points []math.Vec2, paint Paint)
	// FillCircle fills a disc.
	FillCircle(center math.Vec2, radius float64, clr color.Color)
}

func lerpColor(a, b color.Color, t float64) color.Color {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	mix := func(x, y uint32) uint16 {
		return uint16(float64(x)*(1-t) + float64(y)*t + 0.5)
	}
	return color.RGBA64{R: mix(ar, br), G: mix(ag, bg), B: mix(ab, bb), A: mix(aa, ba)}
}
