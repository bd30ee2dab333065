package gamemath

import (
	"math"

	math2 "github.com/yohamta/donburi/features/math"
)

// CubicBezier evaluates the cubic bezier p0,c1,c2,p3 at t.
func CubicBezier(p0, c1, c2, p3 math2.Vec2, t float64) math2.Vec2 {
	u := 1 - t
	a := u * u * u
	b := 3 * u * u * t
	c := 3 * u * t * t
	d := t * t * t
	return math2.Vec2{
		X: a*p0.X + b*c1.X + c*c2.X + d*p3.X,
		Y: a*p0.Y + b*c1.Y + c*c2.Y + d*p3.Y,
	}
}

// SampleCubic returns steps+1 points along the curve at t = i/steps.
// steps below 1 is treated as 1.
func SampleCubic(p0, c1, c2, p3 math2.Vec2, steps int) []math2.Vec2 {
	if steps < 1 {
		steps = 1
	}
	pts := make([]math2.Vec2, steps+1)
	for i := 0; i <= steps; i++ {
		pts[i] = CubicBezier(p0, c1, c2, p3, float64(i)/float64(steps))
	}
	return pts
}

// AppendCubic appends segs points of the curve to dst, skipping t=0 so
// consecutive segments of a path share their joints.
func AppendCubic(dst []math2.Vec2, p0, c1, c2, p3 math2.Vec2, segs int) []math2.Vec2 {
	if segs < 1 {
		segs = 1
	}
	for i := 1; i <= segs; i++ {
		dst = append(dst, CubicBezier(p0, c1, c2, p3, float64(i)/float64(segs)))
	}
	return dst
}

// RadialGradientT returns the gradient parameter in [0,1] of p for a two-point
// conical gradient that starts as a point at c0 and ends as a circle of radius r1
// centred on c1. It matches the canvas createRadialGradient(c0, 0, c1, r1) model
// for the case where the end circle encloses the start point.
func RadialGradientT(p, c0, c1 math2.Vec2, r1 float64) float64 {
	d := c1.Sub(c0)
	q := p.Sub(c0)
	a := d.Dot(&d) - r1*r1
	b := q.Dot(&d)
	c := q.Dot(&q)
	if a == 0 {
		if b == 0 {
			return 0
		}
		return Clamp(c/(2*b), 0, 1)
	}
	disc := b*b - a*c
	if disc < 0 {
		disc = 0
	}
	return Clamp((b-math.Sqrt(disc))/a, 0, 1)
}
