package gamemath

import "github.com/yohamta/donburi/features/math"

// Centroid returns the average of pts. Returns the zero vector for an empty slice.
func Centroid(pts []math.Vec2) math.Vec2 {
	if len(pts) == 0 {
		return math.Vec2{}
	}
	var c math.Vec2
	for _, p := range pts {
		c = c.Add(p)
	}
	return c.DivScalar(float64(len(pts)))
}

// Expand pushes every point of a closed outline away from its centroid by d pixels.
// Points sitting on the centroid are left in place.
func Expand(pts []math.Vec2, d float64) []math.Vec2 {
	c := Centroid(pts)
	out := make([]math.Vec2, len(pts))
	for i, p := range pts {
		v := p.Sub(c)
		l := v.Magnitude()
		if l == 0 {
			out[i] = p
			continue
		}
		out[i] = p.Add(v.MulScalar(d / l))
	}
	return out
}
