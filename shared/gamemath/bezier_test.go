package gamemath

import (
	"math"
	"testing"

	math2 "github.com/yohamta/donburi/features/math"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestSampleCubic_Endpoints(t *testing.T) {
	p0 := math2.Vec2{X: 10, Y: 500}
	c1 := math2.Vec2{X: 40, Y: 300}
	c2 := math2.Vec2{X: -20, Y: 200}
	p3 := math2.Vec2{X: 100, Y: 100}

	pts := SampleCubic(p0, c1, c2, p3, 60)
	if len(pts) != 61 {
		t.Fatalf("expected 61 points, got %d", len(pts))
	}
	if !pts[0].Equal(p0) {
		t.Errorf("first point = %+v, want %+v", pts[0], p0)
	}
	last := pts[len(pts)-1]
	if !near(last.X, p3.X) || !near(last.Y, p3.Y) {
		t.Errorf("last point = %+v, want %+v", last, p3)
	}
}

func TestSampleCubic_MinimumSteps(t *testing.T) {
	pts := SampleCubic(math2.Vec2{}, math2.Vec2{}, math2.Vec2{}, math2.Vec2{X: 1}, 0)
	if len(pts) != 2 {
		t.Fatalf("expected 2 points, got %d", len(pts))
	}
}

func TestCubicBezier_StraightLineMidpoint(t *testing.T) {
	p := CubicBezier(math2.Vec2{}, math2.Vec2{X: 1}, math2.Vec2{X: 2}, math2.Vec2{X: 3}, 0.5)
	if !near(p.X, 1.5) || !near(p.Y, 0) {
		t.Errorf("midpoint = %+v, want (1.5, 0)", p)
	}
}

func TestAppendCubic_SkipsStart(t *testing.T) {
	start := math2.Vec2{X: 5, Y: 5}
	dst := []math2.Vec2{start}
	dst = AppendCubic(dst, start, math2.Vec2{X: 6}, math2.Vec2{X: 7}, math2.Vec2{X: 8, Y: 8}, 4)
	if len(dst) != 5 {
		t.Fatalf("expected 5 points, got %d", len(dst))
	}
	if dst[1].Equal(start) {
		t.Error("start point appended twice")
	}
	if !near(dst[4].X, 8) || !near(dst[4].Y, 8) {
		t.Errorf("last point = %+v, want (8, 8)", dst[4])
	}
}

func TestRadialGradientT(t *testing.T) {
	c0 := math2.Vec2{X: 0, Y: 3}
	c1 := math2.Vec2{X: 0, Y: 5}
	r1 := 10.0

	tests := []struct {
		name string
		p    math2.Vec2
		want float64
	}{
		{"start point", c0, 0},
		{"on end circle", math2.Vec2{X: 10, Y: 5}, 1},
		{"outside end circle", math2.Vec2{X: 50, Y: 5}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RadialGradientT(tt.p, c0, c1, r1)
			if !near(got, tt.want) {
				t.Errorf("RadialGradientT(%+v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRadialGradientT_Monotonic(t *testing.T) {
	c0 := math2.Vec2{X: 0, Y: 3}
	c1 := math2.Vec2{X: 0, Y: 5}
	prev := -1.0
	for x := 0.0; x <= 10; x++ {
		got := RadialGradientT(math2.Vec2{X: x, Y: 3}, c0, c1, 10)
		if got < prev {
			t.Fatalf("gradient decreased at x=%v: %v < %v", x, got, prev)
		}
		prev = got
	}
}
