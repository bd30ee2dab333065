package canvas

import (
	"image/color"

	"github.com/yohamta/donburi/features/math"
)

// OpKind identifies a recorded draw call.
type OpKind int

const (
	OpPolyline OpKind = iota
	OpPolygon
	OpCircle
)

// Op is one recorded draw call.
type Op struct {
	Kind   OpKind
	Points []math.Vec2
	Width  float64
	Radius float64
	Color  color.Color
	Paint  Paint
}

// Recorder is a Surface that keeps every call in order instead of drawing.
type Recorder struct {
	Ops []Op
}

func (r *Recorder) StrokePolyline(points []math.Vec2, width float64, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpPolyline, Points: clonePoints(points), Width: width, Color: clr})
}

func (r *Recorder) FillPolygon(points []math.Vec2, paint Paint) {
	r.Ops = append(r.Ops, Op{Kind: OpPolygon, Points: clonePoints(points), Paint: paint})
}

func (r *Recorder) FillCircle(center math.Vec2, radius float64, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpCircle, Points: []math.Vec2{center}, Radius: radius, Color: clr})
}

// Count returns the number of recorded ops of kind.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Reset drops all recorded ops.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

func clonePoints(pts []math.Vec2) []math.Vec2 {
	out := make([]math.Vec2, len(pts))
	copy(out, pts)
	return out
}
