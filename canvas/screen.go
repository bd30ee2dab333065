package canvas

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/features/math"
)

var (
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
)

// solidSource returns a 1x1 white region used as the texture for flat-colored triangles.
// The inner pixel of a 3x3 image avoids sampling the transparent border.
func solidSource() *ebiten.Image {
	if whiteSubImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// Screen is a Surface backed by an ebiten image. Gradient fills use the given
// shader; when it is nil they fall back to their start color.
type Screen struct {
	dst      *ebiten.Image
	gradient *ebiten.Shader

	vertices []ebiten.Vertex
	indices  []uint16
}

// NewScreen wraps dst.
func NewScreen(dst *ebiten.Image, gradient *ebiten.Shader) *Screen {
	return &Screen{dst: dst, gradient: gradient}
}

// Reset points the screen at a new destination, keeping its vertex buffers.
func (s *Screen) Reset(dst *ebiten.Image) {
	s.dst = dst
}

func (s *Screen) StrokePolyline(points []math.Vec2, width float64, clr color.Color) {
	if len(points) < 2 || width <= 0 {
		return
	}

	var path vector.Path
	path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}

	op := &vector.StrokeOptions{
		Width:    float32(width),
		LineCap:  vector.LineCapRound,
		LineJoin: vector.LineJoinRound,
	}
	s.vertices, s.indices = path.AppendVerticesAndIndicesForStroke(s.vertices[:0], s.indices[:0], op)
	tint(s.vertices, clr)
	s.dst.DrawTriangles(s.vertices, s.indices, solidSource(), &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (s *Screen) FillPolygon(points []math.Vec2, paint Paint) {
	if len(points) < 3 {
		return
	}

	var path vector.Path
	path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()
	s.vertices, s.indices = path.AppendVerticesAndIndicesForFilling(s.vertices[:0], s.indices[:0])

	if paint.Radial && s.gradient != nil {
		tint(s.vertices, color.White)
		s.dst.DrawTrianglesShader(s.vertices, s.indices, s.gradient, &ebiten.DrawTrianglesShaderOptions{
			FillRule:  ebiten.FillRuleNonZero,
			AntiAlias: true,
			Uniforms: map[string]any{
				"Center0": []float32{float32(paint.Center0.X), float32(paint.Center0.Y)},
				"Center1": []float32{float32(paint.Center1.X), float32(paint.Center1.Y)},
				"Radius1": float32(paint.Radius1),
				"From":    premultiplied(paint.From),
				"To":      premultiplied(paint.To),
			},
		})
		return
	}

	clr := paint.Color
	if paint.Radial {
		clr = paint.From
	}
	tint(s.vertices, clr)
	s.dst.DrawTriangles(s.vertices, s.indices, solidSource(), &ebiten.DrawTrianglesOptions{
		FillRule:  ebiten.FillRuleNonZero,
		AntiAlias: true,
	})
}

func (s *Screen) FillCircle(center math.Vec2, radius float64, clr color.Color) {
	if radius <= 0 {
		return
	}
	vector.FillCircle(s.dst, float32(center.X), float32(center.Y), float32(radius), clr, true)
}

// tint sets every vertex to clr and maps it onto the solid source pixel.
func tint(vs []ebiten.Vertex, clr color.Color) {
	c := premultiplied(clr)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = c[0]
		vs[i].ColorG = c[1]
		vs[i].ColorB = c[2]
		vs[i].ColorA = c[3]
	}
}

func premultiplied(clr color.Color) []float32 {
	if clr == nil {
		return []float32{0, 0, 0, 0}
	}
	r, g, b, a := clr.RGBA()
	return []float32{
		float32(r) / 0xffff,
		float32(g) / 0xffff,
		float32(b) / 0xffff,
		float32(a) / 0xffff,
	}
}
