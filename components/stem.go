package components

import (
	"math"

	cfg "github.com/automoto/petalfall/config"
	"github.com/automoto/petalfall/shared/palette"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

// StemData is a bezier growth path from below the viewport up to End.
// Points is sampled once at creation and never changes afterwards.
type StemData struct {
	Start    math2.Vec2
	End      math2.Vec2
	Control1 math2.Vec2
	Control2 math2.Vec2
	Points   []math2.Vec2 // SampleCount+1 samples, Points[0] == Start

	Progress    float64 // fractional index into Points, in [0, SampleCount]
	GrowthSpeed float64 // samples per frame
	Width       float64
	Color       palette.Color

	Sinking  bool
	Finished bool
}

var Stem = donburi.NewComponentType[StemData]()

// SampleCount is the number of steps along the path.
func (s *StemData) SampleCount() int {
	return len(s.Points) - 1
}

// Advance walks Progress forward while growing and backward, faster, while sinking.
func (s *StemData) Advance() {
	total := float64(s.SampleCount())
	if !s.Sinking {
		if s.Progress < total {
			s.Progress += s.GrowthSpeed
		}
		if s.Progress >= total {
			s.Progress = total
			s.Finished = true
		}
		return
	}

	s.Progress -= s.GrowthSpeed * cfg.Stem.SinkMultiplier
	if s.Progress < 0 {
		s.Progress = 0
	}
}

// Retracted reports whether a sinking stem has fully withdrawn.
func (s *StemData) Retracted() bool {
	return s.Sinking && s.Progress <= 0
}

// Visible returns the drawn prefix of the path, or nil when nothing is grown yet.
func (s *StemData) Visible() []math2.Vec2 {
	last := int(math.Floor(s.Progress))
	if last <= 0 || len(s.Points) == 0 {
		return nil
	}
	if last > s.SampleCount() {
		last = s.SampleCount()
	}
	return s.Points[:last+1]
}
