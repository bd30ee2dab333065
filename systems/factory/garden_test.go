package factory

import (
	"testing"

	"github.com/automoto/petalfall/components"
	cfg "github.com/automoto/petalfall/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func TestNewStem_Path(t *testing.T) {
	end := math.Vec2{X: 100, Y: 100}
	for i := 0; i < 50; i++ {
		s := NewStem(end, 720)

		if s.SampleCount() < cfg.Stem.MinSampleCount {
			t.Fatalf("sample count %d below minimum %d", s.SampleCount(), cfg.Stem.MinSampleCount)
		}
		if s.Points[0] != s.Start {
			t.Errorf("first sample %+v, want start %+v", s.Points[0], s.Start)
		}
		if last := s.Points[len(s.Points)-1]; last != end {
			t.Errorf("last sample %+v, want end %+v", last, end)
		}
		if s.Start.Y != 720+cfg.Stem.StartBelow {
			t.Errorf("start y = %v, want below viewport", s.Start.Y)
		}
		if s.Start.X < end.X-cfg.Stem.StartJitterX/2 || s.Start.X > end.X+cfg.Stem.StartJitterX/2 {
			t.Errorf("start x %v outside jitter range", s.Start.X)
		}
		if s.GrowthSpeed < 1 || s.GrowthSpeed > 2.2 {
			t.Errorf("growth speed %v outside [1, 2.2]", s.GrowthSpeed)
		}
		if s.Width < 1.5 || s.Width > 3.5 {
			t.Errorf("width %v outside [1.5, 3.5]", s.Width)
		}
		if s.Progress != 0 || s.Sinking || s.Finished {
			t.Errorf("new stem not at rest: %+v", s)
		}
	}
}

func TestNewStem_ShortPathUsesMinimumSamples(t *testing.T) {
	// End sits just above the start line, so the path is far shorter than 50 steps
	s := NewStem(math.Vec2{X: 0, Y: 760}, 720)
	if s.SampleCount() != cfg.Stem.MinSampleCount {
		t.Errorf("sample count = %d, want %d", s.SampleCount(), cfg.Stem.MinSampleCount)
	}
}

func TestNewStem_ControlJitterIsHorizontal(t *testing.T) {
	end := math.Vec2{X: 400, Y: 200}
	c := cfg.Stem
	for i := 0; i < 50; i++ {
		s := NewStem(end, 720)
		dx := s.Start.X - end.X
		dy := s.Start.Y - end.Y

		if want := s.Start.Y - dy*c.ControlAlongY; s.Control1.Y != want {
			t.Errorf("control1 y = %v, want %v", s.Control1.Y, want)
		}
		if want := end.Y + dy*c.ControlAlongY; s.Control2.Y != want {
			t.Errorf("control2 y = %v, want %v", s.Control2.Y, want)
		}

		base1 := s.Start.X - dx*c.ControlAlongX
		base2 := end.X + dx*c.ControlAlongX
		if d := s.Control1.X - base1; d < -c.ControlJitter/2 || d > c.ControlJitter/2 {
			t.Errorf("control1 x jitter %v outside +-%v", d, c.ControlJitter/2)
		}
		if d := s.Control2.X - base2; d < -c.ControlJitter/2 || d > c.ControlJitter/2 {
			t.Errorf("control2 x jitter %v outside +-%v", d, c.ControlJitter/2)
		}
	}
}

func TestNewFlower(t *testing.T) {
	anchor := math.Vec2{X: 10, Y: 20}
	for i := 0; i < 50; i++ {
		f := NewFlower(anchor)

		if n := len(f.Petals); n < 4 || n > 6 {
			t.Fatalf("petal count %d outside [4, 6]", n)
		}
		if f.Anchor != anchor {
			t.Errorf("anchor = %+v, want %+v", f.Anchor, anchor)
		}
		if f.Scale != 0 {
			t.Errorf("new flower scale = %v, want 0", f.Scale)
		}
		if f.TargetScale < 0.5 || f.TargetScale > 1 {
			t.Errorf("target scale %v outside [0.5, 1]", f.TargetScale)
		}
		if f.GrowthRate < 0.01 || f.GrowthRate > 0.04 {
			t.Errorf("growth rate %v outside [0.01, 0.04]", f.GrowthRate)
		}
		if f.CoreRadius < 4 || f.CoreRadius > 10 {
			t.Errorf("core radius %v outside [4, 10]", f.CoreRadius)
		}
		for j, p := range f.Petals {
			if p.Length < 40 || p.Length > 70 {
				t.Errorf("petal %d length %v outside [40, 70]", j, p.Length)
			}
			if p.Width < p.Length*0.6 || p.Width > p.Length {
				t.Errorf("petal %d width %v outside [0.6, 1] of length", j, p.Width)
			}
		}
	}
}

func TestLayerIndex(t *testing.T) {
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		idx := layerIndex(3)
		if idx < 0 || idx > 3 {
			t.Fatalf("layerIndex(3) = %d", idx)
		}
		seen[idx] = true
	}
	if len(seen) != 4 {
		t.Errorf("expected every slot in [0, 3] to be drawn, saw %v", seen)
	}
	if got := layerIndex(0); got != 0 {
		t.Errorf("layerIndex(0) = %d, want 0", got)
	}
}

func TestCreatePlant_RegistersEveryPlant(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())

	created := map[donburi.Entity]bool{}
	for i := 0; i < 10; i++ {
		p := CreatePlant(e, float64(i*10), 100)
		created[p.Entity()] = true
	}

	garden := EnsureGarden(e)
	if len(garden.Order) != 10 {
		t.Fatalf("registry holds %d plants, want 10", len(garden.Order))
	}
	for _, ent := range garden.Order {
		if !created[ent] {
			t.Errorf("unexpected entity %v in registry", ent)
		}
		delete(created, ent)
	}
	if len(created) != 0 {
		t.Errorf("plants missing from registry: %v", created)
	}
}

func TestCreatePlant_JoinsSinkingGarden(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	EnsureGarden(e).Sinking = true

	p := CreatePlant(e, 50, 50)
	if !components.Stem.Get(p).Sinking {
		t.Error("plant created during sinking is not sinking")
	}
}

func TestCreateBubbleBurst(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	CreateBubbleBurst(e, 30, 5, 15)

	count := 0
	components.Bubble.Each(e.World, func(entry *donburi.Entry) {
		b := components.Bubble.Get(entry)
		if b.Pos != (math.Vec2{X: 30, Y: 5}) {
			t.Errorf("bubble starts at %+v", b.Pos)
		}
		if b.Life != cfg.Bubble.Life || b.MaxLife != cfg.Bubble.Life {
			t.Errorf("bubble life %d/%d", b.Life, b.MaxLife)
		}
		if b.Vel.Y < 1.5 || b.Vel.Y > 4.5 {
			t.Errorf("fall speed %v outside [1.5, 4.5]", b.Vel.Y)
		}
		count++
	})
	if count != 15 {
		t.Errorf("spawned %d bubbles, want 15", count)
	}
}
