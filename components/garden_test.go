package components

import (
	"testing"

	"github.com/yohamta/donburi"
)

func TestGarden_Insert(t *testing.T) {
	w := donburi.NewWorld()
	a := w.Create(Bubble)
	b := w.Create(Bubble)
	c := w.Create(Bubble)
	d := w.Create(Bubble)

	g := &GardenData{}
	g.Insert(0, a)
	g.Insert(1, b) // append
	g.Insert(0, c) // front
	g.Insert(2, d) // middle

	want := []donburi.Entity{c, a, d, b}
	if len(g.Order) != len(want) {
		t.Fatalf("order length = %d, want %d", len(g.Order), len(want))
	}
	for i := range want {
		if g.Order[i] != want[i] {
			t.Errorf("Order[%d] = %v, want %v", i, g.Order[i], want[i])
		}
	}
}

func TestBubble_AdvanceAndAlpha(t *testing.T) {
	b := &BubbleData{Vel: pointOf(1, 2), Life: 4, MaxLife: 4}
	if b.Alpha() != 1 {
		t.Errorf("fresh bubble alpha = %v, want 1", b.Alpha())
	}
	b.Advance()
	if b.Pos != pointOf(1, 2) {
		t.Errorf("position = %+v, want (1, 2)", b.Pos)
	}
	if b.Alpha() != 0.75 {
		t.Errorf("alpha = %v, want 0.75", b.Alpha())
	}
	for i := 0; i < 10; i++ {
		b.Advance()
	}
	if b.Alpha() != 0 {
		t.Errorf("expired bubble alpha = %v, want 0", b.Alpha())
	}
}

func TestClock_Millis(t *testing.T) {
	c := &ClockData{Seconds: 1.5}
	if c.Millis() != 1500 {
		t.Errorf("Millis() = %v, want 1500", c.Millis())
	}
}
