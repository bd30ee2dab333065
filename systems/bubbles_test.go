package systems

import (
	"testing"

	"github.com/automoto/petalfall/canvas"
	"github.com/automoto/petalfall/components"
	"github.com/automoto/petalfall/systems/factory"
)

func TestBubbles_BurstExpires(t *testing.T) {
	e := newTestECS()
	factory.CreateBubbleBurst(e, 50, 5, 15)
	if got := BubbleCount(e); got != 15 {
		t.Fatalf("bubbles = %d, want 15", got)
	}

	for i := 0; i < 24; i++ {
		UpdateBubbles(e)
	}
	if got := BubbleCount(e); got != 15 {
		t.Errorf("bubbles after 24 ticks = %d, want 15", got)
	}

	UpdateBubbles(e)
	if got := BubbleCount(e); got != 0 {
		t.Errorf("bubbles after 25 ticks = %d, want 0", got)
	}
}

func TestDrawBubbles(t *testing.T) {
	e := newTestECS()
	factory.CreateBubbleBurst(e, 50, 5, 3)

	var rec canvas.Recorder
	drawBubbles(e, &rec)
	if got := rec.Count(canvas.OpCircle); got != 3 {
		t.Errorf("circles = %d, want 3", got)
	}
}

func TestDrawBubble_SpentIsNoop(t *testing.T) {
	var rec canvas.Recorder
	DrawBubble(&rec, &components.BubbleData{Life: 0, MaxLife: 25, Size: 1})
	if len(rec.Ops) != 0 {
		t.Errorf("spent bubble drew %d ops", len(rec.Ops))
	}
}
