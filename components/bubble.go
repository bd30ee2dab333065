package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// BubbleData is a short-lived particle with a frame countdown.
type BubbleData struct {
	Pos     math.Vec2
	Vel     math.Vec2
	Size    float64
	Life    int
	MaxLife int
}

var Bubble = donburi.NewComponentType[BubbleData]()

// Advance integrates position and burns one frame of life.
func (b *BubbleData) Advance() {
	b.Pos = b.Pos.Add(b.Vel)
	b.Life--
}

// Alpha is the remaining life fraction, used as opacity.
func (b *BubbleData) Alpha() float64 {
	if b.Life <= 0 || b.MaxLife <= 0 {
		return 0
	}
	return float64(b.Life) / float64(b.MaxLife)
}
