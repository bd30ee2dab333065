package systems

import (
	"github.com/automoto/petalfall/canvas"
	"github.com/automoto/petalfall/components"
	cfg "github.com/automoto/petalfall/config"
	"github.com/automoto/petalfall/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var bubbleQuery = donburi.NewQuery(filter.Contains(tags.Bubble, components.Bubble))

// UpdateBubbles moves every bubble and destroys the ones whose life ran out.
func UpdateBubbles(ecs *ecs.ECS) {
	var toDestroy []*donburi.Entry

	bubbleQuery.Each(ecs.World, func(e *donburi.Entry) {
		b := components.Bubble.Get(e)
		b.Advance()
		if b.Life <= 0 {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		e.Remove()
	}
}

// BubbleCount returns the number of live bubbles.
func BubbleCount(ecs *ecs.ECS) int {
	return bubbleQuery.Count(ecs.World)
}

// DrawBubbles renders every live bubble with opacity fading over its life.
func DrawBubbles(ecs *ecs.ECS, screen *ebiten.Image) {
	drawBubbles(ecs, surfaceFor(screen))
}

func drawBubbles(ecs *ecs.ECS, surface canvas.Surface) {
	bubbleQuery.Each(ecs.World, func(e *donburi.Entry) {
		DrawBubble(surface, components.Bubble.Get(e))
	})
}

// DrawBubble fills the bubble's disc. No-op once its life is spent.
func DrawBubble(surface canvas.Surface, b *components.BubbleData) {
	if b.Life <= 0 {
		return
	}
	surface.FillCircle(b.Pos, b.Size, cfg.Bubble.Color.WithAlpha(b.Alpha()))
}
