package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/petalfall/components"
	cfg "github.com/automoto/petalfall/config"
	"github.com/automoto/petalfall/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

var (
	debugHandleColor = color.RGBA{0, 255, 255, 255} // Cyan
	debugEndColor    = color.RGBA{255, 255, 0, 255} // Yellow
	debugSinkColor   = color.RGBA{255, 0, 0, 255}   // Red
)

// DrawDebug shows each stem's bezier handles and a line of live counts.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}

	garden := factory.EnsureGarden(ecs)
	for _, e := range garden.Order {
		if !ecs.World.Valid(e) {
			continue
		}
		stem := components.Stem.Get(ecs.World.Entry(e))

		handle := debugHandleColor
		if stem.Sinking {
			handle = debugSinkColor
		}
		debugLine(screen, stem.Start, stem.Control1, handle)
		debugLine(screen, stem.End, stem.Control2, handle)
		debugMarker(screen, stem.Control1, handle)
		debugMarker(screen, stem.Control2, handle)
		debugMarker(screen, stem.End, debugEndColor)
	}

	n := getOrCreateNarrative(ecs)
	msg := fmt.Sprintf("plants %d  bubbles %d  progress %.0f%%  step %d  pending %d  tps %.0f",
		len(garden.Order), BubbleCount(ecs), n.Progress, n.Step, len(n.Pending), ebiten.ActualTPS())
	ebitenutil.DebugPrintAt(screen, msg, 4, int(cfg.ProgressBar.Height)+4)
}

func debugLine(screen *ebiten.Image, a, b math.Vec2, c color.Color) {
	vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, c, false)
}

func debugMarker(screen *ebiten.Image, p math.Vec2, c color.Color) {
	vector.FillRect(screen, float32(p.X)-2, float32(p.Y)-2, 4, 4, c, false)
}
