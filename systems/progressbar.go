package systems

import (
	cfg "github.com/automoto/petalfall/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawProgressBar renders the thin bar along the top edge. The fill eases
// toward the current progress; the track is always drawn.
func DrawProgressBar(ecs *ecs.ECS, screen *ebiten.Image) {
	n := getOrCreateNarrative(ecs)
	width := float32(screen.Bounds().Dx())
	height := float32(cfg.ProgressBar.Height)

	vector.FillRect(screen, 0, 0, width, height, cfg.ProgressBar.TrackColor, false)
	if n.BarFill <= 0 {
		return
	}
	vector.FillRect(screen, 0, 0, width*float32(n.BarFill), height, cfg.ProgressBar.Color, false)
}
