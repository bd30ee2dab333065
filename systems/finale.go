package systems

import (
	"github.com/automoto/petalfall/components"
	cfg "github.com/automoto/petalfall/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

func revealFinale(n *components.NarrativeData) {
	n.FinaleShown = true
	n.FinaleAlpha = 0
	n.FinaleFade = gween.New(0, 1, float32(cfg.Finale.FadeDuration.Seconds()), ease.InOutQuad)
}

func stepFinale(n *components.NarrativeData, dt float32) {
	if n.FinaleFade == nil {
		return
	}
	v, done := n.FinaleFade.Update(dt)
	n.FinaleAlpha = float64(v)
	if done {
		n.FinaleFade = nil
	}
}

// FinaleAlpha is the final screen's opacity; zero until it is revealed.
func FinaleAlpha(ecs *ecs.ECS) float64 {
	n := getOrCreateNarrative(ecs)
	if !n.FinaleShown {
		return 0
	}
	return n.FinaleAlpha
}
