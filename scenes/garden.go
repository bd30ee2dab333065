package scenes

import (
	"log"
	"sync"

	"github.com/automoto/petalfall/assets"
	cfg "github.com/automoto/petalfall/config"
	"github.com/automoto/petalfall/systems"
	"github.com/automoto/petalfall/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GardenScene is the whole experience: planting, sinking and the final screen
type GardenScene struct {
	ecs           *ecs.ECS
	sceneChanger  SceneChanger
	finaleUI      *ui.FinaleUI
	once          sync.Once
	shouldReplant bool
}

// NewGardenScene creates a fresh garden
func NewGardenScene(sc SceneChanger) *GardenScene {
	return &GardenScene{sceneChanger: sc}
}

func (gs *GardenScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()

	// The final screen only takes input once it starts to show
	if systems.FinaleAlpha(gs.ecs) > 0 {
		gs.finaleUI.Update()
	}

	if gs.shouldReplant {
		gs.sceneChanger.ChangeScene(NewGardenScene(gs.sceneChanger))
	}
}

func (gs *GardenScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.C.Background)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
	gs.finaleUI.Draw(screen, systems.FinaleAlpha(gs.ecs))
}

func (gs *GardenScene) configure() {
	// Petals fall back to flat fills without the gradient shader
	if err := assets.LoadShaders(); err != nil {
		log.Printf("Warning: Could not load shaders: %v", err)
	}

	systems.PreloadAllSFX()

	ecs := ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first, plays what the previous frame queued)
	ecs.AddSystem(systems.UpdateAudio)

	// Clock before interactions; they read it to schedule transitions
	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateInteractions)
	ecs.AddSystem(systems.UpdateNarrative)
	ecs.AddSystem(systems.UpdateBubbles)
	ecs.AddSystem(systems.UpdateGarden)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawBubbles)
	ecs.AddRenderer(cfg.Default, systems.DrawGarden)
	ecs.AddRenderer(cfg.Default, systems.DrawProgressBar)
	ecs.AddRenderer(cfg.Default, systems.DrawNarrative)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	gs.ecs = ecs

	systems.InitNarrative(gs.ecs, cfg.Debug.SkipIntro)

	gs.finaleUI = ui.NewFinaleUI(func() { gs.shouldReplant = true })
}
