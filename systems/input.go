package systems

import (
	"github.com/automoto/petalfall/archetypes"
	"github.com/automoto/petalfall/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// Reusable slice for touch IDs to avoid allocations
var touchIDs []ebiten.TouchID

// UpdateInput polls pointer presses from ebiten into the Input buffer.
// Must run BEFORE UpdateInteractions in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		input.Presses = append(input.Presses, math.Vec2{X: float64(x), Y: float64(y)})
	}

	touchIDs = inpututil.AppendJustPressedTouchIDs(touchIDs[:0])
	for _, id := range touchIDs {
		x, y := ebiten.TouchPosition(id)
		input.Presses = append(input.Presses, math.Vec2{X: float64(x), Y: float64(y)})
	}
}

// UpdateInteractions feeds buffered presses to HandleInteraction in arrival order.
func UpdateInteractions(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	for _, p := range input.Presses {
		HandleInteraction(ecs, p.X, p.Y)
	}
	input.Presses = input.Presses[:0]
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = archetypes.Input.Spawn(ecs)
	}
	return components.Input.Get(entry)
}
