package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// InputData buffers pointer presses polled this frame.
type InputData struct {
	Presses []math.Vec2
}

var Input = donburi.NewComponentType[InputData]()
