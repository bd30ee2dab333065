package tags

import "github.com/yohamta/donburi"

var (
	Plant  = donburi.NewTag().SetName("Plant")
	Bubble = donburi.NewTag().SetName("Bubble")
)
