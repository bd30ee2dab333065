package components

import (
	cfg "github.com/automoto/petalfall/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound effects raised during the frame (singleton component)
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
