package systems

import (
	"log"
	"sync"

	"github.com/automoto/petalfall/archetypes"
	"github.com/automoto/petalfall/assets"
	"github.com/automoto/petalfall/components"
	cfg "github.com/automoto/petalfall/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX renders every sound effect up front so the first chime has no lag.
func PreloadAllSFX() {
	if cfg.Audio.Muted {
		return
	}
	initGlobalAudio()

	for id := range cfg.Sound.Tones {
		if err := globalAudioLoader.PreloadSFX(id); err != nil {
			log.Printf("Warning: Could not preload sound %d: %v", id, err)
		}
	}
}

// QueueSFX requests a sound effect; it plays on the next UpdateAudio.
func QueueSFX(e *ecs.ECS, id cfg.SoundID) {
	a := getOrCreateAudio(e)
	a.PendingSFX = append(a.PendingSFX, id)
}

// UpdateAudio plays the sound effects queued since the last frame
func UpdateAudio(e *ecs.ECS) {
	a := getOrCreateAudio(e)
	if len(a.PendingSFX) == 0 {
		return
	}
	if cfg.Audio.Muted {
		a.PendingSFX = a.PendingSFX[:0]
		return
	}

	initGlobalAudio()
	for _, id := range a.PendingSFX {
		playSFX(id)
	}
	a.PendingSFX = a.PendingSFX[:0]
}

func playSFX(id cfg.SoundID) {
	if globalSFXVolume <= 0 {
		return
	}

	player, err := globalAudioLoader.LoadSFX(id)
	if err != nil {
		return
	}

	volume := globalSFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[id]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}

func getOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = archetypes.Audio.Spawn(e)
	}
	return components.Audio.Get(entry)
}
