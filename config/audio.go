package config

import "time"

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundPlant
	SoundSink
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
	Muted         bool
}

// ToneConfig describes a synthesized chime: a sine with one overtone, a linear
// attack and an exponential decay.
type ToneConfig struct {
	Frequency float64 // Hz
	Overtone  float64 // Level of the octave above, relative to the fundamental
	Duration  time.Duration
	Attack    time.Duration
	Decay     float64 // e-folds over Duration
}

// SoundConfig maps sound IDs to their tones
type SoundConfig struct {
	Tones             map[SoundID]ToneConfig
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.4,
		Muted:         false,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]ToneConfig{
			SoundPlant: {
				Frequency: 660,
				Overtone:  0.3,
				Duration:  400 * time.Millisecond,
				Attack:    10 * time.Millisecond,
				Decay:     5,
			},
			SoundSink: {
				Frequency: 196,
				Overtone:  0.5,
				Duration:  1800 * time.Millisecond,
				Attack:    120 * time.Millisecond,
				Decay:     4,
			},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundSink: 1.5,
		},
	}
}
