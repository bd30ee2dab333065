package assets

import (
	"encoding/binary"
	"fmt"
	"math"

	cfg "github.com/automoto/petalfall/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader synthesizes and caches sound effect PCM
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX renders a sound effect and caches it without creating a player.
func (l *AudioLoader) PreloadSFX(id cfg.SoundID) error {
	if _, ok := l.sfxCache[id]; ok {
		return nil
	}
	tone, ok := cfg.Sound.Tones[id]
	if !ok {
		return fmt.Errorf("no tone for sound %d", id)
	}
	l.sfxCache[id] = SynthesizeTone(l.context.SampleRate(), tone)
	return nil
}

// LoadSFX returns a new player for the sound each time.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, error) {
	if err := l.PreloadSFX(id); err != nil {
		return nil, err
	}
	return l.context.NewPlayerFromBytes(l.sfxCache[id]), nil
}

// SynthesizeTone renders tone as 16-bit little-endian stereo PCM.
func SynthesizeTone(sampleRate int, tone cfg.ToneConfig) []byte {
	n := int(tone.Duration.Seconds() * float64(sampleRate))
	attack := tone.Attack.Seconds() * float64(sampleRate)
	buf := make([]byte, n*4)

	norm := 1 / (1 + tone.Overtone)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		env := math.Exp(-tone.Decay * float64(i) / float64(n))
		if attack > 0 && float64(i) < attack {
			env *= float64(i) / attack
		}
		v := math.Sin(2*math.Pi*tone.Frequency*t) + tone.Overtone*math.Sin(4*math.Pi*tone.Frequency*t)
		s := int16(v * norm * env * math.MaxInt16)

		binary.LittleEndian.PutUint16(buf[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(s))
	}
	return buf
}
