package config

import (
	"image/color"
	"time"

	"github.com/automoto/petalfall/shared/palette"
)

// StemConfig contains stem growth configuration values
type StemConfig struct {
	// Geometry
	StartJitterX   float64 // Horizontal spread of the off-screen start point
	StartBelow     float64 // Pixels below the viewport where stems start
	ControlJitter  float64 // Horizontal jitter applied to both control points
	ControlAlongX  float64 // Fraction of dx pulled toward each control point
	ControlAlongY  float64 // Fraction of dy pulled toward each control point
	PixelsPerStep  float64 // Path length covered by one sample
	MinSampleCount int

	// Growth
	MinGrowthSpeed   float64 // samples per frame
	GrowthSpeedRange float64
	SinkMultiplier   float64 // Retraction speed relative to growth speed

	// Visual
	MinWidth   float64
	WidthRange float64
	Colors     []palette.Color
}

// FlowerConfig contains flower generation configuration values
type FlowerConfig struct {
	MinTargetScale   float64
	TargetScaleRange float64
	MinGrowthRate    float64
	GrowthRateRange  float64
	SinkMultiplier   float64 // Shrink speed relative to growth rate
	MaxTilt          float64 // Full width of the random resting rotation (radians)

	// Sway
	SwayAmplitude float64 // radians
	SwayFrequency float64 // radians per millisecond

	// Petals
	MinPetals        int
	PetalCountRange  int
	PetalAngleJitter float64
	MinPetalLength   float64
	PetalLengthRange float64
	MinPetalWidth    float64 // fraction of length
	PetalWidthRange  float64
	MaxSecondaryMix  float64
	MinControlDist   float64
	ControlDistRange float64
	PetalCurveSegs   int   // Flattening resolution for each petal curve
	EdgeDarken       uint8 // Channel amount subtracted for the gradient edge
	GradientStartY   float64
	GradientEndY     float64
	PetalColors      []palette.Color

	// Shadow
	ShadowBlur   float64 // pixels
	ShadowAlpha  float64
	ShadowLayers int

	// Core disc
	MinCoreRadius   float64
	CoreRadiusRange float64
	CoreColor       palette.Color
}

// BubbleConfig contains bubble particle configuration values
type BubbleConfig struct {
	Life        int // frames
	BurstCount  int
	MinSize     float64
	SizeRange   float64
	SpeedXRange float64 // centred on zero
	MinSpeedY   float64
	SpeedYRange float64
	OriginY     float64 // Bursts start this far below the top edge
	Color       palette.Color
}

// NarrativeConfig contains narrative step configuration values
type NarrativeConfig struct {
	IntroText     string
	PromptText    string
	TextColor     color.RGBA
	TextY         float64 // fraction of viewport height
	FadeDuration  time.Duration
	ProgressStep  float64 // percent per interaction
	ProgressMax   float64
	FirstProgress float64 // progress set by the first planting interaction
}

// ProgressBarConfig contains progress bar configuration values
type ProgressBarConfig struct {
	Height       float64
	EaseDuration time.Duration
	Color        color.RGBA
	TrackColor   color.RGBA
}

// FinaleConfig contains final screen configuration values
type FinaleConfig struct {
	RevealDelay     time.Duration
	FadeDuration    time.Duration
	Title           string
	Message         string
	ButtonText      string
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipIntro      bool // Start directly at the planting step
	LogTransitions bool // Log narrative transitions as they fire
	Overlay        bool // Draw stem handles and live counts
}

// Config holds general game configuration
type Config struct {
	Width      int
	Height     int
	TPS        int
	Title      string
	Background color.RGBA
}

// Global configuration instances
var C *Config
var Stem StemConfig
var Flower FlowerConfig
var Bubble BubbleConfig
var Narrative NarrativeConfig
var ProgressBar ProgressBarConfig
var Finale FinaleConfig
var Debug DebugConfig

// Palettes
var (
	PetalColors = []palette.Color{
		{R: 255, G: 60, B: 90},
		{R: 255, G: 20, B: 60},
		{R: 255, G: 100, B: 150},
		{R: 200, G: 20, B: 180},
		{R: 255, G: 80, B: 40},
	}
	StemColors = []palette.Color{
		{R: 100, G: 180, B: 60},
		{R: 70, G: 150, B: 50},
		{R: 120, G: 190, B: 80},
	}
	CoreColor   = palette.Color{R: 40, G: 10, B: 10}
	BubbleColor = palette.Color{R: 255, G: 143, B: 163}
)

// Shared RGBA color constants
var (
	Background   = color.RGBA{R: 10, G: 10, B: 10, A: 255}
	Pink         = color.RGBA{R: 255, G: 143, B: 163, A: 255}
	DimPink      = color.RGBA{R: 255, G: 143, B: 163, A: 40}
	SoftWhite    = color.RGBA{R: 235, G: 230, B: 232, A: 255}
	FinaleShade  = color.RGBA{R: 10, G: 10, B: 10, A: 235}
	ButtonIdle   = color.RGBA{R: 60, G: 30, B: 40, A: 255}
	ButtonHover  = color.RGBA{R: 90, G: 45, B: 60, A: 255}
	ButtonActive = color.RGBA{R: 40, G: 20, B: 30, A: 255}
)

func init() {
	C = &Config{
		Width:      1280,
		Height:     720,
		TPS:        60,
		Title:      "petalfall",
		Background: Background,
	}

	Stem = StemConfig{
		StartJitterX:   80,
		StartBelow:     50,
		ControlJitter:  100,
		ControlAlongX:  0.2,
		ControlAlongY:  0.3,
		PixelsPerStep:  4,
		MinSampleCount: 50,

		MinGrowthSpeed:   1.0,
		GrowthSpeedRange: 1.2,
		SinkMultiplier:   4,

		MinWidth:   1.5,
		WidthRange: 2,
		Colors:     StemColors,
	}

	Flower = FlowerConfig{
		MinTargetScale:   0.5,
		TargetScaleRange: 0.5,
		MinGrowthRate:    0.01,
		GrowthRateRange:  0.03,
		SinkMultiplier:   5,
		MaxTilt:          0.5,

		SwayAmplitude: 0.05,
		SwayFrequency: 0.001,

		MinPetals:        4,
		PetalCountRange:  3,
		PetalAngleJitter: 0.5,
		MinPetalLength:   40,
		PetalLengthRange: 30,
		MinPetalWidth:    0.6,
		PetalWidthRange:  0.4,
		MaxSecondaryMix:  0.5,
		MinControlDist:   0.5,
		ControlDistRange: 0.5,
		PetalCurveSegs:   16,
		EdgeDarken:       30,
		GradientStartY:   0.3,
		GradientEndY:     0.5,
		PetalColors:      PetalColors,

		ShadowBlur:   5,
		ShadowAlpha:  0.3,
		ShadowLayers: 2,

		MinCoreRadius:   4,
		CoreRadiusRange: 6,
		CoreColor:       CoreColor,
	}

	Bubble = BubbleConfig{
		Life:        25,
		BurstCount:  15,
		MinSize:     0.3,
		SizeRange:   1.2,
		SpeedXRange: 2,
		MinSpeedY:   1.5,
		SpeedYRange: 3,
		OriginY:     5,
		Color:       BubbleColor,
	}

	Narrative = NarrativeConfig{
		IntroText:     "Somewhere under the dark, something is waiting.",
		PromptText:    "Touch the ground. Let it grow.",
		TextColor:     SoftWhite,
		TextY:         0.45,
		FadeDuration:  1500 * time.Millisecond,
		ProgressStep:  2,
		ProgressMax:   100,
		FirstProgress: 2,
	}

	ProgressBar = ProgressBarConfig{
		Height:       4,
		EaseDuration: 300 * time.Millisecond,
		Color:        Pink,
		TrackColor:   DimPink,
	}

	Finale = FinaleConfig{
		RevealDelay:     3 * time.Second,
		FadeDuration:    1500 * time.Millisecond,
		Title:           "Everything you planted went home.",
		Message:         "Thank you for growing it with me.",
		ButtonText:      "Plant again",
		BackgroundColor: FinaleShade,
		TitleColor:      Pink,
		TextColor:       SoftWhite,
	}

	Debug = DebugConfig{
		SkipIntro:      false,
		LogTransitions: false,
		Overlay:        false,
	}
}
