package systems

import (
	"image/color"
	"log"
	"math"

	"github.com/automoto/petalfall/archetypes"
	"github.com/automoto/petalfall/components"
	cfg "github.com/automoto/petalfall/config"
	"github.com/automoto/petalfall/fonts"
	"github.com/automoto/petalfall/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// Cached font face for narrative rendering (lazy initialized)
var narrativeFontFace font.Face

// InitNarrative sets up the story state. With skipIntro the intro line is
// dropped and the first press plants straight away.
func InitNarrative(ecs *ecs.ECS, skipIntro bool) {
	n := getOrCreateNarrative(ecs)
	*n = components.NarrativeData{
		Step:  components.StepIntro,
		Intro: components.TextLine{Visible: true, Alpha: 1},
	}
	if skipIntro {
		n.Step = components.StepPrompt
		n.Intro = components.TextLine{}
		n.Prompt = components.TextLine{Visible: true, Alpha: 1}
	}
}

// HandleInteraction is the single entry point for a pointer press at (x, y).
// It advances the story, plants, bursts bubbles and, at full progress, sends
// the whole garden sinking and schedules the final screen.
func HandleInteraction(ecs *ecs.ECS, x, y float64) {
	n := getOrCreateNarrative(ecs)
	if n.GameOver {
		return
	}
	now := getOrCreateClock(ecs).Seconds
	fade := cfg.Narrative.FadeDuration.Seconds()

	switch n.Step {
	case components.StepIntro:
		// The intro is already on its way out.
		if n.IsPending(components.TransitionShowPrompt) {
			return
		}
		fadeOut(&n.Intro)
		n.Schedule(components.TransitionShowPrompt, now+fade)

	case components.StepPrompt:
		fadeOut(&n.Prompt)
		n.Step = components.StepGrowing
		plant(ecs, n, cfg.Narrative.FirstProgress, x, y)
		n.Schedule(components.TransitionHidePrompt, now+fade)

	case components.StepGrowing:
		plant(ecs, n, math.Min(n.Progress+cfg.Narrative.ProgressStep, cfg.Narrative.ProgressMax), x, y)
		if n.Progress >= cfg.Narrative.ProgressMax {
			n.GameOver = true
			SetAllSinking(ecs)
			QueueSFX(ecs, cfg.SoundSink)
			n.Schedule(components.TransitionRevealFinale, now+cfg.Finale.RevealDelay.Seconds())
		}
	}
}

// plant records the new progress, bursts bubbles off the bar's leading edge
// and grows a stem toward the press.
func plant(ecs *ecs.ECS, n *components.NarrativeData, progress, x, y float64) {
	setProgress(n, progress)
	factory.CreateBubbleBurst(ecs, barRightEdge(n), cfg.Bubble.OriginY, cfg.Bubble.BurstCount)
	factory.CreatePlant(ecs, x, y)
	QueueSFX(ecs, cfg.SoundPlant)
}

func setProgress(n *components.NarrativeData, progress float64) {
	n.Progress = progress
	n.BarTween = gween.New(
		float32(n.BarFill),
		float32(progress/100),
		float32(cfg.ProgressBar.EaseDuration.Seconds()),
		ease.OutQuad,
	)
}

func fadeOut(line *components.TextLine) {
	line.Fade = gween.New(float32(line.Alpha), 0, float32(cfg.Narrative.FadeDuration.Seconds()), ease.Linear)
}

func fadeIn(line *components.TextLine) {
	line.Visible = true
	line.Alpha = 0
	line.Fade = gween.New(0, 1, float32(cfg.Narrative.FadeDuration.Seconds()), ease.Linear)
}

// UpdateNarrative steps the fades and fires transitions that have come due.
func UpdateNarrative(ecs *ecs.ECS) {
	n := getOrCreateNarrative(ecs)
	dt := float32(1 / float64(cfg.C.TPS))

	stepLine(&n.Intro, dt)
	stepLine(&n.Prompt, dt)
	if n.BarTween != nil {
		v, done := n.BarTween.Update(dt)
		n.BarFill = float64(v)
		if done {
			n.BarTween = nil
		}
	}
	stepFinale(n, dt)

	now := getOrCreateClock(ecs).Seconds
	for _, t := range n.TakeDue(now) {
		if cfg.Debug.LogTransitions {
			log.Printf("narrative: %s at %.2fs", t.Kind, now)
		}
		applyTransition(n, t.Kind)
	}
}

func applyTransition(n *components.NarrativeData, kind components.TransitionKind) {
	switch kind {
	case components.TransitionShowPrompt:
		n.Intro = components.TextLine{}
		fadeIn(&n.Prompt)
		n.Step = components.StepPrompt
	case components.TransitionHidePrompt:
		n.Prompt = components.TextLine{}
	case components.TransitionRevealFinale:
		revealFinale(n)
	}
}

func stepLine(line *components.TextLine, dt float32) {
	if line.Fade == nil {
		return
	}
	v, done := line.Fade.Update(dt)
	line.Alpha = float64(v)
	if done {
		line.Fade = nil
	}
}

// IsGameOver reports whether the garden has been sent sinking.
func IsGameOver(ecs *ecs.ECS) bool {
	return getOrCreateNarrative(ecs).GameOver
}

// DrawNarrative renders the visible story lines centered on screen.
func DrawNarrative(ecs *ecs.ECS, screen *ebiten.Image) {
	n := getOrCreateNarrative(ecs)

	// Lazy initialize cached font face
	if narrativeFontFace == nil {
		narrativeFontFace = fonts.Narrative.Get()
	}

	width := float64(screen.Bounds().Dx())
	y := int(float64(screen.Bounds().Dy()) * cfg.Narrative.TextY)

	drawLine(screen, n.Intro, cfg.Narrative.IntroText, width, y)
	drawLine(screen, n.Prompt, cfg.Narrative.PromptText, width, y)
}

func drawLine(screen *ebiten.Image, line components.TextLine, msg string, width float64, y int) {
	if !line.Visible || line.Alpha <= 0 {
		return
	}
	c := cfg.Narrative.TextColor
	clr := color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(float64(c.A) * line.Alpha))}
	text.Draw(screen, msg, narrativeFontFace, centerTextX(msg, narrativeFontFace, width), y, clr) //nolint:staticcheck // TODO: migrate to text/v2
}

// centerTextX returns the x position that centers msg horizontally
func centerTextX(msg string, face font.Face, width float64) int {
	bounds := text.BoundString(face, msg) //nolint:staticcheck // TODO: migrate to text/v2
	return int((width - float64(bounds.Dx())) / 2)
}

// barRightEdge is the current x of the progress bar's leading edge.
func barRightEdge(n *components.NarrativeData) float64 {
	return n.BarFill * float64(cfg.C.Width)
}

func getOrCreateNarrative(ecs *ecs.ECS) *components.NarrativeData {
	entry, ok := components.Narrative.First(ecs.World)
	if !ok {
		entry = archetypes.Narrative.Spawn(ecs)
		components.Narrative.SetValue(entry, components.NarrativeData{
			Step:  components.StepIntro,
			Intro: components.TextLine{Visible: true, Alpha: 1},
		})
	}
	return components.Narrative.Get(entry)
}
