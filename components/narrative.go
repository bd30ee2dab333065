package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// NarrativeStep is the phase of the story the player is in.
type NarrativeStep int

const (
	StepIntro NarrativeStep = iota + 1
	StepPrompt
	StepGrowing
)

// TransitionKind names a deferred narrative change.
type TransitionKind int

const (
	TransitionShowPrompt TransitionKind = iota
	TransitionHidePrompt
	TransitionRevealFinale
)

func (k TransitionKind) String() string {
	switch k {
	case TransitionShowPrompt:
		return "show-prompt"
	case TransitionHidePrompt:
		return "hide-prompt"
	case TransitionRevealFinale:
		return "reveal-finale"
	}
	return "unknown"
}

// Transition fires once the clock reaches Due (seconds).
type Transition struct {
	Kind TransitionKind
	Due  float64
}

// TextLine is one fading line of narrative text.
type TextLine struct {
	Visible bool
	Alpha   float64
	Fade    *gween.Tween // nil when settled
}

// NarrativeData is the singleton game-progression state.
type NarrativeData struct {
	Step     NarrativeStep
	Progress float64 // percent
	GameOver bool

	Intro  TextLine
	Prompt TextLine

	// Progress bar fill as a fraction of the viewport width, eased toward Progress.
	BarFill  float64
	BarTween *gween.Tween

	FinaleShown bool
	FinaleAlpha float64
	FinaleFade  *gween.Tween

	Pending []Transition
}

var Narrative = donburi.NewComponentType[NarrativeData]()

// Schedule queues a transition of kind at due seconds.
func (n *NarrativeData) Schedule(kind TransitionKind, due float64) {
	n.Pending = append(n.Pending, Transition{Kind: kind, Due: due})
}

// IsPending reports whether a transition of kind is queued.
func (n *NarrativeData) IsPending(kind TransitionKind) bool {
	for _, t := range n.Pending {
		if t.Kind == kind {
			return true
		}
	}
	return false
}

// TakeDue removes and returns the transitions due at or before now, in the
// order they were scheduled.
func (n *NarrativeData) TakeDue(now float64) []Transition {
	var due []Transition
	kept := n.Pending[:0]
	for _, t := range n.Pending {
		if t.Due <= now {
			due = append(due, t)
			continue
		}
		kept = append(kept, t)
	}
	n.Pending = kept
	return due
}
