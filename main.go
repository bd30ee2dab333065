package main

import (
	"flag"
	"log"

	"github.com/automoto/petalfall/config"
	"github.com/automoto/petalfall/fonts"
	"github.com/automoto/petalfall/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	g := &Game{}
	g.scene = scenes.NewGardenScene(g)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout follows the window so new stems start below whatever the
// current bottom edge is.
func (g *Game) Layout(width, height int) (int, int) {
	if width > 0 && height > 0 {
		config.C.Width = width
		config.C.Height = height
	}
	return config.C.Width, config.C.Height
}

func main() {
	width := flag.Int("width", config.C.Width, "Initial window width")
	height := flag.Int("height", config.C.Height, "Initial window height")
	skipIntro := flag.Bool("skip-intro", false, "Start at the planting prompt")
	logTransitions := flag.Bool("log-transitions", false, "Log narrative transitions as they fire")
	mute := flag.Bool("mute", false, "Disable sound effects")
	debug := flag.Bool("debug", false, "Draw stem handles and live counts")
	flag.Parse()

	config.C.Width = *width
	config.C.Height = *height
	config.Debug.SkipIntro = *skipIntro
	config.Debug.LogTransitions = *logTransitions
	config.Audio.Muted = *mute
	config.Debug.Overlay = *debug

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
