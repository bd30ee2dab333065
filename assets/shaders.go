package assets

import (
	"embed"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// GradientShader fills petals with a radial gradient
	GradientShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders. Safe to call more than once.
func LoadShaders() error {
	if GradientShader != nil {
		return nil
	}
	src, err := shaderFS.ReadFile("shaders/gradient.kage")
	if err != nil {
		return fmt.Errorf("read gradient shader: %w", err)
	}
	GradientShader, err = ebiten.NewShader(src)
	if err != nil {
		return fmt.Errorf("compile gradient shader: %w", err)
	}
	return nil
}
