package systems

import (
	"github.com/automoto/petalfall/assets"
	"github.com/automoto/petalfall/canvas"
	"github.com/hajimehoshi/ebiten/v2"
)

// Cached screen surface, re-pointed at the frame's target every draw
var screenSurface *canvas.Screen

// surfaceFor wraps the frame's screen image as a canvas.Surface.
func surfaceFor(screen *ebiten.Image) canvas.Surface {
	if screenSurface == nil {
		screenSurface = canvas.NewScreen(screen, assets.GradientShader)
		return screenSurface
	}
	screenSurface.Reset(screen)
	return screenSurface
}
