package ui

import (
	"bytes"

	cfg "github.com/automoto/petalfall/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// FinaleUI holds the ebitenui interface shown once the garden has sunk
type FinaleUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnReplant func()

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face

	// Offscreen target so the whole panel can fade as one
	layer *ebiten.Image
}

// NewFinaleUI creates the final screen with a single replant button
func NewFinaleUI(onReplant func()) *FinaleUI {
	fui := &FinaleUI{
		OnReplant: onReplant,
	}

	fui.loadFonts()
	fui.buildUI()

	return fui
}

func (fui *FinaleUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	fui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   28,
	}
	fui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   18,
	}
}

func (fui *FinaleUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Finale.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(14),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.Finale.Title, &fui.titleFace, &widget.LabelColor{
			Idle: cfg.Finale.TitleColor,
		}),
	))
	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.Finale.Message, &fui.normalFace, &widget.LabelColor{
			Idle: cfg.Finale.TextColor,
		}),
	))

	replantButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(160, 36),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
		widget.ButtonOpts.Image(fui.buttonImage()),
		widget.ButtonOpts.Text(cfg.Finale.ButtonText, &fui.normalFace, &widget.ButtonTextColor{
			Idle:    cfg.Finale.TextColor,
			Hover:   cfg.Pink,
			Pressed: cfg.Finale.TextColor,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if fui.OnReplant != nil {
				fui.OnReplant()
			}
		}),
	)
	contentContainer.AddChild(replantButton)

	rootContainer.AddChild(contentContainer)

	fui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (fui *FinaleUI) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(cfg.ButtonIdle),
		Hover:    image.NewNineSliceColor(cfg.ButtonHover),
		Pressed:  image.NewNineSliceColor(cfg.ButtonActive),
		Disabled: image.NewNineSliceColor(cfg.ButtonActive),
	}
}

// Update processes ebitenui input
func (fui *FinaleUI) Update() {
	fui.UI.Update()
}

// Draw renders the UI onto screen at the given opacity
func (fui *FinaleUI) Draw(screen *ebiten.Image, alpha float64) {
	if alpha <= 0 {
		return
	}

	bounds := screen.Bounds()
	if fui.layer == nil || fui.layer.Bounds().Dx() != bounds.Dx() || fui.layer.Bounds().Dy() != bounds.Dy() {
		if fui.layer != nil {
			fui.layer.Deallocate()
		}
		fui.layer = ebiten.NewImage(bounds.Dx(), bounds.Dy())
	}
	fui.layer.Clear()
	fui.UI.Draw(fui.layer)

	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(float32(alpha))
	screen.DrawImage(fui.layer, op)
}
