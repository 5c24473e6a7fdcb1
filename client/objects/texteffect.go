package objects

import (
	"image/color"

	"github.com/cbodonnell/patiencebag/client/animations"
	"github.com/cbodonnell/patiencebag/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// TextEffect is a phrase in a speech bubble that pops in over the bag and
// stays until its parent removes it.
type TextEffect struct {
	*BaseObject

	text       string
	x          float64
	y          float64
	face       font.Face
	color      color.Color
	background color.Color
	popIn      *animations.Animation
}

type NewTextEffectOptions struct {
	// Text is the text to display.
	Text string
	// X is the x-coordinate of the center of the text.
	X float64
	// Y is the y-coordinate of the center of the text.
	Y float64
	// Face defaults to fonts.NormalFont.
	Face font.Face
	// Color is the color of the text.
	Color color.Color
	// Background fills the bubble behind the text. Nil draws no bubble.
	Background color.Color
	// PopIn is the number of updates the pop-in takes.
	PopIn int
	// ZIndex is the z-index of the text effect.
	ZIndex int
}

func NewTextEffect(id string, opts NewTextEffectOptions) *TextEffect {
	clr := opts.Color
	if clr == nil {
		clr = ColorTextMain
	}
	face := opts.Face
	if face == nil {
		face = fonts.NormalFont
	}

	baseObjectOpts := &NewBaseObjectOpts{
		ZIndex: opts.ZIndex,
	}

	return &TextEffect{
		BaseObject: NewBaseObject(id, baseObjectOpts),
		text:       opts.Text,
		x:          opts.X,
		y:          opts.Y,
		face:       face,
		color:      clr,
		background: opts.Background,
		popIn:      animations.NewPopInAnimation(opts.PopIn),
	}
}

func (o *TextEffect) Update() error {
	o.popIn.Update()
	return nil
}

func (o *TextEffect) Draw(screen *ebiten.Image) {
	scale := animations.PopScale(o.popIn.Progress())
	if scale <= 0 {
		return
	}
	if o.background != nil {
		bounds := text.BoundString(o.face, o.text)
		const padding = 8
		w := (float64(bounds.Dx()) + 2*padding) * scale
		h := (float64(bounds.Dy()) + 2*padding) * scale
		x, y := float32(o.x-w/2), float32(o.y-h/2)
		vector.DrawFilledRect(screen, x, y, float32(w), float32(h), o.background, true)
		vector.StrokeRect(screen, x, y, float32(w), float32(h), 1, ColorWordOutline, true)
	}
	drawCenteredText(screen, o.text, o.face, o.x, o.y, scale, o.color)
}
