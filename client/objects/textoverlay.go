package objects

import (
	"image/color"

	"github.com/cbodonnell/patiencebag/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// TextOverlayObject draws a line of text centered horizontally at Y.
type TextOverlayObject struct {
	*BaseObject

	text  string
	y     float64
	face  font.Face
	color color.Color
}

type NewTextOverlayOptions struct {
	Text   string
	Y      float64
	Face   font.Face
	Color  color.Color
	ZIndex int
}

func NewTextOverlayObject(id string, opts NewTextOverlayOptions) *TextOverlayObject {
	face := opts.Face
	if face == nil {
		face = fonts.SmallFont
	}
	clr := opts.Color
	if clr == nil {
		clr = ColorTextMain
	}
	return &TextOverlayObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: opts.ZIndex}),
		text:       opts.Text,
		y:          opts.Y,
		face:       face,
		color:      clr,
	}
}

func (o *TextOverlayObject) SetText(text string) {
	o.text = text
}

func (o *TextOverlayObject) Draw(screen *ebiten.Image) {
	if o.text == "" {
		return
	}
	cx := float64(screen.Bounds().Dx()) / 2
	drawCenteredText(screen, o.text, o.face, cx, o.y, 1, o.color)
}
