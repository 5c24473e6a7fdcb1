package scenes

import (
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"golang.org/x/image/font"
)

var (
	textColor    = color.NRGBA{R: 0x43, G: 0x14, B: 0x07, A: 255}
	lightText    = color.NRGBA{R: 254, G: 255, B: 255, A: 255}
	disabledText = color.NRGBA{R: 200, G: 200, B: 200, A: 255}
)

// buttonImage returns the idle, hover and pressed looks of a button in the
// given base color.
func buttonImage(base color.NRGBA) *widget.ButtonImage {
	darken := func(c color.NRGBA, by uint8) color.NRGBA {
		sub := func(v uint8) uint8 {
			if v < by {
				return 0
			}
			return v - by
		}
		return color.NRGBA{R: sub(c.R), G: sub(c.G), B: sub(c.B), A: c.A}
	}
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(base),
		Hover:    image.NewNineSliceColor(darken(base, 25)),
		Pressed:  image.NewNineSliceColor(darken(base, 50)),
		Disabled: image.NewNineSliceColor(color.NRGBA{R: 170, G: 170, B: 180, A: 255}),
	}
}

func newButton(label string, face font.Face, base color.NRGBA, clr color.Color, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
				Stretch:  true,
			}),
		),
		widget.ButtonOpts.Image(buttonImage(base)),
		widget.ButtonOpts.Text(label, face, &widget.ButtonTextColor{
			Idle:     clr,
			Disabled: disabledText,
		}),
		widget.ButtonOpts.TextPadding(widget.Insets{
			Left:   30,
			Right:  30,
			Top:    10,
			Bottom: 10,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func newText(s string, face font.Face, clr color.Color) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(s, face, clr),
		widget.TextOpts.Position(widget.TextPositionCenter, widget.TextPositionCenter),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
	)
}

// centered wraps content in a full screen container that centers it.
func centered(content widget.PreferredSizeLocateableWidget, background *image.NineSlice) *widget.Container {
	opts := []widget.ContainerOpt{
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	}
	if background != nil {
		opts = append(opts, widget.ContainerOpts.BackgroundImage(background))
	}
	root := widget.NewContainer(opts...)
	content.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
	}
	root.AddChild(content)
	return root
}
