package objects

import (
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	// BagViewWidth and BagViewHeight are the units the bag is drawn in.
	BagViewWidth  = 200
	BagViewHeight = 400
)

// BagFrame places the bag drawing on the screen.
type BagFrame struct {
	X, Y  float64
	Scale float64
}

// NewBagFrame fits the bag into a screen of the given size, centered
// horizontally and leaving margin pixels above and below.
func NewBagFrame(screenWidth, screenHeight, margin int) BagFrame {
	scale := float64(screenHeight-2*margin) / BagViewHeight
	if w := float64(screenWidth-2*margin) / BagViewWidth; w < scale {
		scale = w
	}
	return BagFrame{
		X:     (float64(screenWidth) - BagViewWidth*scale) / 2,
		Y:     float64(margin),
		Scale: scale,
	}
}

// Point converts drawing units to screen coordinates.
func (f BagFrame) Point(vx, vy float64) (float32, float32) {
	return float32(f.X + vx*f.Scale), float32(f.Y + vy*f.Scale)
}

func (f BagFrame) Width() float64 {
	return BagViewWidth * f.Scale
}

func (f BagFrame) Height() float64 {
	return BagViewHeight * f.Scale
}

// CordLine returns where a cord at positionY percent of the bag height
// crosses the neck.
func (f BagFrame) CordLine(positionY float64) (x, y, w float64) {
	return f.X + f.Width()*0.25, f.Y + f.Height()*positionY/100, f.Width() * 0.5
}

var (
	whiteOnce     sync.Once
	whiteSubImage *ebiten.Image
)

func whitePixel() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSubImage
}

// fillPath fills the closed path with clr.
func fillPath(dst *ebiten.Image, path *vector.Path, clr color.Color) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	drawVertices(dst, vs, is, clr, ebiten.EvenOdd)
}

// strokePath outlines the path with clr.
func strokePath(dst *ebiten.Image, path *vector.Path, clr color.Color, width float32) {
	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{
		Width:    width,
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	})
	drawVertices(dst, vs, is, clr, ebiten.FillAll)
}

func drawVertices(dst *ebiten.Image, vs []ebiten.Vertex, is []uint16, clr color.Color, rule ebiten.FillRule) {
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	dst.DrawTriangles(vs, is, whitePixel(), &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  rule,
	})
}

// drawCenteredText draws s centered on (cx, cy), scaled around its center.
func drawCenteredText(dst *ebiten.Image, s string, face font.Face, cx, cy, scale float64, clr color.Color) {
	bounds := text.BoundString(face, s)
	w, h := float64(bounds.Dx()), float64(bounds.Dy())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(bounds.Min.X)-w/2, -float64(bounds.Min.Y)-h/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(dst, s, face, op)
}
