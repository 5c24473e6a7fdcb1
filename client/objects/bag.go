package objects

import (
	"github.com/cbodonnell/patiencebag/client/animations"
	"github.com/cbodonnell/patiencebag/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// burstOutline is the jagged shape of the bag once it has exploded.
var burstOutline = [][2]float64{
	{60, 20}, {40, 60}, {10, 50}, {30, 100}, {5, 150}, {35, 180}, {10, 250},
	{50, 240}, {40, 300}, {80, 280}, {100, 350}, {120, 280}, {160, 300},
	{150, 240}, {190, 250}, {165, 180}, {195, 150}, {170, 100}, {190, 50},
	{160, 60}, {140, 20}, {100, 40},
}

// debrisLines are the shock lines drawn around the burst.
var debrisLines = [][4]float64{
	{0, 100, -20, 80},
	{200, 100, 220, 80},
	{100, 360, 100, 390},
	{20, 0, 0, -20},
}

// BagObject draws the patience bag, shaking while the fuse burns and
// bursting once exploded.
type BagObject struct {
	*BaseObject

	frame    BagFrame
	exploded bool
	fusing   bool

	shake *animations.Animation
	pulse *animations.Animation
	burst *animations.Animation
}

type NewBagObjectOptions struct {
	// Frame places the bag on the screen.
	Frame BagFrame
	// TPS is the number of updates per second.
	TPS int
	// ZIndex is the z-index of the bag.
	ZIndex int
}

func NewBagObject(id string, opts NewBagObjectOptions) *BagObject {
	return &BagObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: opts.ZIndex,
		}),
		frame: opts.Frame,
		shake: animations.NewPulseAnimation(animations.Ticks(300, opts.TPS)),
		pulse: animations.NewPulseAnimation(animations.Ticks(1000, opts.TPS)),
		burst: animations.NewPopInAnimation(animations.Ticks(400, opts.TPS)),
	}
}

// SetState updates what the bag looks like.
func (o *BagObject) SetState(fusing, exploded bool) {
	if exploded && !o.exploded {
		o.burst.Reset()
		o.pulse.Reset()
	}
	if fusing && !o.fusing {
		o.shake.Reset()
	}
	o.fusing = fusing
	o.exploded = exploded
}

func (o *BagObject) Update() error {
	switch {
	case o.exploded:
		o.burst.Update()
		o.pulse.Update()
	case o.fusing:
		o.shake.Update()
	}
	return nil
}

func (o *BagObject) Draw(screen *ebiten.Image) {
	if o.exploded {
		o.drawBurst(screen)
		return
	}

	frame := o.frame
	if o.fusing {
		frame.X += animations.Shake(o.shake.Progress(), 4)
	}
	o.drawBag(screen, frame)
}

func (o *BagObject) drawBag(screen *ebiten.Image, f BagFrame) {
	path := &vector.Path{}
	path.MoveTo(f.Point(60, 20))
	quadTo(path, f, 40, 100, 50, 200)
	quadTo(path, f, 10, 250, 10, 320)
	quadTo(path, f, 10, 390, 100, 390)
	quadTo(path, f, 190, 390, 190, 320)
	quadTo(path, f, 190, 250, 150, 200)
	quadTo(path, f, 160, 100, 140, 20)
	quadTo(path, f, 100, 10, 60, 20)
	path.Close()

	fillPath(screen, path, ColorBag)
	strokePath(screen, path, ColorBagOutline, float32(4*f.Scale))

	for _, w := range [][6]float64{
		{60, 250, 80, 260, 100, 250},
		{120, 300, 140, 310, 160, 300},
	} {
		wrinkle := &vector.Path{}
		wrinkle.MoveTo(f.Point(w[0], w[1]))
		quadTo(wrinkle, f, w[2], w[3], w[4], w[5])
		strokePath(screen, wrinkle, ColorBagOutline, float32(2*f.Scale))
	}

	lx, ly := f.Point(100, 310)
	drawCenteredText(screen, "堪忍袋", fonts.LargeFont, float64(lx), float64(ly), f.Scale*0.8, ColorCordIntact)
}

func (o *BagObject) drawBurst(screen *ebiten.Image) {
	f := o.frame
	// the burst grows out of the center of the bag
	scale := animations.PopScale(o.burst.Progress())
	cx, cy := f.X+f.Width()/2, f.Y+f.Height()/2
	point := func(vx, vy float64) (float32, float32) {
		x, y := f.Point(vx+10, vy+10)
		return float32(cx + (float64(x)-cx)*scale), float32(cy + (float64(y)-cy)*scale)
	}

	path := &vector.Path{}
	path.MoveTo(point(burstOutline[0][0], burstOutline[0][1]))
	for _, p := range burstOutline[1:] {
		path.LineTo(point(p[0], p[1]))
	}
	path.Close()
	fillPath(screen, path, ColorBurst)
	strokePath(screen, path, ColorBurstEdge, float32(4*f.Scale))

	for _, l := range debrisLines {
		x0, y0 := point(l[0], l[1])
		x1, y1 := point(l[2], l[3])
		vector.StrokeLine(screen, x0, y0, x1, y1, float32(3*f.Scale), ColorDebris, true)
	}

	tx, ty := point(100, 200)
	drawCenteredText(screen, "BOOM!", fonts.BoomFont, float64(tx), float64(ty), scale*animations.PulseScale(o.pulse.Progress(), 0.08)*f.Scale, ColorWordBubble)
}

func quadTo(path *vector.Path, f BagFrame, cx, cy, x, y float64) {
	x1, y1 := f.Point(cx, cy)
	x2, y2 := f.Point(x, y)
	path.QuadTo(x1, y1, x2, y2)
}
