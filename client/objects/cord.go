package objects

import (
	"fmt"

	"github.com/cbodonnell/patiencebag/client/animations"
	"github.com/cbodonnell/patiencebag/client/fonts"
	"github.com/cbodonnell/patiencebag/pkg/bag"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	// cordHitHeight is the height of the clickable band around a cord.
	cordHitHeight = 40
	cordThickness = 8
	// cordDroop is how far the broken halves hang down, in bag units.
	cordDroop = 18
)

// CordObject is one clickable cord across the neck of the bag. A snapped
// cord hangs in two halves and shows its phrase.
type CordObject struct {
	*BaseObject

	frame  BagFrame
	tps    int
	cord   bag.Cord
	hidden bool
	droop  *animations.Animation
}

type NewCordObjectOptions struct {
	Frame  BagFrame
	TPS    int
	Cord   bag.Cord
	ZIndex int
}

func NewCordObject(id string, opts NewCordObjectOptions) *CordObject {
	o := &CordObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: opts.ZIndex,
		}),
		frame: opts.Frame,
		tps:   opts.TPS,
		cord:  opts.Cord,
		droop: animations.NewPopInAnimation(animations.Ticks(250, opts.TPS)),
	}
	return o
}

func (o *CordObject) Init() error {
	if o.cord.Broken {
		return o.showWord()
	}
	return nil
}

// CordID returns the id of the cord this object draws.
func (o *CordObject) CordID() int {
	return o.cord.ID
}

// Bounds returns the clickable area of the cord in screen coordinates.
func (o *CordObject) Bounds() (x, y, w, h float64) {
	lx, ly, lw := o.frame.CordLine(o.cord.PositionY)
	return lx, ly - cordHitHeight/2, lw, cordHitHeight
}

// Sync updates the object from the latest state of its cord.
func (o *CordObject) Sync(c bag.Cord) error {
	if c.ID != o.cord.ID {
		return fmt.Errorf("cord object %s cannot sync cord %d", o.GetID(), c.ID)
	}
	snapped := c.Broken && !o.cord.Broken
	o.cord = c
	if snapped {
		o.droop.Reset()
		return o.showWord()
	}
	return nil
}

// SetHidden hides the cord and its phrase, e.g. once the bag has burst.
func (o *CordObject) SetHidden(hidden bool) {
	o.hidden = hidden
}

func (o *CordObject) wordID() string {
	return fmt.Sprintf("%s-word", o.GetID())
}

func (o *CordObject) showWord() error {
	if o.GetChild(o.wordID()) != nil {
		return nil
	}
	x, y, w := o.frame.CordLine(o.cord.PositionY)
	word := NewTextEffect(o.wordID(), NewTextEffectOptions{
		Text:       o.cord.Word,
		X:          x + w/2,
		Y:          y - cordHitHeight/2,
		Face:       fonts.SmallFont,
		Color:      ColorCordIntact,
		Background: ColorWordBubble,
		PopIn:      animations.Ticks(300, o.tps),
	})
	if err := o.AddChild(word.GetID(), &hideable{GameObject: word, hidden: &o.hidden}); err != nil {
		return fmt.Errorf("failed to add word: %v", err)
	}
	return nil
}

func (o *CordObject) Update() error {
	if o.cord.Broken {
		o.droop.Update()
	}
	return nil
}

func (o *CordObject) Draw(screen *ebiten.Image) {
	if o.hidden {
		return
	}
	f := o.frame
	x, y, w := f.CordLine(o.cord.PositionY)
	thickness := float32(cordThickness * f.Scale)

	if !o.cord.Broken {
		vector.StrokeLine(screen, float32(x), float32(y), float32(x+w), float32(y), thickness, ColorCordIntact, true)
		return
	}

	droop := cordDroop * f.Scale * o.droop.Progress()
	half := w * 0.4
	vector.StrokeLine(screen, float32(x), float32(y), float32(x+half), float32(y+droop), thickness, ColorCordBroken, true)
	vector.StrokeLine(screen, float32(x+w), float32(y), float32(x+w-half), float32(y+droop), thickness, ColorCordBroken, true)
}

// hideable skips drawing its object while hidden is set.
type hideable struct {
	GameObject
	hidden *bool
}

func (h *hideable) Draw(screen *ebiten.Image) {
	if *h.hidden {
		return
	}
	h.GameObject.Draw(screen)
}
