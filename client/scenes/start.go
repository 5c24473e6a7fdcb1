package scenes

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/patiencebag/client/fonts"
	"github.com/cbodonnell/patiencebag/client/input"
	"github.com/cbodonnell/patiencebag/client/objects"
	"github.com/cbodonnell/patiencebag/pkg/bag"
	"github.com/cbodonnell/patiencebag/pkg/log"
	"github.com/cbodonnell/patiencebag/pkg/queue"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

// StartScene asks how many cords the bag should have.
type StartScene struct {
	*BaseScene

	events       queue.Queue[bag.Event]
	difficulties []int
	ui           *ebitenui.UI
}

type StartSceneOptions struct {
	// Events receives a Choose event when a difficulty is picked.
	Events queue.Queue[bag.Event]
	// Difficulties are the cord counts to offer.
	Difficulties []int
}

var _ Scene = &StartScene{}

func NewStartScene(opts StartSceneOptions) (Scene, error) {
	if opts.Events == nil {
		return nil, fmt.Errorf("events queue is required")
	}
	if len(opts.Difficulties) == 0 {
		return nil, fmt.Errorf("at least one difficulty is required")
	}
	return &StartScene{
		BaseScene:    NewBaseScene(objects.NewBaseObject("start-root", nil)),
		events:       opts.Events,
		difficulties: append([]int(nil), opts.Difficulties...),
	}, nil
}

func (s *StartScene) Init() error {
	s.renderUI()
	return s.BaseScene.Init()
}

func (s *StartScene) renderUI() {
	card := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.NRGBA{R: 255, G: 255, B: 255, A: 230})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(20),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(30)),
		)),
	)

	card.AddChild(newText("堪忍袋の緒", fonts.LargeFont, textColor))
	card.AddChild(newText("イライラが溜まっていませんか？", fonts.SmallFont, textColor))
	card.AddChild(newText("緒（ひも）の本数を選んでください。", fonts.SmallFont, textColor))

	buttons := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(12),
		)),
	)
	for _, n := range s.difficulties {
		count := n
		buttons.AddChild(newButton(fmt.Sprintf("%d本", count), fonts.NormalFont, color.NRGBA{R: 0xb9, G: 0x1c, B: 0x1c, A: 255}, lightText, func() {
			s.choose(count)
		}))
	}
	card.AddChild(buttons)

	s.ui = &ebitenui.UI{
		Container: centered(card, nil),
	}
}

func (s *StartScene) choose(count int) {
	log.Debug("Difficulty picked: %d cords", count)
	s.events.Enqueue(bag.Choose(count))
}

func (s *StartScene) Update() error {
	s.ui.Update()
	// digit keys pick the n-th offered difficulty
	if i, ok := input.DigitJustPressed(); ok && i < len(s.difficulties) {
		s.choose(s.difficulties[i])
	}
	return s.BaseScene.Update()
}

func (s *StartScene) Draw(screen *ebiten.Image) {
	s.ui.Draw(screen)
	s.BaseScene.Draw(screen)
}
