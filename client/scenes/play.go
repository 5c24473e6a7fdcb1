package scenes

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/patiencebag/client/animations"
	"github.com/cbodonnell/patiencebag/client/fonts"
	"github.com/cbodonnell/patiencebag/client/input"
	"github.com/cbodonnell/patiencebag/client/objects"
	"github.com/cbodonnell/patiencebag/pkg/bag"
	"github.com/cbodonnell/patiencebag/pkg/collisions"
	"github.com/cbodonnell/patiencebag/pkg/log"
	"github.com/cbodonnell/patiencebag/pkg/queue"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	bagMargin = 120
	// playAgainDelayMs is how long the burst shows before the play again
	// button appears.
	playAgainDelayMs = 1000
)

// PlayScene draws one session: the bag, its cords and the mercy prompt.
type PlayScene struct {
	*BaseScene

	events    queue.Queue[bag.Event]
	tps       int
	frame     objects.BagFrame
	sessionID string
	view      bag.View

	root  *objects.SortedZIndexObject
	bag   *objects.BagObject
	cords []*objects.CordObject
	hint  *objects.TextOverlayObject
	hits  *collisions.HitSpace

	mercyUI     *ebitenui.UI
	playAgainUI *ebitenui.UI
	// playAgainIn counts down the updates until the play again button shows.
	playAgainIn int
}

type PlaySceneOptions struct {
	Events       queue.Queue[bag.Event]
	View         bag.View
	ScreenWidth  int
	ScreenHeight int
	TPS          int
}

var _ Scene = &PlayScene{}

func NewPlayScene(opts PlaySceneOptions) (Scene, error) {
	if opts.Events == nil {
		return nil, fmt.Errorf("events queue is required")
	}
	if opts.View.SessionID == "" {
		return nil, fmt.Errorf("view has no session")
	}

	root := objects.NewSortedZIndexObject("play-root")
	s := &PlayScene{
		BaseScene: NewBaseScene(root),
		events:    opts.Events,
		tps:       opts.TPS,
		frame:     objects.NewBagFrame(opts.ScreenWidth, opts.ScreenHeight, bagMargin),
		sessionID: opts.View.SessionID,
		root:      root,
		hits:      collisions.NewHitSpace(opts.ScreenWidth, opts.ScreenHeight),
	}

	s.bag = objects.NewBagObject("bag", objects.NewBagObjectOptions{
		Frame:  s.frame,
		TPS:    s.tps,
		ZIndex: 0,
	})
	s.hint = objects.NewTextOverlayObject("hint", objects.NewTextOverlayOptions{
		Y:      float64(opts.ScreenHeight) - bagMargin/2,
		ZIndex: 2,
	})
	for _, c := range opts.View.Cords {
		cord := objects.NewCordObject(fmt.Sprintf("cord-%d", c.ID), objects.NewCordObjectOptions{
			Frame:  s.frame,
			TPS:    s.tps,
			Cord:   c,
			ZIndex: 1,
		})
		s.cords = append(s.cords, cord)
		if !c.Broken {
			x, y, w, h := cord.Bounds()
			s.hits.Add(c.ID, x, y, w, h)
		}
	}
	s.view = opts.View

	return s, nil
}

func (s *PlayScene) Init() error {
	if err := s.root.AddChild(s.bag.GetID(), s.bag); err != nil {
		return fmt.Errorf("failed to add bag: %v", err)
	}
	for _, cord := range s.cords {
		if err := s.root.AddChild(cord.GetID(), cord); err != nil {
			return fmt.Errorf("failed to add cord: %v", err)
		}
	}
	if err := s.root.AddChild(s.hint.GetID(), s.hint); err != nil {
		return fmt.Errorf("failed to add hint: %v", err)
	}
	s.renderUI()

	initial := s.view
	s.view = bag.View{SessionID: s.sessionID}
	return s.Sync(initial)
}

func (s *PlayScene) renderUI() {
	dim := image.NewNineSliceColor(color.NRGBA{R: 0, G: 0, B: 0, A: 0x80})

	mercy := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.NRGBA{R: 255, G: 255, B: 255, A: 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(16),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(24)),
		)),
	)
	mercy.AddChild(newText("最後の1本です…", fonts.NormalFont, textColor))
	mercy.AddChild(newText("チャンスをあげる？", fonts.SmallFont, textColor))
	mercy.AddChild(newButton("も一回初めから (A)", fonts.SmallFont, color.NRGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 255}, lightText, func() {
		s.enqueue(bag.GrantMercy())
	}))
	mercy.AddChild(newButton("無理！！！ (B)", fonts.SmallFont, color.NRGBA{R: 0xb9, G: 0x1c, B: 0x1c, A: 255}, lightText, func() {
		s.enqueue(bag.DenyMercy())
	}))
	s.mercyUI = &ebitenui.UI{
		Container: centered(mercy, dim),
	}

	playAgain := newButton("もう一度やる", fonts.NormalFont, color.NRGBA{R: 0x43, G: 0x14, B: 0x07, A: 255}, lightText, func() {
		s.enqueue(bag.Reset())
	})
	s.playAgainUI = &ebitenui.UI{
		Container: centered(playAgain, nil),
	}
}

func (s *PlayScene) enqueue(e bag.Event) {
	log.Trace("Enqueue %s(%d)", e.Kind, e.Value)
	s.events.Enqueue(e)
}

// SessionID returns the session the scene was built for.
func (s *PlayScene) SessionID() string {
	return s.sessionID
}

func (s *PlayScene) Sync(view bag.View) error {
	if view.SessionID != s.sessionID {
		return fmt.Errorf("play scene for session %s cannot show session %s", s.sessionID, view.SessionID)
	}
	if len(view.Cords) != len(s.cords) {
		return fmt.Errorf("expected %d cords, got %d", len(s.cords), len(view.Cords))
	}

	exploded := view.Phase == bag.PhaseExploded
	for i, c := range view.Cords {
		if err := s.cords[i].Sync(c); err != nil {
			return fmt.Errorf("failed to sync cord: %v", err)
		}
		if c.Broken {
			// snapped cords can no longer be clicked
			s.hits.Remove(c.ID)
		}
		s.cords[i].SetHidden(exploded)
	}
	s.bag.SetState(view.Fusing, exploded)
	s.hint.SetText(hintFor(view))

	if view.ShowPlayAgain && !s.view.ShowPlayAgain {
		s.playAgainIn = animations.Ticks(playAgainDelayMs, s.tps)
	}
	s.view = view
	return nil
}

// hintFor returns the line shown under the bag.
func hintFor(view bag.View) string {
	switch {
	case view.Phase == bag.PhasePlaying && !view.Fusing:
		return fmt.Sprintf("緒をクリックして切ろう（残り%d本）", view.Unbroken())
	case view.Phase == bag.PhaseExploded:
		return "Enter でもう一度"
	}
	return ""
}

func (s *PlayScene) playAgainVisible() bool {
	return s.view.ShowPlayAgain && s.playAgainIn == 0
}

func (s *PlayScene) Update() error {
	switch {
	case s.view.ShowMercy:
		s.mercyUI.Update()
		if input.IsGrantMercyJustPressed() {
			s.enqueue(bag.GrantMercy())
		} else if input.IsDenyMercyJustPressed() {
			s.enqueue(bag.DenyMercy())
		}
	case s.view.ShowPlayAgain:
		if s.playAgainIn > 0 {
			s.playAgainIn--
			break
		}
		s.playAgainUI.Update()
		if input.IsPositiveJustPressed() {
			s.enqueue(bag.Reset())
		}
	case s.view.Phase == bag.PhasePlaying && !s.view.Fusing:
		s.handleCordInput()
	}
	return s.BaseScene.Update()
}

func (s *PlayScene) handleCordInput() {
	if s.hits.Len() == 0 {
		return
	}
	for _, p := range input.JustPressedPositions() {
		if id, ok := s.hits.At(float64(p.X), float64(p.Y)); ok {
			s.enqueue(bag.ClickCord(id))
		}
	}
	if i, ok := input.DigitJustPressed(); ok && i < len(s.view.Cords) && !s.view.Cords[i].Broken {
		s.enqueue(bag.ClickCord(s.cords[i].CordID()))
	}
}

func (s *PlayScene) Destroy() error {
	s.hits.Clear()
	return s.BaseScene.Destroy()
}

func (s *PlayScene) Draw(screen *ebiten.Image) {
	s.BaseScene.Draw(screen)
	if s.view.ShowMercy {
		s.mercyUI.Draw(screen)
	}
	if s.playAgainVisible() {
		s.playAgainUI.Draw(screen)
	}
}
