package terminal

import (
	"fmt"
	"strings"
	"time"

	"github.com/cbodonnell/patiencebag/pkg/bag"
	"github.com/cbodonnell/patiencebag/pkg/log"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TickInterval is how often the scheduler clock advances.
const TickInterval = 50 * time.Millisecond

type tickMsg time.Time

// Model is the bubbletea model of the terminal client.
type Model struct {
	controller *bag.Controller
	scheduler  *bag.TickScheduler
	styles     Styles

	quitting bool
}

var _ tea.Model = Model{}

type NewModelOptions struct {
	Controller *bag.Controller
	Scheduler  *bag.TickScheduler
}

func NewModel(opts NewModelOptions) (Model, error) {
	if opts.Controller == nil {
		return Model{}, fmt.Errorf("controller is required")
	}
	if opts.Scheduler == nil {
		return Model{}, fmt.Errorf("scheduler is required")
	}
	return Model{
		controller: opts.Controller,
		scheduler:  opts.Scheduler,
		styles:     DefaultStyles(),
	}, nil
}

func tick() tea.Cmd {
	return tea.Tick(TickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.scheduler.Advance(TickInterval)
		return m, tick()
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.String() == "q" {
			m.quitting = true
			return m, tea.Quit
		}
		e, ok := m.eventFor(msg)
		if !ok {
			return m, nil
		}
		if err := m.controller.Dispatch(e); err != nil {
			log.Debug("Ignored %s event: %v", e.Kind, err)
		}
	}
	return m, nil
}

// eventFor maps a key to the controller event it means in the current phase.
func (m Model) eventFor(msg tea.KeyMsg) (bag.Event, bool) {
	view := m.controller.View()
	key := msg.String()

	if msg.Type == tea.KeyEsc {
		return bag.Abandon(), view.Phase != bag.PhaseStart
	}

	switch view.Phase {
	case bag.PhaseStart:
		if i, ok := digit(key); ok && i < len(view.Difficulties) {
			return bag.Choose(view.Difficulties[i]), true
		}
	case bag.PhasePlaying:
		// only intact cords are drawn with a number
		if i, ok := digit(key); ok && !view.Fusing && i < len(view.Cords) && !view.Cords[i].Broken {
			return bag.ClickCord(view.Cords[i].ID), true
		}
	case bag.PhaseMercyCheck:
		switch strings.ToLower(key) {
		case "a":
			return bag.GrantMercy(), true
		case "b":
			return bag.DenyMercy(), true
		}
	case bag.PhaseExploded:
		if msg.Type == tea.KeyEnter || key == "r" {
			return bag.Reset(), true
		}
	}
	return bag.Event{}, false
}

// digit returns the zero-based index of the keys 1-9.
func digit(key string) (int, bool) {
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return 0, false
	}
	return int(key[0] - '1'), true
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	view := m.controller.View()

	var body string
	if view.SessionID == "" {
		body = m.startView(view)
	} else {
		body = m.playView(view)
	}
	return body + "\n"
}

func (m Model) startView(view bag.View) string {
	options := make([]string, 0, len(view.Difficulties))
	for i, n := range view.Difficulties {
		options = append(options, m.styles.Highlighted.Render(fmt.Sprintf("[%d] %d本", i+1, n)))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render("堪忍袋の緒"),
		m.styles.Text.Render("イライラが溜まっていませんか？"),
		m.styles.Text.Render("緒（ひも）の本数を選んでください。"),
		"",
		strings.Join(options, " "),
		m.styles.Help.Render("数字キーで選択 ・ q で終了"),
	)
}

func (m Model) playView(view bag.View) string {
	if view.Phase == bag.PhaseExploded {
		return lipgloss.JoinVertical(lipgloss.Center,
			m.styles.Boom.Render("BOOM!"),
			m.styles.Help.Render("Enter / r でもう一度 ・ Esc で戻る"),
		)
	}

	lines := []string{m.styles.Text.Render("堪忍袋")}
	for _, c := range view.Cords {
		if c.Broken {
			lines = append(lines, "  "+m.styles.CordBroken.Render("━━━╲  ╱━━━")+" "+m.styles.Word.Render(c.Word))
		} else {
			lines = append(lines, fmt.Sprintf("%d ", c.ID+1)+m.styles.CordIntact.Render("━━━━━━━━━━"))
		}
	}
	if view.Fusing {
		lines = append(lines, m.styles.Fuse.Render("……！"))
	}
	out := m.styles.Bag.Render(strings.Join(lines, "\n"))

	if view.ShowMercy {
		mercy := lipgloss.JoinVertical(lipgloss.Center,
			m.styles.Title.Render("最後の1本です…"),
			m.styles.Text.Render("チャンスをあげる？"),
			"",
			m.styles.Highlighted.Render("も一回初めから (A)")+"  "+m.styles.Highlighted.Render("無理！！！ (B)"),
		)
		out = lipgloss.JoinVertical(lipgloss.Left, out, m.styles.Mercy.Render(mercy))
	}

	help := fmt.Sprintf("数字キーで緒を切る（残り%d本）・ Esc で戻る", view.Unbroken())
	return lipgloss.JoinVertical(lipgloss.Left, out, m.styles.Help.Render(help))
}
