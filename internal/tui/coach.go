package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fitflow/internal/coach"
	"fitflow/internal/service"
	"fitflow/internal/store"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

const quickPromptKeys = "abcd"

// TipAsker fetches a tip. The coach client satisfies it.
type TipAsker interface {
	RequestTip(ctx context.Context, question string) string
}

// tipMsg carries an answer tagged with the request it belongs to
type tipMsg struct {
	seq      uint64
	question string
	answer   string
}

type recentTipsMsg struct {
	tips []store.TipExchange
	err  error
}

// CoachModel asks the tip service questions
type CoachModel struct {
	client       TipAsker
	tracker      *service.Tracker
	queryService *service.QueryService

	input    textinput.Model
	spinner  spinner.Model
	viewport viewport.Model
	seq      coach.Sequencer

	question string
	answer   string
	loading  bool
	recent   []store.TipExchange

	now func() time.Time
}

// NewCoachModel creates a new coach model
func NewCoachModel(client TipAsker, tracker *service.Tracker, qs *service.QueryService, width, height int) CoachModel {
	ti := textinput.New()
	ti.Placeholder = "Ask your AI coach anything about fitness..."
	ti.CharLimit = 300
	ti.Width = 60
	ti.Prompt = "> "

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(primaryColor)

	m := CoachModel{
		client:       client,
		tracker:      tracker,
		queryService: qs,
		input:        ti,
		spinner:      sp,
		viewport:     viewport.New(80, 8),
		now:          time.Now,
	}
	m.resize(width, height)
	return m
}

// Init initializes the coach screen
func (m CoachModel) Init() tea.Cmd {
	return m.loadRecent
}

func (m CoachModel) loadRecent() tea.Msg {
	tips, err := m.queryService.GetRecentTips()
	return recentTipsMsg{tips: tips, err: err}
}

// Capturing reports whether keystrokes belong to the text input
func (m CoachModel) Capturing() bool {
	return m.input.Focused()
}

func (m *CoachModel) resize(width, height int) {
	if width > 0 {
		m.viewport.Width = width - 6
	}
	if height > 0 {
		m.viewport.Height = max(height/3, 5)
	}
}

// ask starts a request. Older requests still in flight become stale.
func (m CoachModel) ask(question string) (CoachModel, tea.Cmd) {
	question = strings.TrimSpace(question)
	if question == "" {
		return m, nil
	}

	seq := m.seq.Next()
	m.question = question
	m.answer = ""
	m.loading = true
	m.viewport.SetContent("")

	client := m.client
	fetch := func() tea.Msg {
		return tipMsg{seq: seq, question: question, answer: client.RequestTip(context.Background(), question)}
	}
	return m, tea.Batch(m.spinner.Tick, fetch)
}

// Update handles messages
func (m CoachModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tipMsg:
		if !m.seq.IsLatest(msg.seq) {
			return m, nil
		}
		m.loading = false
		m.answer = msg.answer
		m.viewport.SetContent(lipgloss.NewStyle().Width(m.viewport.Width).Render(msg.answer))
		m.viewport.GotoTop()
		m.tracker.RecordTip(msg.question, msg.answer, m.now())
		return m, m.loadRecent

	case recentTipsMsg:
		if msg.err == nil {
			m.recent = msg.tips
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.input.Focused() {
			switch msg.String() {
			case "esc":
				m.input.Blur()
				return m, nil
			case "enter":
				question := m.input.Value()
				m.input.Reset()
				m.input.Blur()
				return m.ask(question)
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}

		key := msg.String()
		if key == "i" || key == "/" {
			return m, m.input.Focus()
		}
		if len(key) == 1 {
			if i := strings.Index(quickPromptKeys, key); i >= 0 && i < len(coach.QuickPrompts) {
				return m.ask(coach.QuickPrompts[i])
			}
		}

		// Remaining keys scroll the answer
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the coach screen
func (m CoachModel) View() string {
	var sections []string

	sections = append(sections, cardTitleStyle.Render("AI Fitness Coach"))
	sections = append(sections, m.input.View())

	var prompts []string
	for i, q := range coach.QuickPrompts {
		if i >= len(quickPromptKeys) {
			break
		}
		prompts = append(prompts, RenderKeyHelp(string(quickPromptKeys[i]), q))
	}
	sections = append(sections, "", sectionStyle.Render("Quick questions"), strings.Join(prompts, "\n"))

	switch {
	case m.loading:
		sections = append(sections, "", m.spinner.View()+" Thinking about: "+m.question)
	case m.answer != "":
		sections = append(sections, "", sectionStyle.Render(m.question), cardStyle.Render(m.viewport.View()))
	}

	if len(m.recent) > 0 {
		sections = append(sections, "", sectionStyle.Render("Earlier questions"))
		for _, t := range m.recent {
			sections = append(sections, mutedStyle.Render(fmt.Sprintf("  %s  %s", truncateName(t.Prompt, 50), humanize.Time(t.AskedAt))))
		}
	}

	help := "Press 'i' to type a question, a-d for quick questions, ↑/↓ to scroll"
	if m.input.Focused() {
		help = "enter to ask, esc to stop typing"
	}
	sections = append(sections, statusStyle.Render(help))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
