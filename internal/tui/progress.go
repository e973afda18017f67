package tui

import (
	"fmt"
	"time"

	"fitflow/internal/analysis"
	"fitflow/internal/profile"
	"fitflow/internal/service"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/guptarohit/asciigraph"
)

type progressInput int

const (
	inputNone progressInput = iota
	inputWeight
	inputHeight
	inputBeforePhoto
	inputAfterPhoto
)

var inputPrompts = map[progressInput]string{
	inputWeight:      "Weight (kg): ",
	inputHeight:      "Height (cm): ",
	inputBeforePhoto: "Before photo path: ",
	inputAfterPhoto:  "After photo path: ",
}

// ProgressModel shows body metrics and lets the user log measurements
type ProgressModel struct {
	queryService *service.QueryService
	tracker      *service.Tracker
	data         *service.ProgressData
	loading      bool
	err          error

	input  textinput.Model
	mode   progressInput
	notice string
	failed bool

	now func() time.Time
}

// NewProgressModel creates a new progress model
func NewProgressModel(qs *service.QueryService, tracker *service.Tracker) ProgressModel {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 40

	return ProgressModel{
		queryService: qs,
		tracker:      tracker,
		loading:      true,
		input:        ti,
		now:          time.Now,
	}
}

// Init initializes the progress screen
func (m ProgressModel) Init() tea.Cmd {
	return m.loadData()
}

type progressDataMsg struct {
	data *service.ProgressData
	err  error
}

// loadData snapshots the profile on the event loop; the command only sees
// the copy
func (m ProgressModel) loadData() tea.Cmd {
	qs, snap := m.queryService, m.tracker.Snapshot()
	return func() tea.Msg {
		data, err := qs.GetProgressData(snap)
		return progressDataMsg{data: data, err: err}
	}
}

// Capturing reports whether keystrokes belong to the text input
func (m ProgressModel) Capturing() bool {
	return m.mode != inputNone
}

// Update handles messages
func (m ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressDataMsg:
		m.loading = false
		m.err = msg.err
		m.data = msg.data
		return m, nil

	case tea.KeyMsg:
		if m.mode != inputNone {
			return m.updateInput(msg)
		}

		switch msg.String() {
		case "w":
			return m.openInput(inputWeight)
		case "h":
			return m.openInput(inputHeight)
		case "b":
			return m.openInput(inputBeforePhoto)
		case "a":
			return m.openInput(inputAfterPhoto)
		case "r":
			m.loading = true
			return m, m.loadData()
		}
	}

	if m.mode != inputNone {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m ProgressModel) openInput(mode progressInput) (tea.Model, tea.Cmd) {
	m.mode = mode
	m.notice = ""
	m.input.Reset()
	m.input.Prompt = inputPrompts[mode]
	return m, m.input.Focus()
}

func (m ProgressModel) closeInput() ProgressModel {
	m.mode = inputNone
	m.input.Blur()
	m.input.Reset()
	return m
}

func (m ProgressModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.closeInput(), nil
	case "enter":
		return m.submit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit applies the input. Invalid numbers leave the profile untouched.
func (m ProgressModel) submit() (tea.Model, tea.Cmd) {
	value := m.input.Value()
	mode := m.mode
	m = m.closeInput()

	var err error
	ok := true
	switch mode {
	case inputWeight:
		ok, err = m.tracker.LogWeight(value, m.now())
	case inputHeight:
		ok, err = m.tracker.UpdateHeight(value)
	case inputBeforePhoto:
		err = m.tracker.AttachPhoto(profile.SlotBefore, value)
	case inputAfterPhoto:
		err = m.tracker.AttachPhoto(profile.SlotAfter, value)
	}

	switch {
	case err != nil:
		m.notice, m.failed = fmt.Sprintf("Could not save: %v", err), true
		return m, nil
	case !ok:
		m.notice, m.failed = "Please enter a positive number", true
		return m, nil
	}

	m.notice, m.failed = "Saved", false
	m.loading = true
	return m, m.loadData()
}

// View renders the progress screen
func (m ProgressModel) View() string {
	if m.loading && m.data == nil {
		return "\n  Loading progress..."
	}
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}
	if m.data == nil {
		return "\n  No data available."
	}

	var sections []string

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, m.renderBodyCard(), "  ", m.renderTotalsCard())
	sections = append(sections, topRow)
	sections = append(sections, m.renderWeightChart())
	sections = append(sections, m.renderPhotos())

	if m.mode != inputNone {
		sections = append(sections, cardStyle.Render(m.input.View()+"\n"+mutedStyle.Render("enter to save, esc to cancel")))
	}
	if m.notice != "" {
		style := successStyle
		if m.failed {
			style = errorStyle
		}
		sections = append(sections, style.Render(m.notice))
	}

	help := statusStyle.Render("Press 'w' to log weight, 'h' to set height, 'b'/'a' for before/after photos")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m ProgressModel) renderBodyCard() string {
	title := cardTitleStyle.Render("Body")

	weight := "-"
	if m.data.HasWeight {
		weight = fmt.Sprintf("%.1f kg", m.data.CurrentWeight)
	}

	change := ""
	if m.data.HasChange {
		change = fmt.Sprintf("%+.1f kg", m.data.WeightChange)
	}

	bmi := analysis.CategoryUnknown
	if m.data.BMI.Known() {
		bmi = fmt.Sprintf("%.1f", m.data.BMI.BMI)
	}

	lines := []string{
		RenderMetric("Weight", weight, change),
		RenderMetric("Height", fmt.Sprintf("%.0f cm", m.data.Height), ""),
		RenderMetric("BMI", bmi, ""),
		RenderMetric("Category", m.data.BMI.Category, ""),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(38).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m ProgressModel) renderTotalsCard() string {
	title := cardTitleStyle.Render("Activity")

	lines := []string{
		RenderMetric("Calories Burned", formatCalories(m.data.Totals.TotalCalories), ""),
		RenderMetric("Workouts Done", humanize.Comma(int64(m.data.Totals.TotalWorkouts)), ""),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(38).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m ProgressModel) renderWeightChart() string {
	title := cardTitleStyle.Render("Weight History")

	series := m.data.WeightSeries
	if len(series) < 2 {
		return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title,
			"Log your weight at least twice to see a chart"))
	}

	caption := series[0].Label + " - " + series[len(series)-1].Label
	graph := asciigraph.Plot(analysis.Weights(series),
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Precision(1),
		asciigraph.Caption(caption),
	)

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, graph))
}

func (m ProgressModel) renderPhotos() string {
	title := cardTitleStyle.Render("Progress Photos")

	slot := func(set bool) string {
		if set {
			return successStyle.Render("added")
		}
		return mutedStyle.Render("not added")
	}

	lines := []string{
		RenderMetric("Before", slot(m.data.HasBeforePhoto), ""),
		RenderMetric("After", slot(m.data.HasAfterPhoto), ""),
	}

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, lipgloss.JoinVertical(lipgloss.Left, lines...)))
}
