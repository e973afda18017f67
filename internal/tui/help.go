package tui

import (
	"fmt"
	"strings"

	"fitflow/internal/player"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModel is the help screen model
type HelpModel struct{}

// NewHelpModel creates a new help model
func NewHelpModel() HelpModel {
	return HelpModel{}
}

// Init initializes the help screen
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the help screen
func (m HelpModel) View() string {
	var sections []string

	sections = append(sections, cardTitleStyle.Render("Keyboard Shortcuts"))

	sections = append(sections, m.renderSection("Navigation", []keyHelp{
		{"1", "Dashboard"},
		{"2", "Weekly plan"},
		{"3", "Focus areas"},
		{"4", "Progress"},
		{"5", "AI coach"},
		{"?", "Help (this screen)"},
		{"q", "Quit"},
		{"esc", "Back / close help"},
	}))

	sections = append(sections, m.renderSection("Dashboard", []keyHelp{
		{"enter", "Start today's workout"},
		{"s", "Quick start"},
		{"r", "Refresh"},
	}))

	sections = append(sections, m.renderSection("Plan and Focus Areas", []keyHelp{
		{"← / →", "Previous / next week"},
		{"↑ / ↓", "Move cursor"},
		{"enter", "Start the selected workout"},
	}))

	sections = append(sections, m.renderSection("Workout Player", []keyHelp{
		{"space", "Pause / resume the countdown"},
		{"→ / n / enter", "Next, or Done for rep exercises"},
		{"← / p", "Back"},
		{"x / esc", "Exit without saving"},
	}))

	sections = append(sections, m.renderSection("Progress", []keyHelp{
		{"w", "Log weight (kg)"},
		{"h", "Set height (cm)"},
		{"b / a", "Add before / after photo"},
	}))

	sections = append(sections, m.renderSection("Coach", []keyHelp{
		{"i", "Type a question"},
		{"a-d", "Ask a quick question"},
		{"↑ / ↓", "Scroll the answer"},
	}))

	sections = append(sections, m.renderWorkoutHelp())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

type keyHelp struct {
	key  string
	desc string
}

func (m HelpModel) renderSection(title string, keys []keyHelp) string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, sectionStyle.Render(title))

	for _, k := range keys {
		lines = append(lines, "  "+RenderKeyHelp(k.key, k.desc))
	}

	return strings.Join(lines, "\n")
}

func (m HelpModel) renderWorkoutHelp() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, sectionStyle.Render("How Workouts Work"))
	lines = append(lines, "")

	topics := []struct {
		name string
		desc string
	}{
		{"Sets", "Every exercise is done twice, so a workout's calories count each exercise twice."},
		{"Timed exercises", "The countdown starts paused. When it reaches zero you move to rest."},
		{"Rep exercises", "Do the reps at your own pace, then press Done."},
		{"Rest", fmt.Sprintf("%d seconds between exercises. The last rest finishes the workout.", player.RestDuration)},
		{"BMI", "Weight (kg) divided by height (m) squared, from your latest weigh-in."},
	}

	for _, t := range topics {
		lines = append(lines, "  "+helpKeyStyle.Render(t.name))
		lines = append(lines, "  "+mutedStyle.Render(t.desc))
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}
