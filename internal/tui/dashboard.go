package tui

import (
	"fmt"
	"strings"
	"time"

	"fitflow/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/guptarohit/asciigraph"
)

// DashboardModel is the dashboard screen model
type DashboardModel struct {
	queryService *service.QueryService
	tracker      *service.Tracker
	data         *service.DashboardData
	loading      bool
	err          error
	now          func() time.Time
}

// NewDashboardModel creates a new dashboard model
func NewDashboardModel(qs *service.QueryService, tracker *service.Tracker) DashboardModel {
	return DashboardModel{
		queryService: qs,
		tracker:      tracker,
		loading:      true,
		now:          time.Now,
	}
}

// Init initializes the dashboard
func (m DashboardModel) Init() tea.Cmd {
	return m.loadData()
}

// loadData takes the profile snapshot here, on the event loop. The
// returned command reads only the copy and the journal.
func (m DashboardModel) loadData() tea.Cmd {
	qs, snap, now := m.queryService, m.tracker.Snapshot(), m.now()
	return func() tea.Msg {
		data, err := qs.GetDashboardData(snap, now)
		if err != nil {
			return dashboardDataMsg{err: err}
		}
		return dashboardDataMsg{data: data}
	}
}

type dashboardDataMsg struct {
	data *service.DashboardData
	err  error
}

// Update handles messages
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardDataMsg:
		m.loading = false
		m.err = msg.err
		m.data = msg.data
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.loading = true
			return m, m.loadData()
		case "enter":
			if m.data != nil && m.data.Next != nil {
				return m, startWorkout(m.data.Next.Workout)
			}
		case "s":
			if m.data != nil && m.data.QuickStart != nil {
				return m, startWorkout(m.data.QuickStart.Workout)
			}
		}
	}
	return m, nil
}

// View renders the dashboard
func (m DashboardModel) View() string {
	if m.loading {
		return "\n  Loading dashboard..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if m.data == nil {
		return "\n  No data available."
	}

	var sections []string

	// Top row: profile and totals side by side
	topRow := lipgloss.JoinHorizontal(lipgloss.Top, m.renderProfileCard(), "  ", m.renderTotalsCard())
	sections = append(sections, topRow)

	// Workout cards
	var cards []string
	if m.data.Next != nil {
		cards = append(cards, renderWorkoutCard("Today's Workout", *m.data.Next, "enter"), "  ")
	}
	if m.data.QuickStart != nil {
		cards = append(cards, renderWorkoutCard("Quick Start", *m.data.QuickStart, "s"))
	}
	if len(cards) > 0 {
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	sections = append(sections, m.renderChart())
	sections = append(sections, m.renderRecentWorkouts())

	help := statusStyle.Render("Press 'enter' to start today's workout, 's' for quick start, 'r' to refresh")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m DashboardModel) renderProfileCard() string {
	title := cardTitleStyle.Render("Your Plan")

	lines := []string{
		RenderMetric("Level", m.data.Level.String(), ""),
		RenderMetric("Goal", m.data.Goal.String(), ""),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(38).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m DashboardModel) renderTotalsCard() string {
	title := cardTitleStyle.Render("Totals")

	lines := []string{
		RenderMetric("Calories Burned", formatCalories(m.data.Totals.TotalCalories), ""),
		RenderMetric("Workouts Done", humanize.Comma(int64(m.data.Totals.TotalWorkouts)), ""),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(38).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func renderWorkoutCard(heading string, card service.WorkoutCard, key string) string {
	title := cardTitleStyle.Render(heading)

	lines := []string{
		metricValueStyle.Render(card.Workout.Title),
		mutedStyle.Render(fmt.Sprintf("%d exercises · %s", card.Exercises, formatCalories(card.Workout.TotalCalories))),
		mutedStyle.Render(formatMuscleGroups(card.MuscleGroups)),
		"",
		RenderKeyHelp(key, "start"),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(38).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m DashboardModel) renderChart() string {
	title := cardTitleStyle.Render(fmt.Sprintf("Calories - Last %d Days", len(m.data.DailyCalories)))

	total := 0.0
	for _, v := range m.data.DailyCalories {
		total += v
	}
	if total == 0 {
		return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, "No workouts this week yet"))
	}

	graph := asciigraph.Plot(m.data.DailyCalories,
		asciigraph.Height(6),
		asciigraph.Width(len(m.data.DailyCalories)*8),
		asciigraph.Precision(0),
		asciigraph.Caption(strings.Join(m.data.DailyLabels, " ")),
	)

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, graph))
}

func (m DashboardModel) renderRecentWorkouts() string {
	title := cardTitleStyle.Render("Recent Workouts")

	if len(m.data.RecentCompletions) == 0 {
		return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, "No workouts completed yet"))
	}

	var rows []string
	for _, c := range m.data.RecentCompletions {
		rows = append(rows, itemStyle.Render(fmt.Sprintf("%-24s  %10s  %s",
			truncateName(c.Title, 24),
			formatCalories(c.Calories),
			mutedStyle.Render(humanize.Time(c.CompletedAt)),
		)))
	}

	table := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, table))
}
