package tui

import (
	"fmt"

	"fitflow/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// PlanModel shows the weekly plan for the user's level
type PlanModel struct {
	queryService *service.QueryService
	tracker      *service.Tracker
	weeks        []service.PlanWeek
	week         int // index into weeks
	cursor       int // day within the week
	loading      bool
	err          error
}

// NewPlanModel creates a new plan model
func NewPlanModel(qs *service.QueryService, tracker *service.Tracker) PlanModel {
	return PlanModel{
		queryService: qs,
		tracker:      tracker,
		loading:      true,
	}
}

// Init initializes the plan screen
func (m PlanModel) Init() tea.Cmd {
	return m.loadPlan()
}

type planLoadedMsg struct {
	weeks []service.PlanWeek
	err   error
}

func (m PlanModel) loadPlan() tea.Cmd {
	qs, snap := m.queryService, m.tracker.Snapshot()
	return func() tea.Msg {
		weeks, err := qs.GetPlan(snap)
		return planLoadedMsg{weeks: weeks, err: err}
	}
}

// Update handles messages
func (m PlanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case planLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.weeks = msg.weeks
		if m.week >= len(m.weeks) {
			m.week = 0
		}

	case tea.KeyMsg:
		if len(m.weeks) == 0 {
			return m, nil
		}
		days := m.weeks[m.week].Plan.DailyWorkouts

		switch msg.String() {
		case "left", "h":
			if m.week > 0 {
				m.week--
				m.cursor = 0
			}
		case "right", "l":
			if m.week < len(m.weeks)-1 {
				m.week++
				m.cursor = 0
			}
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(days)-1 {
				m.cursor++
			}
		case "enter":
			if m.cursor < len(days) && !days[m.cursor].IsRestDay {
				return m, startWorkout(days[m.cursor].Workout)
			}
		}
	}
	return m, nil
}

// View renders the plan screen
func (m PlanModel) View() string {
	if m.loading {
		return "\n  Loading plan..."
	}
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}
	if len(m.weeks) == 0 {
		return "\n  No plan available for this level."
	}

	var sections []string
	sections = append(sections, m.renderWeekTabs())

	week := m.weeks[m.week]
	summary := week.Summary

	header := lipgloss.JoinVertical(lipgloss.Left,
		cardTitleStyle.Render(fmt.Sprintf("Week %d", week.Plan.Week)),
		RenderMetric("Target Calories", formatCalories(summary.TotalCalories), ""),
	)

	if !summary.Authored {
		body := lipgloss.JoinVertical(lipgloss.Left, header, "",
			warningStyle.Render(fmt.Sprintf("The %s week is coming soon. Keep going with the weeks before it!", humanize.Ordinal(week.Plan.Week))))
		sections = append(sections, cardStyle.Render(body))
		sections = append(sections, statusStyle.Render("←/→ to switch weeks"))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	header = lipgloss.JoinVertical(lipgloss.Left, header,
		RenderMetric("Workout Days", fmt.Sprintf("%d", summary.WorkoutDays), ""),
		RenderMetric("Rest Days", fmt.Sprintf("%d", summary.RestDays), ""),
		RenderMetric("Muscle Groups", formatMuscleGroups(summary.MuscleGroups), ""),
	)

	var days []string
	for i, d := range week.Plan.DailyWorkouts {
		label := fmt.Sprintf("Day %d  ", d.Day)
		if d.IsRestDay {
			label += "Rest Day"
		} else {
			label += fmt.Sprintf("%-24s %s", d.Workout.Title, formatCalories(d.Workout.TotalCalories))
		}
		days = append(days, RenderListItem(label, i == m.cursor))
	}

	sections = append(sections, cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, "", lipgloss.JoinVertical(lipgloss.Left, days...))))

	if m.cursor < len(week.Plan.DailyWorkouts) {
		sections = append(sections, m.renderDayDetail(week.Plan.DailyWorkouts[m.cursor].Day))
	}

	sections = append(sections, statusStyle.Render("←/→ week, ↑/↓ day, enter to start the selected workout"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m PlanModel) renderWeekTabs() string {
	var tabs []string
	for i, w := range m.weeks {
		label := fmt.Sprintf("Week %d", w.Plan.Week)
		if i == m.week {
			tabs = append(tabs, navActiveStyle.Render("["+label+"]"))
		} else {
			tabs = append(tabs, navInactiveStyle.Render(" "+label+" "))
		}
	}
	return navStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

func (m PlanModel) renderDayDetail(day int) string {
	d := m.weeks[m.week].Plan.DailyWorkouts[m.cursor]
	if d.IsRestDay {
		return cardStyle.Render(mutedStyle.Render(fmt.Sprintf("Day %d is for recovery. Stretch and rest up.", day)))
	}

	lines := []string{cardTitleStyle.Render(d.Workout.Title)}
	for _, ex := range d.Workout.Exercises {
		lines = append(lines, "  "+formatExercise(ex))
	}
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
