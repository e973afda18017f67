package tui

import (
	"fmt"

	"fitflow/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// FocusModel lists the targeted muscle-group workouts
type FocusModel struct {
	cards  []service.WorkoutCard
	cursor int
}

// NewFocusModel creates a new focus areas model
func NewFocusModel(qs *service.QueryService) FocusModel {
	return FocusModel{cards: qs.GetFocusWorkouts()}
}

// Init initializes the focus screen
func (m FocusModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m FocusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.cards)-1 {
			m.cursor++
		}
	case "enter":
		if m.cursor < len(m.cards) {
			return m, startWorkout(m.cards[m.cursor].Workout)
		}
	}
	return m, nil
}

// View renders the focus screen
func (m FocusModel) View() string {
	if len(m.cards) == 0 {
		return "\n  No focus workouts available."
	}

	var rows []string
	for i, c := range m.cards {
		label := fmt.Sprintf("%-20s %2d exercises  %9s  %s",
			c.Workout.Title, c.Exercises, formatCalories(c.Workout.TotalCalories), formatMuscleGroups(c.MuscleGroups))
		rows = append(rows, RenderListItem(label, i == m.cursor))
	}

	list := cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		cardTitleStyle.Render("Focus Areas"),
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	))

	selected := m.cards[m.cursor].Workout
	detail := []string{cardTitleStyle.Render(selected.Title)}
	for _, ex := range selected.Exercises {
		detail = append(detail, "  "+formatExercise(ex))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		list,
		cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, detail...)),
		statusStyle.Render("↑/↓ to choose, enter to start"),
	)
}
