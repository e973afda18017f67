package tui

import (
	"fitflow/internal/catalog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type onboardingStep int

const (
	stepLevel onboardingStep = iota
	stepGoal
	stepConfirm
)

var levelDescriptions = map[catalog.FitnessLevel]string{
	catalog.Beginner:     "New to working out or coming back after a break",
	catalog.Intermediate: "Training a few times a week already",
	catalog.Advanced:     "Comfortable with high intensity sessions",
}

var goalDescriptions = map[catalog.FitnessGoal]string{
	catalog.WeightLoss: "Burn calories and lean out",
	catalog.MuscleGain: "Build strength and size",
	catalog.FullBody:   "Balanced conditioning for everything",
}

// OnboardingModel picks the fitness level and goal
type OnboardingModel struct {
	step   onboardingStep
	cursor int
	level  catalog.FitnessLevel
	goal   catalog.FitnessGoal
}

// NewOnboardingModel creates a new onboarding model
func NewOnboardingModel() OnboardingModel {
	return OnboardingModel{}
}

// Init initializes the onboarding screen
func (m OnboardingModel) Init() tea.Cmd {
	return nil
}

func (m OnboardingModel) options() int {
	switch m.step {
	case stepLevel:
		return len(catalog.Levels())
	case stepGoal:
		return len(catalog.Goals())
	}
	return 0
}

// Update handles messages
func (m OnboardingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
		if m.cursor < m.options()-1 {
			m.cursor++
		}
	case "esc", "backspace":
		switch m.step {
		case stepGoal:
			m.step = stepLevel
			m.cursor = int(m.level)
		case stepConfirm:
			m.step = stepGoal
			m.cursor = int(m.goal)
		}
	case "enter":
		switch m.step {
		case stepLevel:
			m.level = catalog.Levels()[m.cursor]
			m.step = stepGoal
			m.cursor = 0
		case stepGoal:
			m.goal = catalog.Goals()[m.cursor]
			m.step = stepConfirm
			m.cursor = 0
		case stepConfirm:
			done := OnboardedMsg{Level: m.level, Goal: m.goal}
			return m, func() tea.Msg { return done }
		}
	}
	return m, nil
}

// View renders the onboarding screen
func (m OnboardingModel) View() string {
	var sections []string

	switch m.step {
	case stepLevel:
		sections = append(sections, cardTitleStyle.Render("What's your fitness level?"))
		for i, level := range catalog.Levels() {
			sections = append(sections, RenderListItem(level.String(), i == m.cursor))
			sections = append(sections, mutedStyle.Render("    "+levelDescriptions[level]))
		}
		sections = append(sections, statusStyle.Render("↑/↓ to choose, enter to continue"))

	case stepGoal:
		sections = append(sections, cardTitleStyle.Render("What's your main goal?"))
		for i, goal := range catalog.Goals() {
			sections = append(sections, RenderListItem(goal.String(), i == m.cursor))
			sections = append(sections, mutedStyle.Render("    "+goalDescriptions[goal]))
		}
		sections = append(sections, statusStyle.Render("↑/↓ to choose, enter to continue, esc to go back"))

	case stepConfirm:
		sections = append(sections, cardTitleStyle.Render("You're all set"))
		sections = append(sections, RenderMetric("Level", m.level.String(), ""))
		sections = append(sections, RenderMetric("Goal", m.goal.String(), ""))
		if w := catalog.NextWorkout(m.level); w != nil {
			sections = append(sections, "", mutedStyle.Render("Your first workout: "+w.Title))
		}
		sections = append(sections, statusStyle.Render("enter to start your journey, esc to go back"))
	}

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}
