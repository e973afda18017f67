package tui

import (
	"fmt"
	"time"

	"fitflow/internal/service"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
)

// Screen identifiers
type Screen int

const (
	ScreenOnboarding Screen = iota
	ScreenDashboard
	ScreenPlan
	ScreenFocus
	ScreenProgress
	ScreenCoach
	ScreenPlayer
	ScreenHelp
)

// App is the root Bubble Tea model
type App struct {
	screen     Screen
	prevScreen Screen // restored when help closes
	backScreen Screen // restored when a workout is exited

	// Screen models
	onboarding OnboardingModel
	dashboard  DashboardModel
	plan       PlanModel
	focus      FocusModel
	progress   ProgressModel
	coach      CoachModel
	player     PlayerModel
	help       HelpModel

	// Services
	tracker      *service.Tracker
	queryService *service.QueryService
	tips         TipAsker
	log          logrus.FieldLogger

	// Window dimensions
	width  int
	height int

	// Status message
	status string

	now func() time.Time
}

// NewApp creates a new App with all dependencies. The user starts at
// onboarding.
func NewApp(tracker *service.Tracker, queryService *service.QueryService, tips TipAsker, log logrus.FieldLogger) *App {
	return &App{
		screen:       ScreenOnboarding,
		tracker:      tracker,
		queryService: queryService,
		tips:         tips,
		log:          log,
		onboarding:   NewOnboardingModel(),
		coach:        NewCoachModel(tips, tracker, queryService, 0, 0),
		help:         NewHelpModel(),
		now:          time.Now,
	}
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	return a.onboarding.Init()
}

// Screen returns the active screen
func (a *App) Screen() Screen {
	return a.screen
}

// capturing reports whether the active screen wants raw keystrokes
func (a *App) capturing() bool {
	switch a.screen {
	case ScreenOnboarding, ScreenPlayer:
		return true
	case ScreenProgress:
		return a.progress.Capturing()
	case ScreenCoach:
		return a.coach.Capturing()
	}
	return false
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if !a.capturing() {
			switch msg.String() {
			case "q":
				return a, tea.Quit
			case "1":
				return a, a.open(ScreenDashboard)
			case "2":
				return a, a.open(ScreenPlan)
			case "3":
				return a, a.open(ScreenFocus)
			case "4":
				return a, a.open(ScreenProgress)
			case "5":
				return a, a.open(ScreenCoach)
			case "?":
				if a.screen != ScreenHelp {
					a.prevScreen = a.screen
					a.screen = ScreenHelp
				}
				return a, nil
			case "esc":
				if a.screen == ScreenHelp {
					a.screen = a.prevScreen
					return a, nil
				}
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		m, cmd := a.coach.Update(msg)
		a.coach = m.(CoachModel)
		return a, cmd

	case OnboardedMsg:
		a.tracker.Onboard(msg.Level, msg.Goal)
		return a, a.open(ScreenDashboard)

	case StartWorkoutMsg:
		return a, a.startWorkout(msg)

	case WorkoutFinishedMsg:
		return a, a.finishWorkout(msg)

	// Answers and spinner frames belong to the coach even when another
	// screen is showing
	case tipMsg, recentTipsMsg, spinner.TickMsg:
		m, cmd := a.coach.Update(msg)
		a.coach = m.(CoachModel)
		return a, cmd

	case playerTickMsg:
		if a.screen != ScreenPlayer {
			return a, nil
		}
	}

	// Delegate to current screen
	var cmd tea.Cmd
	switch a.screen {
	case ScreenOnboarding:
		var m tea.Model
		m, cmd = a.onboarding.Update(msg)
		a.onboarding = m.(OnboardingModel)
	case ScreenDashboard:
		var m tea.Model
		m, cmd = a.dashboard.Update(msg)
		a.dashboard = m.(DashboardModel)
	case ScreenPlan:
		var m tea.Model
		m, cmd = a.plan.Update(msg)
		a.plan = m.(PlanModel)
	case ScreenFocus:
		var m tea.Model
		m, cmd = a.focus.Update(msg)
		a.focus = m.(FocusModel)
	case ScreenProgress:
		var m tea.Model
		m, cmd = a.progress.Update(msg)
		a.progress = m.(ProgressModel)
	case ScreenCoach:
		var m tea.Model
		m, cmd = a.coach.Update(msg)
		a.coach = m.(CoachModel)
	case ScreenPlayer:
		var m tea.Model
		m, cmd = a.player.Update(msg)
		a.player = m.(PlayerModel)
	case ScreenHelp:
		var m tea.Model
		m, cmd = a.help.Update(msg)
		a.help = m.(HelpModel)
	}

	return a, cmd
}

// open switches to a main screen, reloading its data. Nothing opens
// before onboarding has finished.
func (a *App) open(screen Screen) tea.Cmd {
	if a.tracker.Profile() == nil {
		return nil
	}
	a.screen = screen
	a.status = ""

	switch screen {
	case ScreenDashboard:
		a.dashboard = NewDashboardModel(a.queryService, a.tracker)
		return a.dashboard.Init()
	case ScreenPlan:
		a.plan = NewPlanModel(a.queryService, a.tracker)
		return a.plan.Init()
	case ScreenFocus:
		a.focus = NewFocusModel(a.queryService)
		return a.focus.Init()
	case ScreenProgress:
		a.progress = NewProgressModel(a.queryService, a.tracker)
		return a.progress.Init()
	case ScreenCoach:
		return a.coach.Init()
	}
	return nil
}

func (a *App) startWorkout(msg StartWorkoutMsg) tea.Cmd {
	p, err := NewPlayerModel(msg.Workout, a.log)
	if err != nil {
		a.status = fmt.Sprintf("Can't start workout: %v", err)
		return nil
	}

	a.player = p
	if a.screen != ScreenPlayer {
		a.backScreen = a.screen
	}
	a.screen = ScreenPlayer
	a.status = ""
	a.log.WithField("workout", msg.Workout.Title).Debug("workout started")
	return a.player.Init()
}

// finishWorkout credits a completed workout and shows progress, or goes
// back to where the workout was started from
func (a *App) finishWorkout(msg WorkoutFinishedMsg) tea.Cmd {
	if !msg.Completed {
		a.log.WithField("workout", msg.Workout.Title).Debug("workout exited")
		cmd := a.open(a.backScreen)
		a.status = "Workout exited. Nothing was recorded."
		return cmd
	}

	err := a.tracker.CompleteWorkout(msg.Workout, msg.Calories, a.now())
	cmd := a.open(ScreenProgress)
	if err != nil {
		a.status = errorStyle.Render(fmt.Sprintf("Workout counted, but the journal failed: %v", err))
	} else {
		a.status = successStyle.Render(fmt.Sprintf("Workout complete! +%s", formatCalories(msg.Calories)))
	}
	return cmd
}

// View renders the app
func (a *App) View() string {
	header := a.renderHeader()

	var content string
	switch a.screen {
	case ScreenOnboarding:
		content = a.onboarding.View()
	case ScreenDashboard:
		content = a.dashboard.View()
	case ScreenPlan:
		content = a.plan.View()
	case ScreenFocus:
		content = a.focus.View()
	case ScreenProgress:
		content = a.progress.View()
	case ScreenCoach:
		content = a.coach.View()
	case ScreenPlayer:
		content = a.player.View()
	case ScreenHelp:
		content = a.help.View()
	}

	// The player and onboarding are full screen
	if a.screen == ScreenOnboarding || a.screen == ScreenPlayer {
		return lipgloss.JoinVertical(lipgloss.Left, header, content, a.renderFooter())
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, a.renderNav(), content, a.renderFooter())
}

func (a *App) renderHeader() string {
	return headerStyle.Render("FitFlow - Your Fitness Journey")
}

func (a *App) renderNav() string {
	items := []struct {
		key    string
		label  string
		screen Screen
	}{
		{"1", "Dashboard", ScreenDashboard},
		{"2", "Plan", ScreenPlan},
		{"3", "Focus", ScreenFocus},
		{"4", "Progress", ScreenProgress},
		{"5", "Coach", ScreenCoach},
		{"?", "Help", ScreenHelp},
	}

	var nav string
	for i, item := range items {
		if i > 0 {
			nav += "  "
		}

		label := "[" + item.key + "] " + item.label
		if a.screen == item.screen {
			nav += navActiveStyle.Render(label)
		} else {
			nav += navInactiveStyle.Render(label)
		}
	}

	nav += "  " + navInactiveStyle.Render("[q] Quit")

	return navStyle.Render(nav)
}

func (a *App) renderFooter() string {
	if a.status != "" {
		return statusStyle.Render(a.status)
	}
	return ""
}
