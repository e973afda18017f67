package tui

import (
	"fmt"
	"strings"
	"time"

	"fitflow/internal/catalog"
	"fitflow/internal/player"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const progressBarWidth = 40

// playerTickMsg is one elapsed second for a specific session and tag
type playerTickMsg struct {
	session uuid.UUID
	tag     int
}

// playerResult is shared between model copies so the completion callback
// can report back into whichever copy is current
type playerResult struct {
	fired    bool
	calories int
}

// PlayerModel is the full-screen workout player
type PlayerModel struct {
	session *player.Session
	result  *playerResult

	// The tag a tick is already in flight for, if any
	scheduled    bool
	scheduledTag int

	reported bool
}

// NewPlayerModel starts a session for the workout. Phase changes are
// logged at debug level.
func NewPlayerModel(w *catalog.Workout, log logrus.FieldLogger) (PlayerModel, error) {
	result := &playerResult{}
	s, err := player.Start(w, func(calories int) {
		result.fired = true
		result.calories = calories
	})
	if err != nil {
		return PlayerModel{}, err
	}

	sessionLog := log.WithFields(logrus.Fields{"session": s.ID.String(), "workout": w.Title})
	s.OnTransition = func(from, to player.State) {
		sessionLog.WithFields(logrus.Fields{
			"from":  fmt.Sprintf("%s(%d)", from.Phase, from.Index),
			"to":    fmt.Sprintf("%s(%d)", to.Phase, to.Index),
			"phase": to.Phase.String(),
		}).Debug("player transition")
	}
	return PlayerModel{session: s, result: result}, nil
}

// Init initializes the player. Sessions start paused, so nothing ticks yet.
func (m PlayerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m PlayerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.session == nil || m.reported {
		return m, nil
	}

	switch msg := msg.(type) {
	case playerTickMsg:
		if msg.session != m.session.ID {
			return m, nil
		}
		if m.scheduled && msg.tag == m.scheduledTag {
			m.scheduled = false
		}
		m.session.Tick(msg.tag)

	case tea.KeyMsg:
		switch msg.String() {
		case " ", "space":
			m.session.TogglePause()
		case "right", "n", "enter":
			m.session.SkipForward()
		case "left", "p":
			m.session.SkipBack()
		case "x", "esc":
			m.session.Exit()
		default:
			return m, nil
		}

	default:
		return m, nil
	}

	return m.afterChange()
}

// afterChange reports a finished session or keeps the ticker running
func (m PlayerModel) afterChange() (tea.Model, tea.Cmd) {
	if m.session.Finished() {
		m.reported = true
		finished := WorkoutFinishedMsg{
			Workout:   m.session.Workout(),
			Calories:  m.result.calories,
			Completed: m.result.fired,
		}
		return m, func() tea.Msg { return finished }
	}

	return m.scheduleTick()
}

// scheduleTick issues at most one tick per tag while the session is armed
func (m PlayerModel) scheduleTick() (PlayerModel, tea.Cmd) {
	if !m.session.Armed() {
		return m, nil
	}
	tag := m.session.Tag()
	if m.scheduled && m.scheduledTag == tag {
		return m, nil
	}

	m.scheduled = true
	m.scheduledTag = tag
	id := m.session.ID
	return m, tea.Tick(player.TickInterval, func(time.Time) tea.Msg {
		return playerTickMsg{session: id, tag: tag}
	})
}

// View renders the player
func (m PlayerModel) View() string {
	if m.session == nil {
		return ""
	}
	snap := m.session.Snapshot()

	var sections []string

	sections = append(sections, cardTitleStyle.Render(snap.WorkoutTitle))

	position := fmt.Sprintf("Exercise %d of %d", snap.Index+1, snap.Total)
	sections = append(sections, mutedStyle.Render(position))
	sections = append(sections, RenderProgressBar(snap.ProgressPercent/100, progressBarWidth)+
		mutedStyle.Render(fmt.Sprintf(" %.0f%%", snap.ProgressPercent)))

	if snap.Phase == player.PhaseResting {
		sections = append(sections, restTitleStyle.Render(snap.Title))
	} else {
		sections = append(sections, exerciseTitleStyle.Render(strings.ToUpper(snap.Title)))
	}
	sections = append(sections, snap.Instruction)

	if snap.Countdown != nil {
		sections = append(sections, countdownStyle.Render(formatCountdown(*snap.Countdown)))
	} else {
		sections = append(sections, "")
	}

	if snap.Paused {
		sections = append(sections, pausedStyle.Render("Paused - press space to start"))
	} else {
		sections = append(sections, successStyle.Render("Running"))
	}

	controls := []string{RenderKeyHelp("space", "pause/resume")}
	if snap.CanGoBack {
		controls = append(controls, RenderKeyHelp("←", "back"))
	}
	controls = append(controls,
		RenderKeyHelp("→", strings.ToLower(snap.NextLabel)),
		RenderKeyHelp("x", "exit"),
	)
	sections = append(sections, statusStyle.Render(strings.Join(controls, "  ")))

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}
