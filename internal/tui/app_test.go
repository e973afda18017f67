package tui

import (
	"context"
	"sync"
	"testing"

	"fitflow/internal/catalog"
	"fitflow/internal/service"
	"fitflow/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

// fakeTips answers every question with a fixed string
type fakeTips struct {
	answer string
}

func (f fakeTips) RequestTip(ctx context.Context, question string) string {
	return f.answer
}

type testEnv struct {
	db      *store.DB
	tracker *service.Tracker
	qs      *service.QueryService
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()

	db, err := store.Open()
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	log, _ := test.NewNullLogger()
	tracker := service.NewTracker(db, log, 175)
	return testEnv{db: db, tracker: tracker, qs: service.NewQueryService(db)}
}

func newTestApp(t *testing.T) (*App, testEnv) {
	t.Helper()
	env := newTestEnv(t)
	log, _ := test.NewNullLogger()
	return NewApp(env.tracker, env.qs, fakeTips{answer: "Drink water."}, log), env
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
)

// send feeds a message to the app and returns the message produced by the
// resulting command, if it is one of ours
func send(a *App, msg tea.Msg) tea.Msg {
	_, cmd := a.Update(msg)
	if cmd == nil {
		return nil
	}
	switch out := cmd().(type) {
	case OnboardedMsg, StartWorkoutMsg, WorkoutFinishedMsg:
		return out
	}
	return nil
}

func onboard(t *testing.T, a *App) {
	t.Helper()
	send(a, keyEnter) // Beginner
	send(a, keyDown)
	send(a, keyEnter) // Muscle Gain
	msg := send(a, keyEnter)
	if msg == nil {
		t.Fatal("confirming onboarding should emit OnboardedMsg")
	}
	a.Update(msg)
}

func TestOnboardingFlow(t *testing.T) {
	a, env := newTestApp(t)

	if a.Screen() != ScreenOnboarding {
		t.Fatalf("Screen = %v, want onboarding", a.Screen())
	}

	// Navigation keys do nothing before onboarding
	a.Update(keyRunes("4"))
	if a.Screen() != ScreenOnboarding {
		t.Errorf("Screen = %v, global keys should be ignored during onboarding", a.Screen())
	}

	onboard(t, a)

	if a.Screen() != ScreenDashboard {
		t.Errorf("Screen = %v, want dashboard", a.Screen())
	}
	p := env.tracker.Profile()
	if p == nil {
		t.Fatal("profile should exist after onboarding")
	}
	if p.Level != catalog.Beginner || p.Goal != catalog.MuscleGain {
		t.Errorf("profile = %v / %v, want Beginner / Muscle Gain", p.Level, p.Goal)
	}
}

func TestOnboardingBack(t *testing.T) {
	m := NewOnboardingModel()

	next, _ := m.Update(keyDown)
	next, _ = next.Update(keyEnter) // Intermediate
	next, _ = next.Update(keyEsc)   // back to level
	m = next.(OnboardingModel)

	if m.step != stepLevel || m.cursor != int(catalog.Intermediate) {
		t.Errorf("step=%v cursor=%d, want level step with Intermediate selected", m.step, m.cursor)
	}
}

func TestWorkoutCompletionFlow(t *testing.T) {
	a, env := newTestApp(t)
	onboard(t, a)

	w := catalog.NextWorkout(catalog.Beginner)
	a.Update(StartWorkoutMsg{Workout: w})
	if a.Screen() != ScreenPlayer {
		t.Fatalf("Screen = %v, want player", a.Screen())
	}

	var finished *WorkoutFinishedMsg
	for i := 0; i < 4*len(w.Exercises) && finished == nil; i++ {
		if msg, ok := send(a, keyRight).(WorkoutFinishedMsg); ok {
			finished = &msg
		}
	}
	if finished == nil {
		t.Fatal("player never reported completion")
	}
	if !finished.Completed || finished.Calories != w.TotalCalories {
		t.Errorf("finished = %+v", finished)
	}

	a.Update(*finished)
	if a.Screen() != ScreenProgress {
		t.Errorf("Screen = %v, want progress after completion", a.Screen())
	}

	p := env.tracker.Profile()
	if p.Progress.WorkoutsCompleted != 1 || p.Progress.CaloriesBurned != w.TotalCalories {
		t.Errorf("progress = %+v", p.Progress)
	}
	if n, _ := env.db.CountCompletions(); n != 1 {
		t.Errorf("journal has %d completions, want 1", n)
	}
}

func TestWorkoutExitFlow(t *testing.T) {
	a, env := newTestApp(t)
	onboard(t, a)
	a.Update(keyRunes("3"))
	if a.Screen() != ScreenFocus {
		t.Fatalf("Screen = %v, want focus", a.Screen())
	}

	start := send(a, keyEnter)
	if start == nil {
		t.Fatal("enter on a focus workout should start it")
	}
	a.Update(start)
	send(a, keyRight)

	msg, ok := send(a, keyRunes("x")).(WorkoutFinishedMsg)
	if !ok || msg.Completed {
		t.Fatalf("exit should report an incomplete workout, got %+v", msg)
	}
	a.Update(msg)

	if a.Screen() != ScreenFocus {
		t.Errorf("Screen = %v, want focus after exit", a.Screen())
	}
	if p := env.tracker.Profile(); p.Progress.WorkoutsCompleted != 0 || p.Progress.CaloriesBurned != 0 {
		t.Errorf("exited workout was credited: %+v", p.Progress)
	}
}

func TestPlayerTickScheduling(t *testing.T) {
	w := catalog.NewWorkout("Timed", nil,
		catalog.Exercise{Name: "Plank", Type: catalog.Timed, Duration: 30, Calories: 5})
	log, _ := test.NewNullLogger()
	m, err := NewPlayerModel(w, log)
	if err != nil {
		t.Fatal(err)
	}

	if m.Init() != nil {
		t.Error("a paused session should not schedule a tick")
	}

	next, cmd := m.Update(keySpace)
	m = next.(PlayerModel)
	if cmd == nil {
		t.Fatal("resuming should schedule a tick")
	}
	firstTag := m.scheduledTag

	// A second key that doesn't change the tag must not double-schedule
	next, cmd = m.Update(keyRunes("z"))
	m = next.(PlayerModel)
	if cmd != nil {
		t.Error("unrelated key should not schedule another tick")
	}

	// Pause then resume: the old tick becomes stale
	next, _ = m.Update(keySpace)
	m = next.(PlayerModel)
	next, cmd = m.Update(keySpace)
	m = next.(PlayerModel)
	if cmd == nil || m.scheduledTag == firstTag {
		t.Fatal("resume after pause should schedule a tick for the new tag")
	}

	next, _ = m.Update(playerTickMsg{session: m.session.ID, tag: firstTag})
	m = next.(PlayerModel)
	if m.session.Remaining() != 30 {
		t.Errorf("stale tick applied: remaining %d", m.session.Remaining())
	}

	next, cmd = m.Update(playerTickMsg{session: m.session.ID, tag: m.scheduledTag})
	m = next.(PlayerModel)
	if m.session.Remaining() != 29 {
		t.Errorf("remaining = %d, want 29", m.session.Remaining())
	}
	if cmd == nil {
		t.Error("countdown should keep ticking")
	}
}

func TestPlayerLogsTransitions(t *testing.T) {
	w := catalog.NewWorkout("Two", nil,
		catalog.Exercise{Name: "Squats", Type: catalog.Reps, Duration: 10, Calories: 4},
		catalog.Exercise{Name: "Plank", Type: catalog.Timed, Duration: 30, Calories: 5})
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	m, err := NewPlayerModel(w, log)
	if err != nil {
		t.Fatal(err)
	}

	next, _ := m.Update(keyRight)
	m = next.(PlayerModel)

	entries := hook.AllEntries()
	if len(entries) != 1 {
		t.Fatalf("got %d log entries, want 1", len(entries))
	}
	e := entries[0]
	if e.Level != logrus.DebugLevel || e.Message != "player transition" {
		t.Errorf("entry = %v %q", e.Level, e.Message)
	}
	if e.Data["from"] != "exercising(0)" || e.Data["to"] != "resting(0)" {
		t.Errorf("fields = %v", e.Data)
	}
	if e.Data["session"] != m.session.ID.String() {
		t.Errorf("session = %v, want %s", e.Data["session"], m.session.ID)
	}
}

func TestCoachDropsStaleAnswers(t *testing.T) {
	env := newTestEnv(t)
	m := NewCoachModel(fakeTips{}, env.tracker, env.qs, 80, 24)

	// Two quick questions in a row: requests 1 and 2
	next, _ := m.Update(keyRunes("a"))
	m = next.(CoachModel)
	next, _ = m.Update(keyRunes("b"))
	m = next.(CoachModel)
	if !m.loading {
		t.Fatal("asking should show the spinner")
	}

	next, _ = m.Update(tipMsg{seq: 1, question: "old", answer: "stale answer"})
	m = next.(CoachModel)
	if m.answer != "" || !m.loading {
		t.Errorf("stale answer shown: %q", m.answer)
	}

	next, _ = m.Update(tipMsg{seq: 2, question: "new", answer: "fresh answer"})
	m = next.(CoachModel)
	if m.answer != "fresh answer" || m.loading {
		t.Errorf("answer = %q loading=%v, want fresh answer", m.answer, m.loading)
	}

	tips, err := env.db.RecentTips(5)
	if err != nil {
		t.Fatal(err)
	}
	if len(tips) != 1 || tips[0].Prompt != "new" {
		t.Errorf("journal = %+v, want only the fresh exchange", tips)
	}
}

func TestGlobalKeysWhileTyping(t *testing.T) {
	a, env := newTestApp(t)
	onboard(t, a)
	a.Update(keyRunes("4"))
	if a.Screen() != ScreenProgress {
		t.Fatalf("Screen = %v, want progress", a.Screen())
	}

	a.Update(keyRunes("w"))
	a.Update(keyRunes("1"))
	if a.Screen() != ScreenProgress {
		t.Errorf("typing a digit switched screens to %v", a.Screen())
	}
	a.Update(keyRunes("x"))

	// "1x" is not a number
	a.Update(keyEnter)
	if n := len(env.tracker.Profile().Progress.WeightHistory); n != 0 {
		t.Errorf("invalid weight stored, history len %d", n)
	}
	if a.progress.notice != "Please enter a positive number" {
		t.Errorf("notice = %q", a.progress.notice)
	}

	a.Update(keyRunes("w"))
	a.Update(keyRunes("72.5"))
	a.Update(keyEnter)
	history := env.tracker.Profile().Progress.WeightHistory
	if len(history) != 1 || history[0].Weight != 72.5 {
		t.Errorf("history = %+v, want one 72.5 entry", history)
	}
}

// Bubble Tea runs commands on their own goroutines. Loads must read a
// profile snapshot while Update keeps changing the live profile; run with
// -race to catch regressions.
func TestLoadsDoNotShareProfile(t *testing.T) {
	a, env := newTestApp(t)
	onboard(t, a)

	var wg sync.WaitGroup
	run := func(cmd tea.Cmd) {
		if cmd == nil {
			t.Fatal("opening a screen should return a load command")
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			cmd()
		}()
	}

	const rounds = 20
	w := catalog.QuickStart()
	for i := 0; i < rounds; i++ {
		_, cmd := a.Update(keyRunes("4"))
		run(cmd)
		a.Update(keyRunes("w"))
		a.Update(keyRunes("80"))
		a.Update(keyEnter)

		_, cmd = a.Update(keyRunes("1"))
		run(cmd)
		a.Update(WorkoutFinishedMsg{Workout: w, Calories: w.TotalCalories, Completed: true})

		_, cmd = a.Update(keyRunes("2"))
		run(cmd)
	}
	wg.Wait()

	p := env.tracker.Profile()
	if len(p.Progress.WeightHistory) != rounds || p.Progress.WorkoutsCompleted != rounds {
		t.Errorf("history=%d workouts=%d, want %d each", len(p.Progress.WeightHistory), p.Progress.WorkoutsCompleted, rounds)
	}
}
