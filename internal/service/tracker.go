package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"fitflow/internal/catalog"
	"fitflow/internal/profile"
	"fitflow/internal/store"
)

// ErrNotOnboarded is returned by operations that need a profile before
// onboarding has finished
var ErrNotOnboarded = errors.New("onboarding not completed")

// Tracker owns the single user profile and records what happens to it.
// It is used from the UI event loop only.
type Tracker struct {
	store         *store.DB
	log           logrus.FieldLogger
	defaultHeight float64
	profile       *profile.UserProfile
}

// NewTracker creates a tracker with no profile yet
func NewTracker(db *store.DB, log logrus.FieldLogger, defaultHeightCm float64) *Tracker {
	return &Tracker{
		store:         db,
		log:           log,
		defaultHeight: defaultHeightCm,
	}
}

// Onboard creates the profile. Level and goal can't be changed later.
func (t *Tracker) Onboard(level catalog.FitnessLevel, goal catalog.FitnessGoal) *profile.UserProfile {
	t.profile = profile.New(level, goal, t.defaultHeight)
	t.log.WithFields(logrus.Fields{
		"level":  level.String(),
		"goal":   goal.String(),
		"height": t.profile.Height,
	}).Info("onboarding completed")
	return t.profile
}

// Profile returns the current profile, or nil before onboarding
func (t *Tracker) Profile() *profile.UserProfile {
	return t.profile
}

// Snapshot returns a deep copy of the profile, or nil before onboarding.
// Commands that run off the event loop read the copy, never the profile.
func (t *Tracker) Snapshot() *profile.UserProfile {
	if t.profile == nil {
		return nil
	}
	return t.profile.Clone()
}

// CompleteWorkout credits a finished workout to the profile and journals
// it. The profile is updated even if journaling fails.
func (t *Tracker) CompleteWorkout(w *catalog.Workout, calories int, at time.Time) error {
	if t.profile == nil {
		return ErrNotOnboarded
	}
	t.profile.RecordWorkoutCompletion(calories)

	c := &store.Completion{
		Title:       w.Title,
		Calories:    calories,
		Exercises:   len(w.Exercises),
		CompletedAt: at,
	}
	if w.Level != nil {
		c.Level = w.Level.String()
	}

	entry := t.log.WithFields(logrus.Fields{
		"workout":  w.Title,
		"calories": calories,
	})
	if err := t.store.RecordCompletion(c); err != nil {
		entry.WithError(err).Error("journaling completed workout")
		return fmt.Errorf("journaling workout: %w", err)
	}
	entry.Info("workout completed")
	return nil
}

// LogWeight parses and appends a weight entry. It reports false, and
// changes nothing, for input that isn't a positive number.
func (t *Tracker) LogWeight(raw string, at time.Time) (bool, error) {
	if t.profile == nil {
		return false, ErrNotOnboarded
	}
	kg, ok := profile.ParseMeasurement(raw)
	if !ok {
		return false, nil
	}
	t.profile.AddWeight(kg, at)
	t.log.WithField("weight", kg).Debug("weight logged")
	return true, nil
}

// UpdateHeight parses and replaces the height, same rules as LogWeight
func (t *Tracker) UpdateHeight(raw string) (bool, error) {
	if t.profile == nil {
		return false, ErrNotOnboarded
	}
	cm, ok := profile.ParseMeasurement(raw)
	if !ok {
		return false, nil
	}
	t.profile.SetHeight(cm)
	t.log.WithField("height", cm).Debug("height updated")
	return true, nil
}

// AttachPhoto loads an image file into a progress photo slot
func (t *Tracker) AttachPhoto(slot profile.PhotoSlot, path string) error {
	if t.profile == nil {
		return ErrNotOnboarded
	}
	ref, err := profile.LoadPhoto(path)
	if err != nil {
		return err
	}
	if err := t.profile.SetPhoto(slot, ref); err != nil {
		return err
	}
	t.log.WithField("slot", string(slot)).Info("progress photo set")
	return nil
}

// RecordTip journals a coach exchange. Failures are logged, not returned:
// the answer has already been shown.
func (t *Tracker) RecordTip(prompt, response string, at time.Time) {
	if _, err := t.store.RecordTip(prompt, response, at); err != nil {
		t.log.WithError(err).Warn("journaling coach tip")
	}
}
