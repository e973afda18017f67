package profile

import (
	"errors"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"fitflow/internal/catalog"
)

// DefaultHeightCm is assigned at onboarding until the user enters their own
const DefaultHeightCm = 175

// DateLayout is the ISO calendar date stored on weight entries
const DateLayout = "2006-01-02"

// ErrUnknownSlot is returned when a photo slot is neither before nor after
var ErrUnknownSlot = errors.New("unknown photo slot")

// ErrEmptyPhoto is returned when a photo reference carries no data
var ErrEmptyPhoto = errors.New("empty photo reference")

// WeightEntry is one weigh-in. Entries are append-only.
type WeightEntry struct {
	Date   string  // YYYY-MM-DD
	Weight float64 // kg
}

// PhotoSlot names one of the two progress photos
type PhotoSlot string

const (
	SlotBefore PhotoSlot = "before"
	SlotAfter  PhotoSlot = "after"
)

// Photos holds the encoded before/after images, nil when unset
type Photos struct {
	Before *string
	After  *string
}

// Progress holds the running totals and history for a user
type Progress struct {
	WorkoutsCompleted int
	CaloriesBurned    int
	WeightHistory     []WeightEntry
	Photos            Photos
}

// UserProfile is the single in-memory user of the app.
// Level and Goal are fixed at onboarding.
type UserProfile struct {
	Level    catalog.FitnessLevel
	Goal     catalog.FitnessGoal
	Height   float64 // cm
	Progress Progress
}

// New creates the profile at the end of onboarding with empty progress.
// A non-positive height falls back to DefaultHeightCm.
func New(level catalog.FitnessLevel, goal catalog.FitnessGoal, heightCm float64) *UserProfile {
	if !validMeasurement(heightCm) {
		heightCm = DefaultHeightCm
	}
	return &UserProfile{
		Level:  level,
		Goal:   goal,
		Height: heightCm,
	}
}

// ParseMeasurement parses user input for a weight or height.
// Non-numeric, non-finite and non-positive values are rejected.
func ParseMeasurement(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || !validMeasurement(v) {
		return 0, false
	}
	return v, true
}

func validMeasurement(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

// AddWeight appends a weigh-in dated at the given time.
// Invalid weights are ignored and false is returned.
func (p *UserProfile) AddWeight(kg float64, at time.Time) bool {
	if !validMeasurement(kg) {
		return false
	}
	p.Progress.WeightHistory = append(p.Progress.WeightHistory, WeightEntry{
		Date:   at.Format(DateLayout),
		Weight: kg,
	})
	return true
}

// SetHeight replaces the height. Invalid heights are ignored.
func (p *UserProfile) SetHeight(cm float64) bool {
	if !validMeasurement(cm) {
		return false
	}
	p.Height = cm
	return true
}

// SetPhoto stores an encoded image reference in a slot, replacing any
// previous image there.
func (p *UserProfile) SetPhoto(slot PhotoSlot, ref string) error {
	if ref == "" {
		return ErrEmptyPhoto
	}
	switch slot {
	case SlotBefore:
		p.Progress.Photos.Before = &ref
	case SlotAfter:
		p.Progress.Photos.After = &ref
	default:
		return ErrUnknownSlot
	}
	return nil
}

// Photo returns the image stored in a slot
func (p *UserProfile) Photo(slot PhotoSlot) (string, bool) {
	var ref *string
	switch slot {
	case SlotBefore:
		ref = p.Progress.Photos.Before
	case SlotAfter:
		ref = p.Progress.Photos.After
	}
	if ref == nil {
		return "", false
	}
	return *ref, true
}

// RecordWorkoutCompletion credits a fully completed workout.
// Counters never decrease, so negative calories are ignored.
func (p *UserProfile) RecordWorkoutCompletion(calories int) {
	if calories < 0 {
		return
	}
	p.Progress.WorkoutsCompleted++
	p.Progress.CaloriesBurned += calories
}

// LatestWeight returns the most recently appended weight
func (p *UserProfile) LatestWeight() (float64, bool) {
	h := p.Progress.WeightHistory
	if len(h) == 0 {
		return 0, false
	}
	return h[len(h)-1].Weight, true
}

// Clone returns a deep copy of the profile that shares no memory with p
func (p *UserProfile) Clone() *UserProfile {
	c := *p
	c.Progress.WeightHistory = slices.Clone(p.Progress.WeightHistory)
	c.Progress.Photos = Photos{
		Before: cloneRef(p.Progress.Photos.Before),
		After:  cloneRef(p.Progress.Photos.After),
	}
	return &c
}

func cloneRef(ref *string) *string {
	if ref == nil {
		return nil
	}
	v := *ref
	return &v
}
