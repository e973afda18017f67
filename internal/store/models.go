package store

import "time"

// Completion is a workout the user played to the end
type Completion struct {
	ID          string    `db:"id"`
	Title       string    `db:"title"`
	Level       string    `db:"level"` // empty for focus workouts
	Calories    int       `db:"calories"`
	Exercises   int       `db:"exercises"`
	CompletedAt time.Time `db:"completed_at"`
}

// DayCalories is the calorie total for one local calendar day
type DayCalories struct {
	Date     time.Time
	Calories int
}

// TipExchange is one question put to the coach and the answer shown
type TipExchange struct {
	ID       int64     `db:"id"`
	Prompt   string    `db:"prompt"`
	Response string    `db:"response"`
	AskedAt  time.Time `db:"asked_at"`
}
