package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RecordCompletion appends a finished workout. A missing ID or time is
// filled in.
func (db *DB) RecordCompletion(c *Completion) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CompletedAt.IsZero() {
		c.CompletedAt = time.Now()
	}

	_, err := db.Exec(`
		INSERT INTO workout_log (id, title, level, calories, exercises, completed_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, c.ID, c.Title, nullString(c.Level), c.Calories, c.Exercises, formatTime(c.CompletedAt))
	if err != nil {
		return fmt.Errorf("recording completion: %w", err)
	}
	return nil
}

// RecentCompletions returns up to limit completions, newest first
func (db *DB) RecentCompletions(limit int) ([]Completion, error) {
	rows, err := db.Query(`
		SELECT id, title, level, calories, exercises, completed_at
		FROM workout_log
		ORDER BY completed_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying completions: %w", err)
	}
	defer rows.Close()

	var completions []Completion
	for rows.Next() {
		var c Completion
		var level sql.NullString
		var completedAt string
		if err := rows.Scan(&c.ID, &c.Title, &level, &c.Calories, &c.Exercises, &completedAt); err != nil {
			return nil, fmt.Errorf("scanning completion: %w", err)
		}
		c.Level = level.String
		c.CompletedAt, err = parseTime(completedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing completed_at: %w", err)
		}
		completions = append(completions, c)
	}
	return completions, rows.Err()
}

// CountCompletions returns the number of workouts finished this session
func (db *DB) CountCompletions() (int, error) {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM workout_log").Scan(&count)
	return count, err
}

// DailyCalories returns calorie totals for the last days calendar days
// ending with now's day, oldest first. Days without workouts are zero.
func (db *DB) DailyCalories(days int, now time.Time) ([]DayCalories, error) {
	if days <= 0 {
		return nil, nil
	}

	loc := now.Location()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	start := today.AddDate(0, 0, -(days - 1))

	series := make([]DayCalories, days)
	for i := range series {
		series[i].Date = start.AddDate(0, 0, i)
	}

	rows, err := db.Query("SELECT calories, completed_at FROM workout_log")
	if err != nil {
		return nil, fmt.Errorf("querying daily calories: %w", err)
	}
	defer rows.Close()

	// Stored times are UTC; days are bucketed in now's location
	for rows.Next() {
		var calories int
		var completedAt string
		if err := rows.Scan(&calories, &completedAt); err != nil {
			return nil, fmt.Errorf("scanning daily calories: %w", err)
		}
		t, err := parseTime(completedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing completed_at: %w", err)
		}
		t = t.In(loc)
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
		if day.Before(start) || day.After(today) {
			continue
		}
		idx := daysBetween(start, day)
		if idx >= 0 && idx < days {
			series[idx].Calories += calories
		}
	}
	return series, rows.Err()
}

// daysBetween counts calendar days, which is not hours/24 across DST changes
func daysBetween(from, to time.Time) int {
	n := 0
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		n++
	}
	return n
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
