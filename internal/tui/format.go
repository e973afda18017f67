package tui

import (
	"fmt"
	"strings"

	"fitflow/internal/catalog"

	"github.com/dustin/go-humanize"
)

// formatCountdown renders seconds as "45" or "1:30"
func formatCountdown(seconds int) string {
	if seconds < 60 {
		return fmt.Sprintf("%d", seconds)
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

func formatCalories(kcal int) string {
	return humanize.Comma(int64(kcal)) + " kcal"
}

// formatExercise is the one-line summary used in workout lists
func formatExercise(ex catalog.Exercise) string {
	if ex.Type == catalog.Reps {
		return fmt.Sprintf("%s  x%d", ex.Name, ex.Duration)
	}
	if ex.Duration < 60 {
		return fmt.Sprintf("%s  %ds", ex.Name, ex.Duration)
	}
	return fmt.Sprintf("%s  %s", ex.Name, formatCountdown(ex.Duration))
}

func formatMuscleGroups(groups []string) string {
	if len(groups) == 0 {
		return "-"
	}
	return strings.Join(groups, ", ")
}

func truncateName(s string, max int) string {
	if len([]rune(s)) <= max {
		return s
	}
	return string([]rune(s)[:max-3]) + "..."
}
