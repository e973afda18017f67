package service

const (
	// Dashboard windows
	CalorieChartDays       = 7
	RecentCompletionsLimit = 5

	// Coach history shown under the answer
	RecentTipsLimit = 5

	// Muscle groups listed per workout card
	WorkoutCardMuscleGroups = 3
)
