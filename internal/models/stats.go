package models

// HabitStats is the derived statistics record for one habit. All rates are
// integer percentages in [0, 100].
type HabitStats struct {
	HabitID       string `json:"habitId"`
	HabitName     string `json:"habitName"`
	CurrentStreak int    `json:"currentStreak"`
	BestStreak    int    `json:"bestStreak"`
	WeeklyRate    int    `json:"weeklyRate"`
	MonthlyRate   int    `json:"monthlyRate"`
	GoalProgress  int    `json:"goalProgress"`
}
