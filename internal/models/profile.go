package models

// Achievement is an unlocked entry from the static catalog.
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	UnlockedAt  string `json:"unlockedAt,omitempty"` // RFC3339 timestamp
}

// Profile is the singleton gamification record.
type Profile struct {
	XP           int           `json:"xp"`
	Level        int           `json:"level"`
	Achievements []Achievement `json:"achievements"`
}

// NewProfile returns a fresh profile at level 1 with no achievements.
func NewProfile() Profile {
	return Profile{XP: 0, Level: 1, Achievements: []Achievement{}}
}

// AchievementDefs is the static unlock catalog. UnlockedAt is stamped when a
// definition is copied into a profile.
var AchievementDefs = []Achievement{
	{ID: "first_habit", Name: "First Habit", Description: "Created your first habit", Icon: "🌱"},
	{ID: "streak_7", Name: "7-Day Streak", Description: "Maintained a 7-day streak", Icon: "🔥"},
	{ID: "streak_30", Name: "30-Day Streak", Description: "Maintained a 30-day streak", Icon: "💎"},
	{ID: "perfect_week", Name: "Perfect Week", Description: "Completed all habits for a full week", Icon: "⭐"},
	{ID: "habits_10", Name: "10 Habits Created", Description: "Created 10 habits", Icon: "📋"},
	{ID: "level_5", Name: "Level 5", Description: "Reached level 5", Icon: "🏅"},
	{ID: "level_10", Name: "Level 10", Description: "Reached level 10", Icon: "🏆"},
}
