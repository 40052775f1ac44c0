package models

type Mood string

const (
	MoodHappy   Mood = "😊"
	MoodNeutral Mood = "😐"
	MoodSad     Mood = "😔"
	MoodTense   Mood = "😤"
	MoodFired   Mood = "🔥"
)

var AllMoods = []Mood{MoodHappy, MoodNeutral, MoodSad, MoodTense, MoodFired}

// MoodScores maps each mood to a 1-5 score used for the weekly mood series.
var MoodScores = map[Mood]int{
	MoodHappy:   5,
	MoodFired:   4,
	MoodNeutral: 3,
	MoodTense:   2,
	MoodSad:     1,
}

// Completion records that a habit was done on a calendar day. At most one
// completion exists per (HabitID, Day) pair.
type Completion struct {
	HabitID string `json:"habitId"`
	Day     string `json:"date"` // YYYY-MM-DD format
	Note    string `json:"note,omitempty"`
	Mood    Mood   `json:"mood,omitempty"`
}
