package models

import "time"

type Category string

const (
	CategoryHealth   Category = "Health"
	CategoryWork     Category = "Work"
	CategoryPersonal Category = "Personal"
	CategoryFitness  Category = "Fitness"
	CategoryLearning Category = "Learning"
	CategoryCustom   Category = "Custom"
)

// AllCategories lists every valid habit category in display order.
var AllCategories = []Category{
	CategoryHealth,
	CategoryWork,
	CategoryPersonal,
	CategoryFitness,
	CategoryLearning,
	CategoryCustom,
}

type ScheduleType string

const (
	ScheduleDaily        ScheduleType = "daily"
	ScheduleWeekly       ScheduleType = "weekly"
	ScheduleSpecificDays ScheduleType = "specific_days"
	ScheduleXPerMonth    ScheduleType = "x_per_month"
	ScheduleInterval     ScheduleType = "interval"
)

// Schedule is a tagged recurrence rule. Only the field matching Type is
// meaningful; the rest stay zero.
type Schedule struct {
	Type          ScheduleType `json:"type"`
	DaysOfWeek    []int        `json:"daysOfWeek,omitempty"`    // 0=Sun..6=Sat for specific_days
	TimesPerMonth int          `json:"timesPerMonth,omitempty"` // for x_per_month
	IntervalDays  int          `json:"intervalDays,omitempty"`  // for interval (every N days)
}

// Habit represents a recurring practice to track.
//
// Frequency is the legacy daily/weekly tag kept for records created before
// structured schedules existed; when Schedule is nil it is the only recurrence
// information available.
type Habit struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Frequency    string    `json:"frequency"` // "daily" or "weekly"
	Schedule     *Schedule `json:"schedule,omitempty"`
	Goal         int       `json:"goal,omitempty"` // target completions per week
	Category     Category  `json:"category"`
	ReminderTime string    `json:"reminderTime,omitempty"` // HH:MM format
	PlaylistURL  string    `json:"playlistUrl,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// HabitTemplate is a predefined habit the user can pick from when creating.
type HabitTemplate struct {
	Name        string
	Description string
	Category    Category
	Frequency   string
	Goal        int
}

var HabitTemplates = []HabitTemplate{
	{Name: "Drink Water", Description: "8 glasses of water", Category: CategoryHealth, Frequency: "daily"},
	{Name: "Meditate", Description: "10 minutes meditation", Category: CategoryHealth, Frequency: "daily"},
	{Name: "Exercise", Description: "30 min workout", Category: CategoryFitness, Frequency: "daily"},
	{Name: "Read", Description: "30 minutes reading", Category: CategoryLearning, Frequency: "daily"},
	{Name: "Journal", Description: "Write in journal", Category: CategoryPersonal, Frequency: "daily"},
	{Name: "Sleep 8hrs", Description: "Get 8 hours of sleep", Category: CategoryHealth, Frequency: "daily"},
	{Name: "No Social Media", Description: "Avoid social media", Category: CategoryPersonal, Frequency: "daily"},
	{Name: "Walk 10k Steps", Description: "10,000 steps", Category: CategoryFitness, Frequency: "daily"},
	{Name: "Learn Something New", Description: "Learn a new concept or skill", Category: CategoryLearning, Frequency: "daily"},
	{Name: "Gratitude List", Description: "Write 3 things you're grateful for", Category: CategoryPersonal, Frequency: "daily"},
}
