package validation

import (
	"fmt"

	"cadence/internal/models"
	"cadence/internal/utils"
)

// ValidateHabit checks a habit's user-supplied fields before it reaches the
// tracker. The core assumes pre-validated input; this is the boundary.
func ValidateHabit(habit models.Habit) error {
	if habit.Name == "" {
		return fmt.Errorf("habit name cannot be empty")
	}

	if habit.Frequency != "" && habit.Frequency != "daily" && habit.Frequency != "weekly" {
		return fmt.Errorf("invalid frequency %q (expected daily or weekly)", habit.Frequency)
	}

	if habit.Category != "" && !validCategory(habit.Category) {
		return fmt.Errorf("invalid category %q", habit.Category)
	}

	if habit.Goal < 0 {
		return fmt.Errorf("goal cannot be negative")
	}

	if habit.ReminderTime != "" && !utils.ValidateTimeFormat(habit.ReminderTime) {
		return fmt.Errorf("invalid reminder time %q (expected HH:MM)", habit.ReminderTime)
	}

	if habit.Schedule != nil {
		if err := ValidateSchedule(*habit.Schedule); err != nil {
			return err
		}
	}

	return nil
}

// ValidateSchedule checks the fields of a structured recurrence rule.
func ValidateSchedule(sched models.Schedule) error {
	switch sched.Type {
	case models.ScheduleDaily, models.ScheduleWeekly:
		return nil
	case models.ScheduleSpecificDays:
		if len(sched.DaysOfWeek) == 0 {
			return fmt.Errorf("specific_days schedule requires at least one weekday")
		}
		for _, d := range sched.DaysOfWeek {
			if d < 0 || d > 6 {
				return fmt.Errorf("invalid weekday %d (expected 0-6)", d)
			}
		}
		return nil
	case models.ScheduleXPerMonth:
		if sched.TimesPerMonth < 1 {
			return fmt.Errorf("x_per_month schedule requires a positive timesPerMonth")
		}
		return nil
	case models.ScheduleInterval:
		if sched.IntervalDays < 1 {
			return fmt.Errorf("interval schedule requires a positive intervalDays")
		}
		return nil
	default:
		return fmt.Errorf("unknown schedule type %q", sched.Type)
	}
}

// ValidateMood checks a mood symbol against the fixed scale. Empty is valid
// (mood is optional).
func ValidateMood(mood models.Mood) error {
	if mood == "" {
		return nil
	}
	for _, m := range models.AllMoods {
		if m == mood {
			return nil
		}
	}
	return fmt.Errorf("invalid mood %q", mood)
}

func validCategory(category models.Category) bool {
	for _, c := range models.AllCategories {
		if c == category {
			return true
		}
	}
	return false
}
