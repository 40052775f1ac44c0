package schedule

import (
	"time"

	"cadence/internal/models"
	"cadence/internal/utils"
)

// IsDue reports whether a habit should be presented as actionable on the
// given date. It is pure and never fails: a habit with no structured schedule
// (or an unrecognized schedule type) is due every day, matching the behavior
// of legacy daily/weekly records.
func IsDue(habit models.Habit, date time.Time) bool {
	sched := habit.Schedule
	if sched == nil {
		return true
	}

	switch sched.Type {
	case models.ScheduleDaily:
		return true
	case models.ScheduleWeekly:
		// Shown every day; the weekly target lives in the goal denominator.
		return true
	case models.ScheduleXPerMonth:
		// Always shown, user decides when.
		return true
	case models.ScheduleSpecificDays:
		weekday := int(date.Weekday())
		for _, d := range sched.DaysOfWeek {
			if d == weekday {
				return true
			}
		}
		return false
	case models.ScheduleInterval:
		interval := sched.IntervalDays
		if interval < 1 {
			interval = 1
		}
		// Cadence is anchored to the habit's creation day, so two interval
		// habits created on different days land on different "on" days.
		diffDays := utils.DaysBetween(habit.CreatedAt, date)
		return diffDays >= 0 && diffDays%interval == 0
	default:
		return true
	}
}

// DueHabits filters habits down to those due on the given date.
func DueHabits(habits []models.Habit, date time.Time) []models.Habit {
	var due []models.Habit
	for _, h := range habits {
		if IsDue(h, date) {
			due = append(due, h)
		}
	}
	return due
}
