package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cadence/internal/models"
	"cadence/internal/storage"
	"cadence/internal/tracker"
)

type Context struct {
	Store   storage.Provider
	Tracker *tracker.Service
}

// Load reads all aggregates from the store. Commands call this before
// touching the tracker.
func (c *Context) Load() error {
	return c.Tracker.Load()
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	streakStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// ParseWeekdays parses a comma-separated list of weekdays into 0-6 indices
// (0=Sunday).
func ParseWeekdays(s string) ([]int, error) {
	dayMap := map[string]int{
		"sun": 0, "sunday": 0,
		"mon": 1, "monday": 1,
		"tue": 2, "tuesday": 2,
		"wed": 3, "wednesday": 3,
		"thu": 4, "thursday": 4,
		"fri": 5, "friday": 5,
		"sat": 6, "saturday": 6,
	}

	var days []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		if d, ok := dayMap[part]; ok {
			days = append(days, d)
			continue
		}
		num, err := strconv.Atoi(part)
		if err != nil || num < 0 || num > 6 {
			return nil, fmt.Errorf("invalid weekday: %s", part)
		}
		days = append(days, num)
	}

	return days, nil
}

var shortDayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// FormatSchedule formats a habit's recurrence rule into a human-readable string.
func FormatSchedule(habit models.Habit) string {
	sched := habit.Schedule
	if sched == nil {
		if habit.Frequency != "" {
			return habit.Frequency
		}
		return "daily"
	}
	switch sched.Type {
	case models.ScheduleDaily:
		return "daily"
	case models.ScheduleWeekly:
		return "weekly"
	case models.ScheduleSpecificDays:
		var days []string
		for _, d := range sched.DaysOfWeek {
			if d >= 0 && d <= 6 {
				days = append(days, shortDayNames[d])
			}
		}
		return "on " + strings.Join(days, ",")
	case models.ScheduleXPerMonth:
		return fmt.Sprintf("%dx per month", sched.TimesPerMonth)
	case models.ScheduleInterval:
		return fmt.Sprintf("every %d days", sched.IntervalDays)
	default:
		return string(sched.Type)
	}
}
