package stats

import (
	"math"
	"sort"
	"time"

	"cadence/internal/models"
	"cadence/internal/utils"
)

// Compute derives streak and adherence statistics for one habit from the full
// completion set. It is a pure function of (habit, completions, today) and is
// safe to recompute on every read.
func Compute(habit models.Habit, completions []models.Completion, today time.Time) models.HabitStats {
	result := models.HabitStats{
		HabitID:   habit.ID,
		HabitName: habit.Name,
	}

	done := make(map[string]bool)
	for _, c := range completions {
		if c.HabitID == habit.ID {
			done[c.Day] = true
		}
	}

	todayStr := utils.DateStr(today)

	// Current streak: walk backward from today counting consecutive completed
	// days. Today itself is skipped (not broken) when still incomplete.
	currentStreak := 0
	check := utils.Midnight(today)
	for {
		dayStr := utils.DateStr(check)
		if done[dayStr] {
			currentStreak++
			check = check.AddDate(0, 0, -1)
		} else if dayStr == todayStr {
			check = check.AddDate(0, 0, -1)
		} else {
			break
		}
	}
	result.CurrentStreak = currentStreak

	// Best streak: longest run of consecutive days over the sorted distinct
	// completion dates.
	days := make([]string, 0, len(done))
	for d := range done {
		days = append(days, d)
	}
	sort.Strings(days)

	bestStreak := 0
	streak := 0
	var prev time.Time
	for i, dayStr := range days {
		day, err := utils.ParseDate(dayStr)
		if err != nil {
			continue
		}
		if i == 0 || utils.DaysBetween(prev, day) != 1 {
			streak = 1
		} else {
			streak++
		}
		if streak > bestStreak {
			bestStreak = streak
		}
		prev = day
	}
	if currentStreak > bestStreak {
		bestStreak = currentStreak
	}
	result.BestStreak = bestStreak

	weekCount := countTrailing(done, today, 7)
	monthCount := countTrailing(done, today, 30)
	result.WeeklyRate = roundPct(weekCount, 7)
	result.MonthlyRate = roundPct(monthCount, 30)

	goal := habit.Goal
	if goal == 0 {
		if habit.Frequency == "daily" {
			goal = 7
		} else {
			goal = 1
		}
	}
	progress := roundPct(weekCount, goal)
	if progress > 100 {
		progress = 100
	}
	result.GoalProgress = progress

	return result
}

// WeeklyCounts returns completion counts for the four trailing 7-day windows
// ending today, oldest week first.
func WeeklyCounts(habitID string, completions []models.Completion, today time.Time) []int {
	done := make(map[string]bool)
	for _, c := range completions {
		if c.HabitID == habitID {
			done[c.Day] = true
		}
	}

	counts := make([]int, 0, 4)
	for w := 3; w >= 0; w-- {
		count := 0
		for i := 0; i < 7; i++ {
			day := utils.Midnight(today).AddDate(0, 0, -(w*7 + i))
			if done[utils.DateStr(day)] {
				count++
			}
		}
		counts = append(counts, count)
	}
	return counts
}

// MoodSeries returns the average mood score (1-5, one decimal) for each of the
// trailing 7 days, oldest first. Days without mood-tagged completions score 0.
func MoodSeries(completions []models.Completion, today time.Time) []float64 {
	series := make([]float64, 0, 7)
	for i := 6; i >= 0; i-- {
		day := utils.DateStr(utils.Midnight(today).AddDate(0, 0, -i))
		sum, n := 0, 0
		for _, c := range completions {
			if c.Day != day || c.Mood == "" {
				continue
			}
			score, ok := models.MoodScores[c.Mood]
			if !ok {
				score = 3
			}
			sum += score
			n++
		}
		if n == 0 {
			series = append(series, 0)
			continue
		}
		series = append(series, math.Round(float64(sum)/float64(n)*10)/10)
	}
	return series
}

func countTrailing(done map[string]bool, today time.Time, days int) int {
	count := 0
	for i := 0; i < days; i++ {
		day := utils.Midnight(today).AddDate(0, 0, -i)
		if done[utils.DateStr(day)] {
			count++
		}
	}
	return count
}

func roundPct(count, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}
