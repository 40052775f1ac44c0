package insights

import (
	"fmt"
	"math"
	"time"

	"cadence/internal/models"
	"cadence/internal/utils"
)

var dayNames = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// Generate scans the ledger for behavioral patterns and returns an ordered
// list of human-readable insight strings: per-habit insights in habit order,
// then one global insight. When nothing qualifies it returns a single generic
// encouragement.
func Generate(habits []models.Habit, completions []models.Completion, today time.Time) []string {
	var out []string

	for _, habit := range habits {
		var habitCompletions []models.Completion
		done := make(map[string]bool)
		for _, c := range completions {
			if c.HabitID == habit.ID {
				habitCompletions = append(habitCompletions, c)
				done[c.Day] = true
			}
		}
		if len(habitCompletions) < 3 {
			continue
		}

		// Per-weekday completion rate over the trailing 30 days.
		var dayCount, dayTotal [7]int
		for i := 0; i < 30; i++ {
			day := utils.Midnight(today).AddDate(0, 0, -i)
			dow := int(day.Weekday())
			dayTotal[dow]++
			if done[utils.DateStr(day)] {
				dayCount[dow]++
			}
		}

		var rates [7]float64
		for i := range rates {
			if dayTotal[i] > 0 {
				rates[i] = float64(dayCount[i]) / float64(dayTotal[i])
			}
		}

		bestDay, worstDay := 0, 0
		for i := 1; i < 7; i++ {
			if rates[i] > rates[bestDay] {
				bestDay = i
			}
			if rates[i] < rates[worstDay] {
				worstDay = i
			}
		}

		if rates[bestDay] > 0.7 {
			out = append(out, fmt.Sprintf("Your best day for %q is %s (%d%% completion)",
				habit.Name, dayNames[bestDay], int(math.Round(rates[bestDay]*100))))
		}
		if rates[worstDay] < 0.3 && dayTotal[worstDay] > 0 {
			out = append(out, fmt.Sprintf("You tend to skip %q on %ss", habit.Name, dayNames[worstDay]))
		}

		// Month-over-month trend by raw calendar month. Anchor the previous
		// month at its first day so month-end dates don't normalize forward
		// (Mar 31 minus one month would land on Mar 3).
		thisMonth, lastMonth := 0, 0
		prev := time.Date(today.Year(), today.Month()-1, 1, 0, 0, 0, 0, today.Location())
		for _, c := range habitCompletions {
			day, err := utils.ParseDate(c.Day)
			if err != nil {
				continue
			}
			if day.Month() == today.Month() && day.Year() == today.Year() {
				thisMonth++
			}
			if day.Month() == prev.Month() && day.Year() == prev.Year() {
				lastMonth++
			}
		}
		if lastMonth > 0 && thisMonth > lastMonth {
			improvement := int(math.Round(float64(thisMonth-lastMonth) / float64(lastMonth) * 100))
			if improvement > 10 {
				out = append(out, fmt.Sprintf("You've improved %q completion by %d%% this month!",
					habit.Name, improvement))
			}
		}
	}

	// Most productive weekday across all habits.
	if len(habits) > 0 {
		perDate := make(map[string]int)
		for _, c := range completions {
			perDate[c.Day]++
		}

		var overall [7]int
		for i := 0; i < 30; i++ {
			day := utils.Midnight(today).AddDate(0, 0, -i)
			overall[int(day.Weekday())] += perDate[utils.DateStr(day)]
		}

		best := 0
		for i := 1; i < 7; i++ {
			if overall[i] > overall[best] {
				best = i
			}
		}
		out = append(out, fmt.Sprintf("Your most productive day overall is %s", dayNames[best]))
	}

	if len(out) == 0 {
		out = append(out, "Keep tracking your habits to get personalized insights!")
	}

	return out
}
