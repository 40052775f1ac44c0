package cli

import (
	"fmt"
	"strings"

	"cadence/internal/models"
)

type StatsCmd struct {
	Name  string `arg:"" optional:"" help:"Show a single habit's stats."`
	Weeks bool   `help:"Show completion counts for the four trailing weeks."`
	Mood  bool   `help:"Show the trailing 7-day mood averages."`
}

func (c *StatsCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	if c.Mood {
		printMoodSeries(ctx.Tracker.MoodSeries())
		return nil
	}

	var habits []models.Habit
	if c.Name != "" {
		habit, ok := ctx.Tracker.HabitByName(c.Name)
		if !ok {
			return fmt.Errorf("habit %q not found", c.Name)
		}
		habits = []models.Habit{habit}
	} else {
		habits = ctx.Tracker.Habits()
	}

	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	for _, habit := range habits {
		result := ctx.Tracker.Stats(habit.ID)
		fmt.Println(titleStyle.Render(habit.Name))
		fmt.Printf("  streak: %s (best: %d)\n", streakStyle.Render(fmt.Sprintf("🔥%d", result.CurrentStreak)), result.BestStreak)
		fmt.Printf("  weekly: %d%%  monthly: %d%%  goal: %d%%\n", result.WeeklyRate, result.MonthlyRate, result.GoalProgress)
		if c.Weeks {
			counts := ctx.Tracker.WeeklyCounts(habit.ID)
			parts := make([]string, len(counts))
			for i, n := range counts {
				parts[i] = fmt.Sprintf("%d", n)
			}
			fmt.Printf("  last 4 weeks: %s\n", strings.Join(parts, " "))
		}
	}

	return nil
}

func printMoodSeries(series []float64) {
	fmt.Println(titleStyle.Render("Mood (trailing 7 days)"))
	for _, avg := range series {
		if avg == 0 {
			fmt.Println("  -")
			continue
		}
		fmt.Printf("  %.1f %s\n", avg, mutedStyle.Render(strings.Repeat("▪", int(avg))))
	}
}
