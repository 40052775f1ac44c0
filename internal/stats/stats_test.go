package stats

import (
	"testing"
	"time"

	"cadence/internal/models"
	"cadence/internal/utils"
)

var today = time.Date(2026, time.March, 2, 12, 0, 0, 0, time.Local)

func completionsOn(habitID string, offsets ...int) []models.Completion {
	var out []models.Completion
	for _, off := range offsets {
		out = append(out, models.Completion{
			HabitID: habitID,
			Day:     utils.DateStr(today.AddDate(0, 0, off)),
		})
	}
	return out
}

func TestComputeCurrentStreak(t *testing.T) {
	habit := models.Habit{ID: "h1", Name: "Read", Frequency: "daily"}

	t.Run("consecutive days ending today", func(t *testing.T) {
		result := Compute(habit, completionsOn("h1", 0, -1, -2), today)
		if result.CurrentStreak != 3 {
			t.Errorf("CurrentStreak = %d, want 3", result.CurrentStreak)
		}
	})

	t.Run("incomplete today does not break the streak", func(t *testing.T) {
		result := Compute(habit, completionsOn("h1", -1, -2), today)
		if result.CurrentStreak != 2 {
			t.Errorf("CurrentStreak = %d, want 2", result.CurrentStreak)
		}
	})

	t.Run("gap before yesterday breaks the streak", func(t *testing.T) {
		result := Compute(habit, completionsOn("h1", -2, -3), today)
		if result.CurrentStreak != 0 {
			t.Errorf("CurrentStreak = %d, want 0", result.CurrentStreak)
		}
	})

	t.Run("other habits do not contribute", func(t *testing.T) {
		result := Compute(habit, completionsOn("h2", 0, -1), today)
		if result.CurrentStreak != 0 {
			t.Errorf("CurrentStreak = %d, want 0", result.CurrentStreak)
		}
	})
}

func TestComputeBestStreak(t *testing.T) {
	habit := models.Habit{ID: "h1", Name: "Read", Frequency: "daily"}

	t.Run("longest historical run wins", func(t *testing.T) {
		// A 4-day run two weeks ago, current streak of 1.
		result := Compute(habit, completionsOn("h1", 0, -14, -15, -16, -17), today)
		if result.BestStreak != 4 {
			t.Errorf("BestStreak = %d, want 4", result.BestStreak)
		}
		if result.CurrentStreak != 1 {
			t.Errorf("CurrentStreak = %d, want 1", result.CurrentStreak)
		}
	})

	t.Run("never less than current streak", func(t *testing.T) {
		result := Compute(habit, completionsOn("h1", 0, -1, -2), today)
		if result.BestStreak < result.CurrentStreak {
			t.Errorf("BestStreak = %d < CurrentStreak = %d", result.BestStreak, result.CurrentStreak)
		}
	})

	t.Run("empty ledger", func(t *testing.T) {
		result := Compute(habit, nil, today)
		if result.CurrentStreak != 0 || result.BestStreak != 0 {
			t.Errorf("streaks = (%d, %d), want (0, 0)", result.CurrentStreak, result.BestStreak)
		}
	})
}

func TestComputeRates(t *testing.T) {
	habit := models.Habit{ID: "h1", Name: "Read", Frequency: "daily"}

	t.Run("full week", func(t *testing.T) {
		result := Compute(habit, completionsOn("h1", 0, -1, -2, -3, -4, -5, -6), today)
		if result.WeeklyRate != 100 {
			t.Errorf("WeeklyRate = %d, want 100", result.WeeklyRate)
		}
		if result.MonthlyRate != 23 { // 7/30 rounded
			t.Errorf("MonthlyRate = %d, want 23", result.MonthlyRate)
		}
	})

	t.Run("partial week rounds", func(t *testing.T) {
		result := Compute(habit, completionsOn("h1", 0, -2, -4), today)
		if result.WeeklyRate != 43 { // 3/7 rounded
			t.Errorf("WeeklyRate = %d, want 43", result.WeeklyRate)
		}
	})

	t.Run("completions outside the window are ignored", func(t *testing.T) {
		result := Compute(habit, completionsOn("h1", -8, -40), today)
		if result.WeeklyRate != 0 {
			t.Errorf("WeeklyRate = %d, want 0", result.WeeklyRate)
		}
		if result.MonthlyRate != 3 { // 1/30 rounded
			t.Errorf("MonthlyRate = %d, want 3", result.MonthlyRate)
		}
	})
}

func TestComputeGoalProgress(t *testing.T) {
	t.Run("explicit goal", func(t *testing.T) {
		habit := models.Habit{ID: "h1", Name: "Gym", Frequency: "weekly", Goal: 3}
		result := Compute(habit, completionsOn("h1", 0, -2), today)
		if result.GoalProgress != 67 { // 2/3 rounded
			t.Errorf("GoalProgress = %d, want 67", result.GoalProgress)
		}
	})

	t.Run("clamped at 100", func(t *testing.T) {
		habit := models.Habit{ID: "h1", Name: "Gym", Frequency: "weekly", Goal: 1}
		result := Compute(habit, completionsOn("h1", 0, -1, -2), today)
		if result.GoalProgress != 100 {
			t.Errorf("GoalProgress = %d, want 100", result.GoalProgress)
		}
	})

	t.Run("daily default goal is 7", func(t *testing.T) {
		habit := models.Habit{ID: "h1", Name: "Read", Frequency: "daily"}
		result := Compute(habit, completionsOn("h1", 0, -1, -2, -3, -4, -5, -6), today)
		if result.GoalProgress != 100 {
			t.Errorf("GoalProgress = %d, want 100", result.GoalProgress)
		}
	})

	t.Run("non-daily default goal is 1", func(t *testing.T) {
		habit := models.Habit{ID: "h1", Name: "Gym", Frequency: "weekly"}
		result := Compute(habit, completionsOn("h1", -3), today)
		if result.GoalProgress != 100 {
			t.Errorf("GoalProgress = %d, want 100", result.GoalProgress)
		}
	})
}

func TestWeeklyCounts(t *testing.T) {
	// 2 in the current week, 1 in the week before, none earlier.
	completions := completionsOn("h1", 0, -3, -9)

	counts := WeeklyCounts("h1", completions, today)
	want := []int{0, 0, 1, 2}
	if len(counts) != len(want) {
		t.Fatalf("WeeklyCounts returned %d windows, want %d", len(counts), len(want))
	}
	for i := range want {
		if counts[i] != want[i] {
			t.Errorf("counts[%d] = %d, want %d", i, counts[i], want[i])
		}
	}
}

func TestMoodSeries(t *testing.T) {
	yesterday := utils.DateStr(today.AddDate(0, 0, -1))
	completions := []models.Completion{
		{HabitID: "h1", Day: yesterday, Mood: models.MoodHappy},   // 5
		{HabitID: "h2", Day: yesterday, Mood: models.MoodNeutral}, // 3
		{HabitID: "h3", Day: yesterday},                           // untagged, ignored
	}

	series := MoodSeries(completions, today)
	if len(series) != 7 {
		t.Fatalf("MoodSeries returned %d days, want 7", len(series))
	}
	if series[5] != 4.0 {
		t.Errorf("yesterday's average = %v, want 4.0", series[5])
	}
	if series[6] != 0 {
		t.Errorf("today's average = %v, want 0 (no moods)", series[6])
	}
}

func TestMoodSeriesUnknownMoodScoresNeutral(t *testing.T) {
	completions := []models.Completion{
		{HabitID: "h1", Day: utils.DateStr(today), Mood: "🤖"},
	}

	series := MoodSeries(completions, today)
	if series[6] != 3.0 {
		t.Errorf("unknown mood average = %v, want 3.0", series[6])
	}
}
