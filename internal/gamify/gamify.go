package gamify

import (
	"time"

	"cadence/internal/constants"
	"cadence/internal/models"
	"cadence/internal/stats"
	"cadence/internal/utils"
)

// ApplyXP adds delta to the profile's XP, clamping the total at zero, and
// recomputes the level. Negative deltas never undo past milestone bonuses.
func ApplyXP(profile *models.Profile, delta int) {
	xp := profile.XP + delta
	if xp < 0 {
		xp = 0
	}
	profile.XP = xp
	profile.Level = xp/constants.XPPerLevel + 1
}

// CompletionBonus returns the milestone bonus earned when a completion brings
// the habit's current streak to exactly the given value. Zero otherwise.
func CompletionBonus(currentStreak int) int {
	switch currentStreak {
	case constants.Streak7Milestone:
		return constants.XPStreak7Bonus
	case constants.Streak30Milestone:
		return constants.XPStreak30Bonus
	default:
		return 0
	}
}

// CheckAchievements evaluates the unlock catalog against the current state
// and appends any newly earned achievements to the profile, stamped with now.
// Unlocks are monotonic: already-unlocked ids are never re-added or revoked.
// Returns true if the profile changed.
func CheckAchievements(profile *models.Profile, habits []models.Habit, completions []models.Completion, now time.Time) bool {
	unlocked := make(map[string]bool, len(profile.Achievements))
	for _, a := range profile.Achievements {
		unlocked[a.ID] = true
	}

	changed := false
	tryUnlock := func(id string) {
		if unlocked[id] {
			return
		}
		for _, def := range models.AchievementDefs {
			if def.ID == id {
				def.UnlockedAt = now.Format(time.RFC3339)
				profile.Achievements = append(profile.Achievements, def)
				unlocked[id] = true
				changed = true
				return
			}
		}
	}

	if len(habits) >= 1 {
		tryUnlock("first_habit")
	}
	if len(habits) >= 10 {
		tryUnlock("habits_10")
	}

	for _, h := range habits {
		s := stats.Compute(h, completions, now)
		if s.CurrentStreak >= 7 || s.BestStreak >= 7 {
			tryUnlock("streak_7")
		}
		if s.CurrentStreak >= 30 || s.BestStreak >= 30 {
			tryUnlock("streak_30")
		}
	}

	if perfectWeek(habits, completions, now) {
		tryUnlock("perfect_week")
	}

	if profile.Level >= 5 {
		tryUnlock("level_5")
	}
	if profile.Level >= 10 {
		tryUnlock("level_10")
	}

	return changed
}

// perfectWeek reports whether every habit was completed on each of the last
// seven days, today inclusive. Requires at least one habit.
func perfectWeek(habits []models.Habit, completions []models.Completion, now time.Time) bool {
	if len(habits) == 0 {
		return false
	}

	done := make(map[string]map[string]bool)
	for _, c := range completions {
		if done[c.HabitID] == nil {
			done[c.HabitID] = make(map[string]bool)
		}
		done[c.HabitID][c.Day] = true
	}

	for i := 0; i < 7; i++ {
		day := utils.DateStr(utils.Midnight(now).AddDate(0, 0, -i))
		for _, h := range habits {
			if !done[h.ID][day] {
				return false
			}
		}
	}
	return true
}
