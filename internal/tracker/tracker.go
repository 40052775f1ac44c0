package tracker

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"cadence/internal/constants"
	"cadence/internal/gamify"
	"cadence/internal/insights"
	"cadence/internal/logger"
	"cadence/internal/models"
	"cadence/internal/schedule"
	"cadence/internal/stats"
	"cadence/internal/storage"
	"cadence/internal/utils"
)

// Service owns the four aggregates (habits, completions, profile,
// preferences) and is the single mutation path for all of them. Every
// mutating operation persists the touched aggregate before returning, so the
// store never lags the in-memory state by more than one operation.
type Service struct {
	store storage.Provider

	habits      []models.Habit
	completions []models.Completion
	profile     models.Profile
	preferences map[string]any

	now             func() time.Time
	onHabitsChanged func([]models.Habit)
}

func New(store storage.Provider) *Service {
	return &Service{
		store:       store,
		profile:     models.NewProfile(),
		preferences: defaultPreferences(),
		now:         time.Now,
	}
}

func defaultPreferences() map[string]any {
	return map[string]any{"darkMode": true}
}

// SetNowFunc overrides the clock, primarily for tests.
func (s *Service) SetNowFunc(now func() time.Time) {
	s.now = now
}

// OnHabitsChanged registers a callback invoked after any change to the habit
// collection. The reminder scheduler uses it to tear down and rebuild timers.
func (s *Service) OnHabitsChanged(fn func([]models.Habit)) {
	s.onHabitsChanged = fn
}

// Load reads the four aggregates from the store. A missing or malformed blob
// falls back to an empty/default aggregate rather than failing: persisted
// corruption must never make the tracker unusable.
func (s *Service) Load() error {
	if err := s.store.Load(); err != nil {
		return err
	}

	s.habits = s.loadHabits()
	s.completions = s.loadCompletions()
	s.profile = s.loadProfile()
	s.preferences = s.loadPreferences()
	return nil
}

func (s *Service) loadHabits() []models.Habit {
	var habits []models.Habit
	if !s.loadBlob(constants.HabitsKey, &habits) {
		return []models.Habit{}
	}
	// Migrate records from before categories existed
	for i := range habits {
		if habits[i].Category == "" {
			habits[i].Category = models.CategoryPersonal
		}
	}
	return habits
}

func (s *Service) loadCompletions() []models.Completion {
	var completions []models.Completion
	if !s.loadBlob(constants.CompletionsKey, &completions) {
		return []models.Completion{}
	}
	return completions
}

func (s *Service) loadProfile() models.Profile {
	var profile models.Profile
	if !s.loadBlob(constants.ProfileKey, &profile) {
		return models.NewProfile()
	}
	if profile.Achievements == nil {
		profile.Achievements = []models.Achievement{}
	}
	if profile.Level < 1 {
		profile.Level = profile.XP/constants.XPPerLevel + 1
	}
	return profile
}

func (s *Service) loadPreferences() map[string]any {
	var prefs map[string]any
	if !s.loadBlob(constants.PrefsKey, &prefs) || prefs == nil {
		return defaultPreferences()
	}
	return prefs
}

func (s *Service) loadBlob(key string, v any) bool {
	data, ok, err := s.store.Get(key)
	if err != nil {
		logger.Warn("Failed to read aggregate, using default", "key", key, "error", err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(data), v); err != nil {
		logger.Warn("Malformed aggregate, using default", "key", key, "error", err)
		return false
	}
	return true
}

func (s *Service) saveBlob(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", key, err)
	}
	if err := s.store.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to persist %s: %w", key, err)
	}
	return nil
}

func (s *Service) saveHabits() error      { return s.saveBlob(constants.HabitsKey, s.habits) }
func (s *Service) saveCompletions() error { return s.saveBlob(constants.CompletionsKey, s.completions) }
func (s *Service) saveProfile() error     { return s.saveBlob(constants.ProfileKey, s.profile) }
func (s *Service) savePreferences() error { return s.saveBlob(constants.PrefsKey, s.preferences) }

func (s *Service) habitsChanged() {
	if s.onHabitsChanged != nil {
		s.onHabitsChanged(s.Habits())
	}
}

// Habits returns a copy of the habit collection.
func (s *Service) Habits() []models.Habit {
	habits := make([]models.Habit, len(s.habits))
	copy(habits, s.habits)
	return habits
}

// Habit looks up a habit by id.
func (s *Service) Habit(id string) (models.Habit, bool) {
	for _, h := range s.habits {
		if h.ID == id {
			return h, true
		}
	}
	return models.Habit{}, false
}

// HabitByName looks up a habit by exact name.
func (s *Service) HabitByName(name string) (models.Habit, bool) {
	for _, h := range s.habits {
		if h.Name == name {
			return h, true
		}
	}
	return models.Habit{}, false
}

// AddHabit assigns the habit an id and creation timestamp, appends it, and
// persists. Name must be non-empty (validated at the CLI boundary, enforced
// here as a last line of defense).
func (s *Service) AddHabit(habit models.Habit) (models.Habit, error) {
	if habit.Name == "" {
		return models.Habit{}, fmt.Errorf("habit name cannot be empty")
	}
	if habit.Category == "" {
		habit.Category = models.CategoryPersonal
	}
	if habit.Frequency == "" {
		habit.Frequency = "daily"
	}

	habit.ID = uuid.New().String()
	habit.CreatedAt = s.now()

	s.habits = append(s.habits, habit)
	if err := s.saveHabits(); err != nil {
		return models.Habit{}, err
	}

	s.checkAchievements()
	s.habitsChanged()
	return habit, nil
}

// UpdateHabit replaces the stored habit with the same id. Identity fields
// (id, creation timestamp) are immutable and preserved from the stored copy.
func (s *Service) UpdateHabit(habit models.Habit) error {
	for i, h := range s.habits {
		if h.ID == habit.ID {
			habit.CreatedAt = h.CreatedAt
			s.habits[i] = habit
			if err := s.saveHabits(); err != nil {
				return err
			}
			s.habitsChanged()
			return nil
		}
	}
	return fmt.Errorf("habit not found: %s", habit.ID)
}

// DeleteHabit removes the habit and all of its completions as one unit.
func (s *Service) DeleteHabit(id string) error {
	found := false
	habits := s.habits[:0]
	for _, h := range s.habits {
		if h.ID == id {
			found = true
			continue
		}
		habits = append(habits, h)
	}
	if !found {
		return fmt.Errorf("habit not found: %s", id)
	}
	s.habits = habits

	completions := s.completions[:0]
	for _, c := range s.completions {
		if c.HabitID != id {
			completions = append(completions, c)
		}
	}
	s.completions = completions

	if err := s.saveHabits(); err != nil {
		return err
	}
	if err := s.saveCompletions(); err != nil {
		return err
	}
	s.habitsChanged()
	return nil
}

// ToggleCompletion flips the existence of the (habitID, day) completion. It
// returns true when the toggle resulted in a completion, false when it
// removed one. XP moves ±10 per toggle; a completion that brings the current
// streak to exactly 7 or 30 earns a one-time milestone bonus. Un-completing
// always subtracts a flat 10, even when the original completion carried a
// bonus.
func (s *Service) ToggleCompletion(habitID, day string, note string, mood models.Mood) (bool, error) {
	for i, c := range s.completions {
		if c.HabitID == habitID && c.Day == day {
			s.completions = append(s.completions[:i], s.completions[i+1:]...)
			if err := s.addXP(-constants.XPPerCompletion); err != nil {
				return false, err
			}
			return false, s.saveCompletions()
		}
	}

	s.completions = append(s.completions, models.Completion{
		HabitID: habitID,
		Day:     day,
		Note:    note,
		Mood:    mood,
	})

	if err := s.addXP(constants.XPPerCompletion); err != nil {
		return true, err
	}
	if habit, ok := s.Habit(habitID); ok {
		result := stats.Compute(habit, s.completions, s.now())
		if bonus := gamify.CompletionBonus(result.CurrentStreak); bonus > 0 {
			if err := s.addXP(bonus); err != nil {
				return true, err
			}
		}
	}
	s.checkAchievements()

	return true, s.saveCompletions()
}

// UpdateCompletionMeta mutates note/mood of an existing completion in place.
// Empty values leave the corresponding field untouched. A missing record is a
// no-op; metadata updates never move XP.
func (s *Service) UpdateCompletionMeta(habitID, day string, note string, mood models.Mood) error {
	for i, c := range s.completions {
		if c.HabitID == habitID && c.Day == day {
			if note != "" {
				s.completions[i].Note = note
			}
			if mood != "" {
				s.completions[i].Mood = mood
			}
			return s.saveCompletions()
		}
	}
	return nil
}

// IsCompleted reports whether a completion exists for the pair.
func (s *Service) IsCompleted(habitID, day string) bool {
	for _, c := range s.completions {
		if c.HabitID == habitID && c.Day == day {
			return true
		}
	}
	return false
}

// GetCompletion returns the completion record for the pair, if any.
func (s *Service) GetCompletion(habitID, day string) (models.Completion, bool) {
	for _, c := range s.completions {
		if c.HabitID == habitID && c.Day == day {
			return c, true
		}
	}
	return models.Completion{}, false
}

// CompletionsForDate returns all completions recorded for a day.
func (s *Service) CompletionsForDate(day string) []models.Completion {
	var out []models.Completion
	for _, c := range s.completions {
		if c.Day == day {
			out = append(out, c)
		}
	}
	return out
}

// Completions returns a copy of the full ledger.
func (s *Service) Completions() []models.Completion {
	completions := make([]models.Completion, len(s.completions))
	copy(completions, s.completions)
	return completions
}

// DueOn returns the habits due on the given date.
func (s *Service) DueOn(date time.Time) []models.Habit {
	return schedule.DueHabits(s.habits, date)
}

// Stats computes statistics for a habit. An unknown id yields a zero-valued
// record rather than an error.
func (s *Service) Stats(habitID string) models.HabitStats {
	habit, ok := s.Habit(habitID)
	if !ok {
		return models.HabitStats{HabitID: habitID}
	}
	return stats.Compute(habit, s.completions, s.now())
}

// WeeklyCounts returns the habit's completion counts over the four trailing
// weeks, oldest first.
func (s *Service) WeeklyCounts(habitID string) []int {
	return stats.WeeklyCounts(habitID, s.completions, s.now())
}

// MoodSeries returns the trailing-7-day average mood scores, oldest first.
func (s *Service) MoodSeries() []float64 {
	return stats.MoodSeries(s.completions, s.now())
}

// Insights generates the ordered behavioral insight strings.
func (s *Service) Insights() []string {
	return insights.Generate(s.habits, s.completions, s.now())
}

// CompletionRateForDate returns the fraction of due habits completed on the
// given date, in [0, 1]. Zero when nothing is due.
func (s *Service) CompletionRateForDate(date time.Time) float64 {
	due := s.DueOn(date)
	if len(due) == 0 {
		return 0
	}
	day := utils.DateStr(date)
	completed := 0
	for _, h := range due {
		if s.IsCompleted(h.ID, day) {
			completed++
		}
	}
	return float64(completed) / float64(len(due))
}

// Profile returns a copy of the gamification profile.
func (s *Service) Profile() models.Profile {
	profile := s.profile
	profile.Achievements = make([]models.Achievement, len(s.profile.Achievements))
	copy(profile.Achievements, s.profile.Achievements)
	return profile
}

// Preferences returns the open preference mapping.
func (s *Service) Preferences() map[string]any {
	prefs := make(map[string]any, len(s.preferences))
	for k, v := range s.preferences {
		prefs[k] = v
	}
	return prefs
}

// SetPreference stores a preference value and persists the mapping.
// Arbitrary keys are permitted for forward compatibility.
func (s *Service) SetPreference(key string, value any) error {
	s.preferences[key] = value
	return s.savePreferences()
}

func (s *Service) addXP(delta int) error {
	gamify.ApplyXP(&s.profile, delta)
	if err := s.saveProfile(); err != nil {
		return err
	}
	s.checkAchievements()
	return nil
}

func (s *Service) checkAchievements() {
	if gamify.CheckAchievements(&s.profile, s.habits, s.completions, s.now()) {
		if err := s.saveProfile(); err != nil {
			logger.Warn("Failed to persist profile after achievement unlock", "error", err)
		}
	}
}

// ShareText builds a plain-text progress summary suitable for sharing.
func (s *Service) ShareText() string {
	text := "🏆 My Habit Tracker Progress\n"
	text += fmt.Sprintf("📊 Level %d | %d XP\n", s.profile.Level, s.profile.XP)
	text += fmt.Sprintf("📋 %d habits tracked\n\n", len(s.habits))

	for _, h := range s.habits {
		result := s.Stats(h.ID)
		text += fmt.Sprintf("%s: 🔥%d day streak (best: %d)\n", h.Name, result.CurrentStreak, result.BestStreak)
	}

	text += fmt.Sprintf("\n🏅 %d achievements unlocked", len(s.profile.Achievements))
	return text
}
