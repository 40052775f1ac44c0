package tracker

import (
	"encoding/json"
	"time"

	"cadence/internal/logger"
	"cadence/internal/models"
)

// exportDoc is the full, self-describing snapshot of user data.
type exportDoc struct {
	Habits      []models.Habit      `json:"habits"`
	Completions []models.Completion `json:"completions"`
	Profile     models.Profile      `json:"profile"`
	Preferences map[string]any      `json:"preferences"`
	ExportedAt  string              `json:"exportedAt"`
}

// ExportAll serializes all four aggregates plus an export timestamp into one
// indented JSON document.
func (s *Service) ExportAll() (string, error) {
	doc := exportDoc{
		Habits:      s.Habits(),
		Completions: s.Completions(),
		Profile:     s.Profile(),
		Preferences: s.Preferences(),
		ExportedAt:  s.now().Format(time.RFC3339),
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ImportAll applies an export document field by field. Each of the four
// aggregates is applied independently when present and well-formed; a field
// that is absent leaves the current value untouched, and a field that fails
// to decode is skipped without touching its aggregate. The return value is
// false when the document itself is malformed or any present field failed to
// apply. Partial application is deliberate, matching the historical behavior.
func (s *Service) ImportAll(doc string) bool {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(doc), &fields); err != nil {
		logger.Warn("Import failed: malformed document", "error", err)
		return false
	}

	ok := true

	if raw, present := fields["habits"]; present {
		var habits []models.Habit
		if err := json.Unmarshal(raw, &habits); err != nil {
			logger.Warn("Import: skipping malformed habits field", "error", err)
			ok = false
		} else {
			s.habits = habits
			if err := s.saveHabits(); err != nil {
				logger.Warn("Import: failed to persist habits", "error", err)
				ok = false
			}
			s.habitsChanged()
		}
	}

	if raw, present := fields["completions"]; present {
		var completions []models.Completion
		if err := json.Unmarshal(raw, &completions); err != nil {
			logger.Warn("Import: skipping malformed completions field", "error", err)
			ok = false
		} else {
			s.completions = completions
			if err := s.saveCompletions(); err != nil {
				logger.Warn("Import: failed to persist completions", "error", err)
				ok = false
			}
		}
	}

	if raw, present := fields["profile"]; present {
		var profile models.Profile
		if err := json.Unmarshal(raw, &profile); err != nil {
			logger.Warn("Import: skipping malformed profile field", "error", err)
			ok = false
		} else {
			if profile.Achievements == nil {
				profile.Achievements = []models.Achievement{}
			}
			s.profile = profile
			if err := s.saveProfile(); err != nil {
				logger.Warn("Import: failed to persist profile", "error", err)
				ok = false
			}
		}
	}

	if raw, present := fields["preferences"]; present {
		var prefs map[string]any
		if err := json.Unmarshal(raw, &prefs); err != nil {
			logger.Warn("Import: skipping malformed preferences field", "error", err)
			ok = false
		} else {
			s.preferences = prefs
			if err := s.savePreferences(); err != nil {
				logger.Warn("Import: failed to persist preferences", "error", err)
				ok = false
			}
		}
	}

	return ok
}
