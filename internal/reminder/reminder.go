package reminder

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"cadence/internal/constants"
	"cadence/internal/logger"
	"cadence/internal/models"
	"cadence/internal/utils"
)

// Notifier is the notification side-effect contract the scheduler fires into.
type Notifier interface {
	RequestPermission() error
	Notify(title, body string) error
}

// Scheduler runs one cancellable polling task per habit that has a reminder
// time. Reset tears every task down and installs a fresh set, so edits and
// deletions can never leave a stale task firing for an old habit.
type Scheduler struct {
	mu       sync.Mutex
	notifier Notifier

	isCompleted func(habitID, day string) bool
	now         func() time.Time
	interval    time.Duration

	stops map[string]chan struct{}
	wg    sync.WaitGroup
}

// New creates a scheduler. isCompleted is consulted at fire time so a habit
// completed earlier in the day suppresses its reminder.
func New(notifier Notifier, isCompleted func(habitID, day string) bool) *Scheduler {
	return &Scheduler{
		notifier:    notifier,
		isCompleted: isCompleted,
		now:         time.Now,
		interval:    constants.ReminderPollInterval,
		stops:       make(map[string]chan struct{}),
	}
}

// SetNowFunc overrides the clock, primarily for tests.
func (s *Scheduler) SetNowFunc(now func() time.Time) {
	s.now = now
}

// SetInterval overrides the polling interval, primarily for tests.
func (s *Scheduler) SetInterval(d time.Duration) {
	s.interval = d
}

// Reset cancels all running reminder tasks and installs one per habit with a
// reminder time. Must be called whenever the habit collection changes.
func (s *Scheduler) Reset(habits []models.Habit) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopAllLocked()

	for _, habit := range habits {
		if habit.ReminderTime == "" {
			continue
		}
		if !utils.ValidateTimeFormat(habit.ReminderTime) {
			logger.Warn("Skipping reminder with invalid time", "habit", habit.Name, "time", habit.ReminderTime)
			continue
		}

		stop := make(chan struct{})
		s.stops[habit.ID] = stop
		s.wg.Add(1)
		go s.run(habit, stop)
	}
}

// Stop cancels all reminder tasks and waits for them to exit.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	s.stopAllLocked()
	s.mu.Unlock()
	s.wg.Wait()
}

// Active returns the habit ids that currently have a reminder task.
func (s *Scheduler) Active() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.stops))
	for id := range s.stops {
		ids = append(ids, id)
	}
	return ids
}

func (s *Scheduler) stopAllLocked() {
	for id, stop := range s.stops {
		close(stop)
		delete(s.stops, id)
	}
}

func (s *Scheduler) run(habit models.Habit, stop <-chan struct{}) {
	defer s.wg.Done()

	// Check immediately so a reminder due this minute is not missed
	s.checkAndNotify(habit)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.checkAndNotify(habit)
		}
	}
}

func (s *Scheduler) checkAndNotify(habit models.Habit) {
	hour, minute, ok := parseClock(habit.ReminderTime)
	if !ok {
		return
	}

	now := s.now()
	if now.Hour() != hour || now.Minute() != minute {
		return
	}
	if s.isCompleted(habit.ID, utils.DateStr(now)) {
		return
	}

	body := habit.Description
	if body == "" {
		body = habit.Name
	}
	if err := s.notifier.Notify(habit.Name, "Time to: "+body); err != nil {
		logger.Warn("Failed to deliver reminder", "habit", habit.Name, "error", err)
	}
}

func parseClock(timeStr string) (hour, minute int, ok bool) {
	parts := strings.SplitN(timeStr, ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return hour, minute, true
}
