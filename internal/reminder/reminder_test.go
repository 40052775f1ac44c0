package reminder

import (
	"testing"
	"time"

	"cadence/internal/models"
)

type fakeNotifier struct {
	fired chan string
}

func (f *fakeNotifier) RequestPermission() error { return nil }

func (f *fakeNotifier) Notify(title, body string) error {
	f.fired <- title + "|" + body
	return nil
}

func newTestScheduler(isCompleted func(habitID, day string) bool, at time.Time) (*Scheduler, *fakeNotifier) {
	n := &fakeNotifier{fired: make(chan string, 10)}
	s := New(n, isCompleted)
	s.SetNowFunc(func() time.Time { return at })
	s.SetInterval(time.Hour)
	return s, n
}

func neverCompleted(string, string) bool { return false }

func TestReminderFires(t *testing.T) {
	at := time.Date(2026, time.March, 2, 9, 30, 0, 0, time.Local)
	s, n := newTestScheduler(neverCompleted, at)
	defer s.Stop()

	s.Reset([]models.Habit{{
		ID:           "h1",
		Name:         "Meditate",
		Description:  "10 minutes of breathing",
		ReminderTime: "09:30",
	}})

	select {
	case msg := <-n.fired:
		want := "Meditate|Time to: 10 minutes of breathing"
		if msg != want {
			t.Errorf("notification = %q, want %q", msg, want)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("reminder did not fire at its scheduled minute")
	}
}

func TestReminderBodyFallsBackToName(t *testing.T) {
	at := time.Date(2026, time.March, 2, 7, 0, 0, 0, time.Local)
	s, n := newTestScheduler(neverCompleted, at)
	defer s.Stop()

	s.Reset([]models.Habit{{ID: "h1", Name: "Run", ReminderTime: "07:00"}})

	select {
	case msg := <-n.fired:
		if msg != "Run|Time to: Run" {
			t.Errorf("notification = %q", msg)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("reminder did not fire")
	}
}

func TestReminderSkipsWrongMinute(t *testing.T) {
	at := time.Date(2026, time.March, 2, 9, 31, 0, 0, time.Local)
	s, n := newTestScheduler(neverCompleted, at)
	defer s.Stop()

	s.Reset([]models.Habit{{ID: "h1", Name: "Meditate", ReminderTime: "09:30"}})

	select {
	case msg := <-n.fired:
		t.Fatalf("unexpected notification %q outside the scheduled minute", msg)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestReminderSuppressedWhenCompleted(t *testing.T) {
	at := time.Date(2026, time.March, 2, 9, 30, 0, 0, time.Local)
	completed := func(habitID, day string) bool {
		return habitID == "h1" && day == "2026-03-02"
	}
	s, n := newTestScheduler(completed, at)
	defer s.Stop()

	s.Reset([]models.Habit{{ID: "h1", Name: "Meditate", ReminderTime: "09:30"}})

	select {
	case msg := <-n.fired:
		t.Fatalf("unexpected notification %q for an already-completed habit", msg)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestResetReplacesTasks(t *testing.T) {
	at := time.Date(2026, time.March, 2, 23, 0, 0, 0, time.Local)
	s, _ := newTestScheduler(neverCompleted, at)
	defer s.Stop()

	s.Reset([]models.Habit{
		{ID: "h1", Name: "A", ReminderTime: "06:00"},
		{ID: "h2", Name: "B", ReminderTime: "07:00"},
	})
	if got := len(s.Active()); got != 2 {
		t.Fatalf("Active() = %d tasks, want 2", got)
	}

	// A second Reset tears the old set down wholesale.
	s.Reset([]models.Habit{{ID: "h3", Name: "C", ReminderTime: "08:00"}})
	active := s.Active()
	if len(active) != 1 || active[0] != "h3" {
		t.Errorf("Active() = %v, want only h3", active)
	}

	s.Reset(nil)
	if got := len(s.Active()); got != 0 {
		t.Errorf("Active() after empty Reset = %d, want 0", got)
	}
}

func TestResetSkipsHabitsWithoutReminders(t *testing.T) {
	at := time.Date(2026, time.March, 2, 23, 0, 0, 0, time.Local)
	s, _ := newTestScheduler(neverCompleted, at)
	defer s.Stop()

	s.Reset([]models.Habit{
		{ID: "h1", Name: "No reminder"},
		{ID: "h2", Name: "Bad time", ReminderTime: "noon"},
		{ID: "h3", Name: "Good", ReminderTime: "08:00"},
	})

	active := s.Active()
	if len(active) != 1 || active[0] != "h3" {
		t.Errorf("Active() = %v, want only h3", active)
	}
}

func TestStopWaitsForTasks(t *testing.T) {
	at := time.Date(2026, time.March, 2, 23, 0, 0, 0, time.Local)
	s, _ := newTestScheduler(neverCompleted, at)

	s.Reset([]models.Habit{{ID: "h1", Name: "A", ReminderTime: "06:00"}})
	s.Stop()

	if got := len(s.Active()); got != 0 {
		t.Errorf("Active() after Stop = %d, want 0", got)
	}
}
