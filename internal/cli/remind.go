package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cadence/internal/logger"
	"cadence/internal/notifier"
	"cadence/internal/reminder"
)

type RemindCmd struct{}

// Run starts the reminder scheduler in the foreground. One polling task per
// habit with a reminder time; the set is rebuilt whenever habits change.
func (c *RemindCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	n := notifier.New()
	if err := n.RequestPermission(); err != nil {
		logger.Warn("Notification delivery unavailable", "error", err)
		fmt.Println("Warning: cadence-tray is not reachable; reminders will not be delivered.")
	}

	sched := reminder.New(n, ctx.Tracker.IsCompleted)
	ctx.Tracker.OnHabitsChanged(sched.Reset)
	sched.Reset(ctx.Tracker.Habits())
	defer sched.Stop()

	active := sched.Active()
	if len(active) == 0 {
		fmt.Println("No habits have reminder times set.")
		return nil
	}
	fmt.Printf("Watching %d reminder(s). Press Ctrl+C to stop.\n", len(active))

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	fmt.Println("\nStopping reminders.")
	return nil
}
