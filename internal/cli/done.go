package cli

import (
	"fmt"

	"cadence/internal/models"
	"cadence/internal/utils"
	"cadence/internal/validation"
)

type DoneCmd struct {
	Name string `arg:"" help:"Habit name."`
	Date string `help:"Day to toggle (YYYY-MM-DD, default today)."`
	Note string `help:"Note to attach to the completion."`
	Mood string `help:"Mood to attach (😊 🔥 😐 😤 😔)."`
}

func (c *DoneCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	habit, ok := ctx.Tracker.HabitByName(c.Name)
	if !ok {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	day, err := resolveDay(c.Date)
	if err != nil {
		return err
	}
	if err := validation.ValidateMood(models.Mood(c.Mood)); err != nil {
		return err
	}

	completed, err := ctx.Tracker.ToggleCompletion(habit.ID, day, c.Note, models.Mood(c.Mood))
	if err != nil {
		return err
	}

	if completed {
		result := ctx.Tracker.Stats(habit.ID)
		msg := fmt.Sprintf("Completed %s for %s", habit.Name, day)
		if result.CurrentStreak > 1 {
			msg += "  " + streakStyle.Render(fmt.Sprintf("🔥%d day streak", result.CurrentStreak))
		}
		fmt.Println(doneStyle.Render("✓") + " " + msg)
	} else {
		fmt.Printf("Removed completion of %s for %s\n", habit.Name, day)
	}
	return nil
}

type NoteCmd struct {
	Name string `arg:"" help:"Habit name."`
	Date string `help:"Completion day (YYYY-MM-DD, default today)."`
	Note string `help:"New note text."`
	Mood string `help:"New mood (😊 🔥 😐 😤 😔)."`
}

func (c *NoteCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	habit, ok := ctx.Tracker.HabitByName(c.Name)
	if !ok {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	day, err := resolveDay(c.Date)
	if err != nil {
		return err
	}
	if err := validation.ValidateMood(models.Mood(c.Mood)); err != nil {
		return err
	}

	if _, ok := ctx.Tracker.GetCompletion(habit.ID, day); !ok {
		fmt.Printf("No completion of %s recorded for %s\n", habit.Name, day)
		return nil
	}

	if err := ctx.Tracker.UpdateCompletionMeta(habit.ID, day, c.Note, models.Mood(c.Mood)); err != nil {
		return err
	}

	fmt.Printf("Updated completion of %s for %s\n", habit.Name, day)
	return nil
}

func resolveDay(flag string) (string, error) {
	if flag == "" {
		return utils.Today(), nil
	}
	if !utils.ValidateDateFormat(flag) {
		return "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", flag)
	}
	return flag, nil
}
