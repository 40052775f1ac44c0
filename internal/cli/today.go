package cli

import (
	"fmt"
	"math"
	"time"

	"cadence/internal/utils"
)

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}
	return printDay(ctx, time.Now())
}

type DayCmd struct {
	Date string `arg:"" help:"Day to show (YYYY-MM-DD)."`
}

func (c *DayCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	date, err := utils.ParseDate(c.Date)
	if err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", c.Date)
	}
	return printDay(ctx, date)
}

func printDay(ctx *Context, date time.Time) error {
	day := utils.DateStr(date)
	due := ctx.Tracker.DueOn(date)

	fmt.Println(titleStyle.Render(date.Format("Monday, January 2")))

	if len(due) == 0 {
		fmt.Println("Nothing due.")
		return nil
	}

	for _, habit := range due {
		if completion, ok := ctx.Tracker.GetCompletion(habit.ID, day); ok {
			line := doneStyle.Render("✓") + " " + habit.Name
			if completion.Mood != "" {
				line += " " + string(completion.Mood)
			}
			fmt.Println(line)
			if completion.Note != "" {
				fmt.Printf("    %s\n", mutedStyle.Render(completion.Note))
			}
		} else {
			fmt.Println(pendingStyle.Render("○ " + habit.Name))
		}
	}

	rate := ctx.Tracker.CompletionRateForDate(date)
	fmt.Printf("\n%d%% complete\n", int(math.Round(rate*100)))
	return nil
}
