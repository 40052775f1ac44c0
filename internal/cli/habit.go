package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"cadence/internal/models"
	"cadence/internal/utils"
	"cadence/internal/validation"
)

type HabitCmd struct {
	Add       HabitAddCmd       `cmd:"" help:"Add a new habit."`
	List      HabitListCmd      `cmd:"" help:"List habits."`
	Edit      HabitEditCmd      `cmd:"" help:"Edit an existing habit."`
	Delete    HabitDeleteCmd    `cmd:"" help:"Delete a habit and its completions."`
	Log       HabitLogCmd       `cmd:"" help:"Show habit log (ASCII history)."`
	Templates HabitTemplatesCmd `cmd:"" help:"List predefined habit templates."`
}

type HabitAddCmd struct {
	Name        string `arg:"" optional:"" help:"Habit name."`
	Description string `help:"Habit description."`
	Category    string `help:"Category (Health, Work, Personal, Fitness, Learning, Custom)." default:"Personal"`
	Frequency   string `help:"Legacy frequency tag (daily or weekly)." default:"daily"`
	Schedule    string `help:"Schedule type (daily, weekly, specific_days, x_per_month, interval)."`
	Days        string `help:"Weekdays for specific_days schedules (e.g. mon,wed,fri)."`
	Times       int    `help:"Times per month for x_per_month schedules."`
	Every       int    `help:"Interval in days for interval schedules."`
	Goal        int    `help:"Weekly completion goal."`
	Remind      string `help:"Reminder time (HH:MM)."`
	Playlist    string `help:"Playlist link to associate with the habit."`
	Template    string `help:"Create from a predefined template by name."`
	Interactive bool   `short:"i" help:"Fill in the habit via an interactive form."`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	habit := models.Habit{
		Name:         c.Name,
		Description:  c.Description,
		Frequency:    c.Frequency,
		Category:     models.Category(c.Category),
		Goal:         c.Goal,
		ReminderTime: c.Remind,
		PlaylistURL:  c.Playlist,
	}

	if c.Template != "" {
		tmpl, ok := findTemplate(c.Template)
		if !ok {
			return fmt.Errorf("template %q not found (see 'cadence habit templates')", c.Template)
		}
		habit.Name = tmpl.Name
		habit.Description = tmpl.Description
		habit.Category = tmpl.Category
		habit.Frequency = tmpl.Frequency
		habit.Goal = tmpl.Goal
	}

	if c.Schedule != "" {
		sched, err := c.buildSchedule()
		if err != nil {
			return err
		}
		habit.Schedule = sched
	}

	if c.Interactive {
		if err := runHabitForm(&habit); err != nil {
			return err
		}
	}

	if _, ok := ctx.Tracker.HabitByName(habit.Name); ok {
		return fmt.Errorf("habit with name %q already exists", habit.Name)
	}

	if err := validation.ValidateHabit(habit); err != nil {
		return err
	}

	added, err := ctx.Tracker.AddHabit(habit)
	if err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (%s)\n", added.Name, FormatSchedule(added))
	return nil
}

func (c *HabitAddCmd) buildSchedule() (*models.Schedule, error) {
	sched := &models.Schedule{Type: models.ScheduleType(c.Schedule)}
	switch sched.Type {
	case models.ScheduleSpecificDays:
		if c.Days == "" {
			return nil, fmt.Errorf("specific_days schedule requires --days")
		}
		days, err := ParseWeekdays(c.Days)
		if err != nil {
			return nil, err
		}
		sched.DaysOfWeek = days
	case models.ScheduleXPerMonth:
		sched.TimesPerMonth = c.Times
	case models.ScheduleInterval:
		sched.IntervalDays = c.Every
	}
	return sched, nil
}

func findTemplate(name string) (models.HabitTemplate, bool) {
	for _, tmpl := range models.HabitTemplates {
		if strings.EqualFold(tmpl.Name, name) {
			return tmpl, true
		}
	}
	return models.HabitTemplate{}, false
}

func runHabitForm(habit *models.Habit) error {
	categoryOptions := make([]huh.Option[string], 0, len(models.AllCategories))
	for _, cat := range models.AllCategories {
		categoryOptions = append(categoryOptions, huh.NewOption(string(cat), string(cat)))
	}

	category := string(habit.Category)
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&habit.Name).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("name cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Description").
				Value(&habit.Description),
			huh.NewSelect[string]().
				Title("Category").
				Options(categoryOptions...).
				Value(&category),
			huh.NewInput().
				Title("Reminder time (HH:MM, optional)").
				Value(&habit.ReminderTime),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}
	habit.Category = models.Category(category)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	habits := ctx.Tracker.Habits()
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	for _, habit := range habits {
		result := ctx.Tracker.Stats(habit.ID)
		line := fmt.Sprintf("%s  %s", titleStyle.Render(habit.Name), mutedStyle.Render(FormatSchedule(habit)))
		if result.CurrentStreak > 0 {
			line += "  " + streakStyle.Render(fmt.Sprintf("🔥%d", result.CurrentStreak))
		}
		fmt.Println(line)
		if habit.Description != "" {
			fmt.Printf("    %s\n", mutedStyle.Render(habit.Description))
		}
	}

	return nil
}

type HabitEditCmd struct {
	Name        string `arg:"" help:"Habit name."`
	Rename      string `help:"New habit name."`
	Description string `help:"New description."`
	Category    string `help:"New category."`
	Goal        int    `help:"New weekly goal." default:"-1"`
	Remind      string `help:"New reminder time (HH:MM); pass 'none' to clear."`
	Schedule    string `help:"New schedule type."`
	Days        string `help:"Weekdays for specific_days schedules."`
	Times       int    `help:"Times per month for x_per_month schedules."`
	Every       int    `help:"Interval in days for interval schedules."`
}

func (c *HabitEditCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	habit, ok := ctx.Tracker.HabitByName(c.Name)
	if !ok {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	if c.Rename != "" {
		habit.Name = c.Rename
	}
	if c.Description != "" {
		habit.Description = c.Description
	}
	if c.Category != "" {
		habit.Category = models.Category(c.Category)
	}
	if c.Goal >= 0 {
		habit.Goal = c.Goal
	}
	if c.Remind != "" {
		if strings.EqualFold(c.Remind, "none") {
			habit.ReminderTime = ""
		} else {
			habit.ReminderTime = c.Remind
		}
	}
	if c.Schedule != "" {
		add := HabitAddCmd{Schedule: c.Schedule, Days: c.Days, Times: c.Times, Every: c.Every}
		sched, err := add.buildSchedule()
		if err != nil {
			return err
		}
		habit.Schedule = sched
	}

	if err := validation.ValidateHabit(habit); err != nil {
		return err
	}

	if err := ctx.Tracker.UpdateHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Updated habit: %s\n", habit.Name)
	return nil
}

type HabitDeleteCmd struct {
	Name string `arg:"" help:"Habit name to delete."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	habit, ok := ctx.Tracker.HabitByName(c.Name)
	if !ok {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	if err := ctx.Tracker.DeleteHabit(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit: %s (and all of its completions)\n", c.Name)
	return nil
}

type HabitLogCmd struct {
	Days  int    `help:"Number of days to show." default:"14"`
	Habit string `help:"Show log for a specific habit only."`
}

func (c *HabitLogCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	habits := ctx.Tracker.Habits()
	if c.Habit != "" {
		habit, ok := ctx.Tracker.HabitByName(c.Habit)
		if !ok {
			return fmt.Errorf("habit %q not found", c.Habit)
		}
		habits = []models.Habit{habit}
	}

	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	days := c.Days
	if days < 1 {
		days = 1
	}
	endDay := time.Now()
	startDay := endDay.AddDate(0, 0, -(days - 1))

	fmt.Printf("Habit log (last %d days):\n\n", days)

	const maxNameLen = 20
	fmt.Print("Habit               ")
	for i := 0; i < days; i++ {
		fmt.Printf(" %5s", startDay.AddDate(0, 0, i).Format("01/02"))
	}
	fmt.Println()

	fmt.Print(strings.Repeat("-", maxNameLen))
	fmt.Print(strings.Repeat("------", days))
	fmt.Println()

	for _, habit := range habits {
		name := habit.Name
		if len(name) > maxNameLen {
			name = name[:maxNameLen-3] + "..."
		} else {
			name = name + strings.Repeat(" ", maxNameLen-len(name))
		}
		fmt.Print(name)

		for i := 0; i < days; i++ {
			day := utils.DateStr(startDay.AddDate(0, 0, i))
			if ctx.Tracker.IsCompleted(habit.ID, day) {
				fmt.Print("  x   ")
			} else {
				fmt.Print("  .   ")
			}
		}
		fmt.Println()
	}

	return nil
}

type HabitTemplatesCmd struct{}

func (c *HabitTemplatesCmd) Run(ctx *Context) error {
	for i, tmpl := range models.HabitTemplates {
		fmt.Printf("%2s. %s: %s [%s]\n", strconv.Itoa(i+1), titleStyle.Render(tmpl.Name), tmpl.Description, tmpl.Category)
	}
	return nil
}
