package cli

import (
	"fmt"

	"cadence/internal/constants"
	"cadence/internal/models"
)

type ProfileCmd struct {
	Share bool `help:"Print a shareable progress summary."`
}

func (c *ProfileCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	if c.Share {
		fmt.Println(ctx.Tracker.ShareText())
		return nil
	}

	profile := ctx.Tracker.Profile()
	fmt.Println(titleStyle.Render(fmt.Sprintf("Level %d", profile.Level)))
	intoLevel := profile.XP % constants.XPPerLevel
	fmt.Printf("%d XP (%d/%d to next level)\n\n", profile.XP, intoLevel, constants.XPPerLevel)

	unlocked := make(map[string]models.Achievement, len(profile.Achievements))
	for _, a := range profile.Achievements {
		unlocked[a.ID] = a
	}

	for _, def := range models.AchievementDefs {
		if a, ok := unlocked[def.ID]; ok {
			fmt.Printf("%s %s  %s\n", def.Icon, titleStyle.Render(def.Name), mutedStyle.Render(a.UnlockedAt))
		} else {
			fmt.Println(pendingStyle.Render(fmt.Sprintf("🔒 %s  %s", def.Name, def.Description)))
		}
	}

	return nil
}
