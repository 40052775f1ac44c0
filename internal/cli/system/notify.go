package system

import (
	"fmt"

	"cadence/internal/cli"
	"cadence/internal/notifier"
)

type NotifyCmd struct {
	Title string `arg:"" optional:"" help:"Notification title." default:"cadence"`
	Body  string `arg:"" optional:"" help:"Notification body." default:"Test notification"`
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	n := notifier.New()
	if err := n.Notify(c.Title, c.Body); err != nil {
		return fmt.Errorf("failed to deliver notification: %w", err)
	}
	fmt.Println("Notification sent.")
	return nil
}
