package cli

import "fmt"

type InsightsCmd struct{}

func (c *InsightsCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	for _, insight := range ctx.Tracker.Insights() {
		fmt.Println("• " + insight)
	}
	return nil
}
