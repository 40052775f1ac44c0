package cli

import (
	"fmt"
	"os"
)

type ExportCmd struct {
	Output string `short:"o" help:"Write the export to a file instead of stdout."`
}

func (c *ExportCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	doc, err := ctx.Tracker.ExportAll()
	if err != nil {
		return err
	}

	if c.Output == "" {
		fmt.Println(doc)
		return nil
	}
	if err := os.WriteFile(c.Output, []byte(doc), 0600); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	fmt.Printf("Exported data to %s\n", c.Output)
	return nil
}

type ImportCmd struct {
	File string `arg:"" help:"Export document to import."`
}

func (c *ImportCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}

	if !ctx.Tracker.ImportAll(string(data)) {
		return fmt.Errorf("import finished with errors; valid fields were applied")
	}
	fmt.Println("Import complete.")
	return nil
}
