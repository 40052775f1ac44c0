package cli

import (
	"fmt"
	"sort"
	"strconv"
)

type ConfigCmd struct {
	Get ConfigGetCmd `cmd:"" help:"Print preferences."`
	Set ConfigSetCmd `cmd:"" help:"Set a preference value."`
}

type ConfigGetCmd struct {
	Key string `arg:"" optional:"" help:"Preference key (prints all when omitted)."`
}

func (c *ConfigGetCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	prefs := ctx.Tracker.Preferences()
	if c.Key != "" {
		value, ok := prefs[c.Key]
		if !ok {
			return fmt.Errorf("preference %q not set", c.Key)
		}
		fmt.Printf("%v\n", value)
		return nil
	}

	keys := make([]string, 0, len(prefs))
	for k := range prefs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("%s = %v\n", k, prefs[k])
	}
	return nil
}

type ConfigSetCmd struct {
	Key   string `arg:"" help:"Preference key."`
	Value string `arg:"" help:"Preference value (true/false and numbers are coerced)."`
}

func (c *ConfigSetCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	if err := ctx.Tracker.SetPreference(c.Key, coerceValue(c.Value)); err != nil {
		return err
	}
	fmt.Printf("Set %s = %s\n", c.Key, c.Value)
	return nil
}

func coerceValue(s string) any {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
