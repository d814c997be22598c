package cli

import "fmt"

type ResetCmd struct {
	Force bool `help:"Skip confirmation and erase all data."`
}

func (c *ResetCmd) Run(ctx *Context) error {
	if !c.Force {
		return fmt.Errorf("reset erases all data irreversibly; re-run with --force to confirm")
	}

	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if err := ctx.Tracker.Reset(); err != nil {
		return fmt.Errorf("failed to reset storage: %w", err)
	}

	fmt.Println("All data erased.")
	return nil
}
