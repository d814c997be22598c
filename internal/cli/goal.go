package cli

import (
	"fmt"
	"strings"
)

type GoalAddCmd struct {
	Title       string `arg:"" help:"Goal title."`
	Description string `short:"d" help:"Optional description."`
}

// Validate rejects empty titles before anything touches storage. The
// tracker itself stores titles verbatim.
func (c *GoalAddCmd) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("goal title cannot be empty")
	}
	return nil
}

func (c *GoalAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	goal := ctx.Tracker.AddGoal(c.Title, c.Description)
	fmt.Printf("Added goal: %s (ID: %s)\n", goal.Title, goal.ID)
	return nil
}

type GoalListCmd struct{}

func (c *GoalListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	goals := ctx.Tracker.Goals()
	if len(goals) == 0 {
		fmt.Println("No goals yet. Add one with 'dailyspark goal add'.")
		return nil
	}

	for _, g := range goals {
		fmt.Printf("%s %-35s  (ID: %s)\n", checkbox(g.IsCompleted), g.Title, g.ID)
		if g.Description != "" {
			fmt.Printf("      %s\n", g.Description)
		}
	}
	return nil
}

type GoalDoneCmd struct {
	ID string `arg:"" help:"ID of the goal to toggle."`
}

func (c *GoalDoneCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if !ctx.Tracker.ToggleGoal(c.ID) {
		return fmt.Errorf("goal not found: %s", c.ID)
	}
	fmt.Println("Toggled.")
	return nil
}

type GoalDeleteCmd struct {
	ID string `arg:"" help:"ID of the goal to delete."`
}

func (c *GoalDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if !ctx.Tracker.DeleteGoal(c.ID) {
		return fmt.Errorf("goal not found: %s", c.ID)
	}
	fmt.Println("Deleted.")
	return nil
}
