package cli

import (
	"fmt"

	"github.com/Karaytumut20/dailyspark/internal/models"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	entries := ctx.Tracker.Completed()
	counts := map[models.Focus]int{}
	for _, e := range entries {
		counts[e.Focus]++
	}

	goals := ctx.Tracker.Goals()
	completedGoals := 0
	for _, g := range goals {
		if g.IsCompleted {
			completedGoals++
		}
	}

	fmt.Println("Daily challenges")
	fmt.Printf("  Total completed: %d\n", len(entries))
	fmt.Printf("  English: %d  Health: %d  Mix: %d\n",
		counts[models.FocusEnglish], counts[models.FocusHealth], counts[models.FocusMix])
	fmt.Println()
	fmt.Println("Personal goals")
	fmt.Printf("  Completed: %d of %d\n", completedGoals, len(goals))

	if len(entries) > 0 {
		fmt.Println()
		fmt.Println("Recent:")
		for i, e := range entries {
			if i == 10 {
				break
			}
			fmt.Printf("  %s  %s\n", e.CompletedDate, e.Title)
		}
	}
	return nil
}
