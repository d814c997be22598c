package cli

import (
	"fmt"

	"github.com/Karaytumut20/dailyspark/internal/models"
)

type HistoryCmd struct {
	Focus string `short:"f" help:"Only show entries with this focus (english|health|mix)."`
	Limit int    `short:"n" help:"Maximum number of entries to show." default:"0"`
}

func (c *HistoryCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	var focus models.Focus
	if c.Focus != "" {
		var err error
		focus, err = models.ParseFocus(c.Focus)
		if err != nil {
			return err
		}
	}

	entries := ctx.Tracker.Completed()
	if len(entries) == 0 {
		fmt.Println("No completed challenges yet.")
		return nil
	}

	shown := 0
	for _, e := range entries {
		if focus != "" && e.Focus != focus {
			continue
		}
		fmt.Printf("%s  %-35s  [%s]\n", e.CompletedDate, e.Title, e.Focus)
		shown++
		if c.Limit > 0 && shown >= c.Limit {
			break
		}
	}

	if shown == 0 {
		fmt.Printf("No completed challenges with focus %s.\n", focus)
	}
	return nil
}
