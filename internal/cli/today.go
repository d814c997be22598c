package cli

import "fmt"

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	profile, err := requireProfile(ctx)
	if err != nil {
		return err
	}

	challenge, persisted := ctx.Tracker.AssignToday(profile)

	fmt.Println("Today's challenge:")
	fmt.Println()
	fmt.Println("  " + formatChallenge(challenge))
	if !persisted {
		fmt.Println()
		fmt.Println("  (no catalog entry matches your profile; showing a fallback)")
	}
	return nil
}
