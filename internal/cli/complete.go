package cli

import "fmt"

type CompleteCmd struct{}

func (c *CompleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	challenge, ok := ctx.Tracker.TodayChallenge()
	if !ok {
		return fmt.Errorf("no challenge assigned for today, run 'dailyspark today' first")
	}

	if ctx.Tracker.AddCompleted(challenge) {
		fmt.Printf("Well done! %q is recorded as completed.\n", challenge.Title)
	} else {
		fmt.Printf("%q is already marked done today.\n", challenge.Title)
	}
	return nil
}
