package cli

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Karaytumut20/dailyspark/internal/models"
	"github.com/Karaytumut20/dailyspark/internal/storage"
	"github.com/Karaytumut20/dailyspark/internal/tracker"
)

type Context struct {
	Store   storage.Provider
	Tracker *tracker.Tracker
	Logger  zerolog.Logger
}

// requireProfile loads the profile or tells the user how to create one.
func requireProfile(ctx *Context) (models.Profile, error) {
	profile, ok := ctx.Tracker.Profile()
	if !ok {
		return models.Profile{}, fmt.Errorf("no profile found, run 'dailyspark profile set' first")
	}
	return profile, nil
}

func formatChallenge(c models.Challenge) string {
	return fmt.Sprintf("[%s/%s] %s\n    %s", c.Level, c.Focus, c.Title, c.Description)
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}
