package cli

import (
	"fmt"
	"strings"

	"github.com/Karaytumut20/dailyspark/internal/models"
)

type ProfileSetCmd struct {
	Level  string   `short:"l" help:"Skill level (A1|A2|B1|B2|C1|C2)." required:""`
	Focus  string   `short:"f" help:"Focus area (english|health|mix)." required:""`
	Habits []string `short:"H" help:"Habits to track (repeatable)."`
}

func (c *ProfileSetCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	level, err := models.ParseLevel(strings.ToUpper(strings.TrimSpace(c.Level)))
	if err != nil {
		return err
	}
	focus, err := models.ParseFocus(strings.ToLower(strings.TrimSpace(c.Focus)))
	if err != nil {
		return err
	}

	profile := models.Profile{
		Level:  level,
		Focus:  focus,
		Habits: c.Habits,
	}
	ctx.Tracker.SaveProfile(profile)

	fmt.Printf("Profile saved: level %s, focus %s\n", profile.Level, profile.Focus)
	return nil
}

type ProfileShowCmd struct{}

func (c *ProfileShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	profile, err := requireProfile(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Level: %s\n", profile.Level)
	fmt.Printf("Focus: %s\n", profile.Focus)
	if len(profile.Habits) > 0 {
		fmt.Printf("Habits: %s\n", strings.Join(profile.Habits, ", "))
	}
	return nil
}
