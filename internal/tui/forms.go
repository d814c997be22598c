package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/Karaytumut20/dailyspark/internal/models"
)

type OnboardingFormModel struct {
	Level models.Level
	Focus models.Focus
}

type GoalFormModel struct {
	Title       string
	Description string
}

func NewOnboardingForm(fm *OnboardingFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[models.Level]().
				Title("Your level").
				Options(
					huh.NewOption("A1 — Beginner", models.LevelA1),
					huh.NewOption("A2 — Elementary", models.LevelA2),
					huh.NewOption("B1 — Intermediate", models.LevelB1),
					huh.NewOption("B2 — Upper intermediate", models.LevelB2),
					huh.NewOption("C1 — Advanced", models.LevelC1),
					huh.NewOption("C2 — Proficient", models.LevelC2),
				).
				Value(&fm.Level),
			huh.NewSelect[models.Focus]().
				Title("Focus area").
				Options(
					huh.NewOption("English", models.FocusEnglish),
					huh.NewOption("Health", models.FocusHealth),
					huh.NewOption("Mix of both", models.FocusMix),
				).
				Value(&fm.Focus),
		),
	).WithTheme(huh.ThemeDracula())
}

func NewGoalForm(fm *GoalFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Goal title").
				Value(&fm.Title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("goal title cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Description").
				Description("Optional").
				Value(&fm.Description),
		),
	).WithTheme(huh.ThemeDracula())
}
