// Package catalog holds the compiled-in challenge definitions and the
// pure level/focus filter used by daily assignment.
package catalog

import "github.com/Karaytumut20/dailyspark/internal/models"

// Challenges is declaration-ordered and read-only.
var Challenges = []models.Challenge{
	// A1 (beginner)
	{ID: "1", Title: "Learn 5 English Words", Description: "Pick up 5 new English words today, note them down together with their meanings.", Level: models.LevelA1, Focus: models.FocusEnglish},
	{ID: "2", Title: "10 Minutes of Meditation", Description: "Step away from the noise of the day for 10 minutes and let your mind rest.", Level: models.LevelA1, Focus: models.FocusHealth},
	{ID: "3", Title: "Brisk Walk", Description: "Take a brisk walk of at least 20 minutes.", Level: models.LevelA1, Focus: models.FocusHealth},

	// B1 (intermediate)
	{ID: "10", Title: "Read a Short Article", Description: "Read an English news story or article suited to your level from start to finish.", Level: models.LevelB1, Focus: models.FocusEnglish},
	{ID: "11", Title: "Try a New Recipe", Description: "Find a healthy recipe you have never cooked before and make it.", Level: models.LevelB1, Focus: models.FocusHealth},
	{ID: "12", Title: "Summary of the Day (in English)", Description: "Write a 5-sentence summary of your day in English in a notebook.", Level: models.LevelB1, Focus: models.FocusMix},

	// C1 (advanced)
	{ID: "20", Title: "Listen to a Native Speaker", Description: "Listen to at least 30 minutes of an English podcast or talk and note the words you don't know.", Level: models.LevelC1, Focus: models.FocusEnglish},
	{ID: "21", Title: "Drink 2 Liters of Water", Description: "Keep yourself hydrated by drinking at least 2 liters of water over the day.", Level: models.LevelC1, Focus: models.FocusHealth},
	{ID: "22", Title: "Inbox Cleanup", Description: "Delete 100 junk emails from your inbox and cut down your digital clutter.", Level: models.LevelC1, Focus: models.FocusMix},

	// General
	{ID: "30", Title: "Stretching Exercises", Description: "Do 15 minutes of basic stretching movements.", Level: models.LevelA1, Focus: models.FocusHealth},
	{ID: "31", Title: "30 Minutes of Deep Focus", Description: "Focus on a single task for 30 uninterrupted minutes (try the Pomodoro technique).", Level: models.LevelB1, Focus: models.FocusMix},
}

// Filter returns every challenge matching the level exactly and the
// focus exactly or via the mix wildcard. An empty result is valid; the
// caller decides what to do with it.
func Filter(level models.Level, focus models.Focus) []models.Challenge {
	var out []models.Challenge
	for _, c := range Challenges {
		if c.Level != level {
			continue
		}
		if c.Focus == focus || c.Focus == models.FocusMix {
			out = append(out, c)
		}
	}
	return out
}

// Default is the emergency fallback handed out when the filtered set is
// empty. It is intentionally never persisted as an assignment.
func Default() models.Challenge {
	return Challenges[0]
}

// ByID looks up a catalog entry. Used by diagnostics only.
func ByID(id string) (models.Challenge, bool) {
	for _, c := range Challenges {
		if c.ID == id {
			return c, true
		}
	}
	return models.Challenge{}, false
}
