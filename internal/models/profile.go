package models

import "fmt"

// Level is the user's declared skill level (CEFR-style bands).
type Level string

const (
	LevelA1 Level = "A1"
	LevelA2 Level = "A2"
	LevelB1 Level = "B1"
	LevelB2 Level = "B2"
	LevelC1 Level = "C1"
	LevelC2 Level = "C2"
)

// Focus is the user's declared focus area. FocusMix doubles as a
// catalog wildcard: a mix-tagged challenge matches any user focus.
type Focus string

const (
	FocusEnglish Focus = "english"
	FocusHealth  Focus = "health"
	FocusMix     Focus = "mix"
)

func ParseLevel(s string) (Level, error) {
	switch Level(s) {
	case LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2:
		return Level(s), nil
	default:
		return "", fmt.Errorf("invalid level: %q (expected A1, A2, B1, B2, C1 or C2)", s)
	}
}

func ParseFocus(s string) (Focus, error) {
	switch Focus(s) {
	case FocusEnglish, FocusHealth, FocusMix:
		return Focus(s), nil
	default:
		return "", fmt.Errorf("invalid focus: %q (expected english, health or mix)", s)
	}
}

// Profile is the single per-installation user record. It is always
// overwritten wholesale, never patched field by field.
type Profile struct {
	Level  Level    `json:"level"`
	Focus  Focus    `json:"focus"`
	Habits []string `json:"habits,omitempty"`
}
