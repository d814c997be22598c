package storage

import "errors"

// ErrNotFound is returned by Get when no value exists under a key.
// Callers treat it as "absent", distinct from an I/O failure.
var ErrNotFound = errors.New("key not found")

// Keys of the flat key-value namespace. Every value is a UTF-8 JSON
// blob.
const (
	KeyProfile        = "user_profile"
	KeyTodayChallenge = "today_challenge"
	KeyCompleted      = "completed_challenges"
	KeyGoals          = "user_goals"
)

// SchemaVersion is the current on-disk layout version.
const SchemaVersion = 1

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Key-value access
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Clear() error

	// Utils
	ConfigPath() string
}
