// Package tracker implements the core state of dailyspark: the user
// profile, the once-per-day challenge assignment, the completion
// history and the personal goal list. Everything is persisted as JSON
// blobs through a storage.Provider.
//
// Storage failures never escape this package: each operation logs the
// error and degrades to the benign default (absent value, empty list,
// no-op write). Callers that need a persistence guarantee re-issue the
// operation.
package tracker

import (
	"encoding/json"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Karaytumut20/dailyspark/internal/catalog"
	"github.com/Karaytumut20/dailyspark/internal/models"
	"github.com/Karaytumut20/dailyspark/internal/storage"
)

// DateFormat is the calendar-date layout used for every persisted date.
// Dates are derived from the UTC clock so a challenge rolls over at the
// same instant regardless of the device timezone.
const DateFormat = "2006-01-02"

type Tracker struct {
	store  storage.Provider
	logger zerolog.Logger

	// mu serializes read-modify-write cycles against the store. The
	// collections are rewritten wholesale, so two interleaved toggles
	// would otherwise lose an update.
	mu sync.Mutex

	// now is swapped out in tests to simulate day boundaries.
	now func() time.Time
}

func New(store storage.Provider, logger zerolog.Logger) *Tracker {
	return &Tracker{
		store:  store,
		logger: logger.With().Str("component", "tracker").Logger(),
		now:    time.Now,
	}
}

func (t *Tracker) today() string {
	return t.now().UTC().Format(DateFormat)
}

// getJSON reads and decodes one key. Absent keys and failures both
// report false; only failures are logged.
func (t *Tracker) getJSON(key string, v any) bool {
	data, err := t.store.Get(key)
	if err == storage.ErrNotFound {
		return false
	}
	if err != nil {
		t.logger.Error().Err(err).Str("key", key).Msg("storage read failed")
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		t.logger.Error().Err(err).Str("key", key).Msg("stored value is not valid JSON")
		return false
	}
	return true
}

// setJSON encodes and writes one key, reporting success.
func (t *Tracker) setJSON(key string, v any) bool {
	data, err := json.Marshal(v)
	if err != nil {
		t.logger.Error().Err(err).Str("key", key).Msg("failed to serialize value")
		return false
	}
	if err := t.store.Set(key, data); err != nil {
		t.logger.Error().Err(err).Str("key", key).Msg("storage write failed")
		return false
	}
	return true
}

// --- Profile ---

// Profile returns the stored profile, or ok=false on a fresh install.
func (t *Tracker) Profile() (models.Profile, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var p models.Profile
	if !t.getJSON(storage.KeyProfile, &p) {
		return models.Profile{}, false
	}
	return p, true
}

// SaveProfile overwrites the profile wholesale.
func (t *Tracker) SaveProfile(p models.Profile) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.setJSON(storage.KeyProfile, p)
}

// --- Daily assignment ---

// TodayChallenge returns the cached assignment for the current day. A
// stale assignment (stored under a different date) is deleted on read
// and reported as absent; that is the only expiry mechanism, there is
// no background timer.
func (t *Tracker) TodayChallenge() (models.Challenge, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.todayChallengeLocked()
}

func (t *Tracker) todayChallengeLocked() (models.Challenge, bool) {
	var a models.Assignment
	if !t.getJSON(storage.KeyTodayChallenge, &a) {
		return models.Challenge{}, false
	}

	if a.Date == t.today() {
		return a.Challenge, true
	}

	// Different day: evict the stale record.
	if err := t.store.Delete(storage.KeyTodayChallenge); err != nil {
		t.logger.Error().Err(err).Msg("failed to evict stale assignment")
	}
	return models.Challenge{}, false
}

// SaveTodayChallenge stamps the challenge with today's date and
// overwrites the assignment slot unconditionally.
func (t *Tracker) SaveTodayChallenge(c models.Challenge) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.saveTodayChallengeLocked(c)
}

func (t *Tracker) saveTodayChallengeLocked(c models.Challenge) {
	t.setJSON(storage.KeyTodayChallenge, models.Assignment{
		Date:      t.today(),
		Challenge: c,
	})
}

// AssignToday runs the selection algorithm: return the cached
// assignment if one is valid for today, otherwise pick uniformly at
// random from the catalog entries matching the profile and persist the
// pick. When the filter comes up empty the first catalog entry is
// returned as a fallback WITHOUT being persisted, so a later call can
// still acquire a real assignment once the profile changes.
//
// The second result reports whether the returned challenge is (now)
// persisted as today's assignment.
func (t *Tracker) AssignToday(p models.Profile) (models.Challenge, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if c, ok := t.todayChallengeLocked(); ok {
		return c, true
	}

	candidates := catalog.Filter(p.Level, p.Focus)
	if len(candidates) == 0 {
		return catalog.Default(), false
	}

	pick := candidates[rand.Intn(len(candidates))]
	t.saveTodayChallengeLocked(pick)
	return pick, true
}

// --- Completion ledger ---

// Completed returns the completion history, newest first. Absent
// storage yields an empty list, never an error.
func (t *Tracker) Completed() []models.CompletedEntry {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.completedLocked()
}

func (t *Tracker) completedLocked() []models.CompletedEntry {
	var entries []models.CompletedEntry
	t.getJSON(storage.KeyCompleted, &entries)
	return entries
}

// AddCompleted records the challenge as completed today and reports
// whether a new entry was written. Completing the same challenge twice
// on one day is a silent no-op (the habit is already marked done);
// completing it on two different days produces two entries.
func (t *Tracker) AddCompleted(c models.Challenge) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	today := t.today()
	entries := t.completedLocked()

	for _, e := range entries {
		if e.ID == c.ID && e.CompletedDate == today {
			return false
		}
	}

	entry := models.CompletedEntry{
		ID:            c.ID,
		Title:         c.Title,
		CompletedDate: today,
		Focus:         c.Focus,
	}
	updated := append([]models.CompletedEntry{entry}, entries...)
	return t.setJSON(storage.KeyCompleted, updated)
}

// --- Goals ---

// Goals returns every personal goal in storage order.
func (t *Tracker) Goals() []models.Goal {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.goalsLocked()
}

func (t *Tracker) goalsLocked() []models.Goal {
	var goals []models.Goal
	t.getJSON(storage.KeyGoals, &goals)
	return goals
}

// AddGoal appends a new goal. The title is stored verbatim; rejecting
// titles that trim to empty is the calling layer's job.
func (t *Tracker) AddGoal(title, description string) models.Goal {
	t.mu.Lock()
	defer t.mu.Unlock()

	goal := models.Goal{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		IsCompleted: false,
		CreatedAt:   t.today(),
	}

	goals := append(t.goalsLocked(), goal)
	t.setJSON(storage.KeyGoals, goals)
	return goal
}

// DeleteGoal removes the goal with the given id. An unknown id is a
// silent no-op; the result reports whether anything was removed.
func (t *Tracker) DeleteGoal(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	goals := t.goalsLocked()
	kept := goals[:0]
	removed := false
	for _, g := range goals {
		if g.ID == id {
			removed = true
			continue
		}
		kept = append(kept, g)
	}
	if !removed {
		return false
	}

	return t.setJSON(storage.KeyGoals, kept)
}

// ToggleGoal flips IsCompleted on the matching goal. An unknown id is a
// silent no-op; the result reports whether a goal was toggled.
func (t *Tracker) ToggleGoal(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	goals := t.goalsLocked()
	toggled := false
	for i := range goals {
		if goals[i].ID == id {
			goals[i].IsCompleted = !goals[i].IsCompleted
			toggled = true
		}
	}
	if !toggled {
		return false
	}

	return t.setJSON(storage.KeyGoals, goals)
}

// --- Reset ---

// Reset erases every persisted key. Irreversible; afterwards every read
// returns the same defaults as a fresh install.
func (t *Tracker) Reset() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.store.Clear()
}
