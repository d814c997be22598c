package tracker

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/Karaytumut20/dailyspark/internal/catalog"
	"github.com/Karaytumut20/dailyspark/internal/models"
	"github.com/Karaytumut20/dailyspark/internal/storage"
)

func newTestTracker(t *testing.T) *Tracker {
	t.Helper()

	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "spark.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init storage: %v", err)
	}

	return New(store, zerolog.Nop())
}

// setDay pins the tracker's clock to a fixed UTC day.
func setDay(tr *Tracker, day string) {
	parsed, err := time.Parse(DateFormat, day)
	if err != nil {
		panic(err)
	}
	tr.now = func() time.Time { return parsed }
}

func TestProfile_RoundTrip(t *testing.T) {
	tr := newTestTracker(t)

	if _, ok := tr.Profile(); ok {
		t.Fatal("expected no profile on fresh install")
	}

	want := models.Profile{
		Level:  models.LevelB1,
		Focus:  models.FocusHealth,
		Habits: []string{"reading", "running"},
	}
	tr.SaveProfile(want)

	got, ok := tr.Profile()
	if !ok {
		t.Fatal("expected profile after save")
	}
	if got.Level != want.Level || got.Focus != want.Focus {
		t.Fatalf("got %v/%v, want %v/%v", got.Level, got.Focus, want.Level, want.Focus)
	}
	if len(got.Habits) != 2 || got.Habits[0] != "reading" {
		t.Fatalf("habits not round-tripped: %v", got.Habits)
	}
}

func TestProfile_OverwriteWholesale(t *testing.T) {
	tr := newTestTracker(t)

	tr.SaveProfile(models.Profile{Level: models.LevelA1, Focus: models.FocusMix, Habits: []string{"x"}})
	tr.SaveProfile(models.Profile{Level: models.LevelC1, Focus: models.FocusEnglish})

	got, ok := tr.Profile()
	if !ok {
		t.Fatal("expected profile")
	}
	if got.Level != models.LevelC1 || got.Focus != models.FocusEnglish {
		t.Fatalf("got %v/%v, want C1/english", got.Level, got.Focus)
	}
	if len(got.Habits) != 0 {
		t.Fatalf("old habits survived overwrite: %v", got.Habits)
	}
}

func TestTodayChallenge_AbsentOnFreshInstall(t *testing.T) {
	tr := newTestTracker(t)

	if _, ok := tr.TodayChallenge(); ok {
		t.Fatal("expected no assignment on fresh install")
	}
}

func TestTodayChallenge_SameDayIdempotent(t *testing.T) {
	tr := newTestTracker(t)
	setDay(tr, "2026-03-01")

	want, _ := catalog.ByID("11")
	tr.SaveTodayChallenge(want)

	first, ok := tr.TodayChallenge()
	if !ok {
		t.Fatal("expected assignment after save")
	}
	second, ok := tr.TodayChallenge()
	if !ok {
		t.Fatal("expected assignment on second read")
	}
	if first.ID != want.ID || second.ID != want.ID {
		t.Fatalf("reads returned %s then %s, want %s both times", first.ID, second.ID, want.ID)
	}
}

func TestTodayChallenge_EvictsStaleAssignment(t *testing.T) {
	tr := newTestTracker(t)

	setDay(tr, "2026-03-01")
	c, _ := catalog.ByID("11")
	tr.SaveTodayChallenge(c)

	setDay(tr, "2026-03-02")
	if _, ok := tr.TodayChallenge(); ok {
		t.Fatal("expected stale assignment to read as absent")
	}

	// The record itself must be gone, not just filtered.
	if _, err := tr.store.Get(storage.KeyTodayChallenge); err != storage.ErrNotFound {
		t.Fatalf("stale record still stored (err=%v)", err)
	}
}

func TestAssignToday_PicksFromFilteredCandidates(t *testing.T) {
	tr := newTestTracker(t)
	setDay(tr, "2026-03-01")

	profile := models.Profile{Level: models.LevelB1, Focus: models.FocusHealth}
	candidates := map[string]bool{}
	for _, c := range catalog.Filter(profile.Level, profile.Focus) {
		candidates[c.ID] = true
	}

	challenge, persisted := tr.AssignToday(profile)
	if !persisted {
		t.Fatal("expected assignment to be persisted")
	}
	if !candidates[challenge.ID] {
		t.Fatalf("picked challenge %s outside candidate set %v", challenge.ID, candidates)
	}

	// Second call the same day returns the identical challenge.
	again, persisted := tr.AssignToday(profile)
	if !persisted {
		t.Fatal("expected cached assignment")
	}
	if again.ID != challenge.ID {
		t.Fatalf("second call returned %s, want cached %s", again.ID, challenge.ID)
	}
}

func TestAssignToday_FallbackIsNotPersisted(t *testing.T) {
	tr := newTestTracker(t)
	setDay(tr, "2026-03-01")

	// No C2 entries exist, so the filter comes up empty.
	profile := models.Profile{Level: models.LevelC2, Focus: models.FocusEnglish}

	challenge, persisted := tr.AssignToday(profile)
	if persisted {
		t.Fatal("fallback must not be persisted")
	}
	if challenge.ID != catalog.Default().ID {
		t.Fatalf("fallback = %s, want first catalog entry %s", challenge.ID, catalog.Default().ID)
	}

	// The fallback must not poison a later acquisition: with a matching
	// profile the same day, a real assignment is still acquired.
	if _, ok := tr.TodayChallenge(); ok {
		t.Fatal("fallback leaked into storage")
	}
	real, persisted := tr.AssignToday(models.Profile{Level: models.LevelB1, Focus: models.FocusHealth})
	if !persisted {
		t.Fatal("expected real assignment after profile change")
	}
	if real.Level != models.LevelB1 {
		t.Fatalf("assignment level = %s, want B1", real.Level)
	}
}

func TestAddCompleted_SuppressesSameDayDuplicate(t *testing.T) {
	tr := newTestTracker(t)
	setDay(tr, "2026-03-01")

	c, _ := catalog.ByID("11")
	if !tr.AddCompleted(c) {
		t.Fatal("first completion should be recorded")
	}
	if tr.AddCompleted(c) {
		t.Fatal("same-day duplicate should be suppressed")
	}

	entries := tr.Completed()
	if len(entries) != 1 {
		t.Fatalf("ledger has %d entries, want 1", len(entries))
	}
	if entries[0].ID != "11" || entries[0].CompletedDate != "2026-03-01" {
		t.Fatalf("unexpected entry: %+v", entries[0])
	}
}

func TestAddCompleted_DifferentDaysAccumulate(t *testing.T) {
	tr := newTestTracker(t)
	c, _ := catalog.ByID("11")

	setDay(tr, "2026-03-01")
	if !tr.AddCompleted(c) {
		t.Fatal("day 1 completion should be recorded")
	}

	setDay(tr, "2026-03-02")
	if !tr.AddCompleted(c) {
		t.Fatal("day 2 completion should be recorded")
	}

	entries := tr.Completed()
	if len(entries) != 2 {
		t.Fatalf("ledger has %d entries, want 2", len(entries))
	}
	// Newest first.
	if entries[0].CompletedDate != "2026-03-02" || entries[1].CompletedDate != "2026-03-01" {
		t.Fatalf("entries not newest-first: %s, %s", entries[0].CompletedDate, entries[1].CompletedDate)
	}
}

func TestAddCompleted_PrependsNewestFirst(t *testing.T) {
	tr := newTestTracker(t)
	setDay(tr, "2026-03-01")

	first, _ := catalog.ByID("11")
	second, _ := catalog.ByID("12")
	tr.AddCompleted(first)
	tr.AddCompleted(second)

	entries := tr.Completed()
	if len(entries) != 2 {
		t.Fatalf("ledger has %d entries, want 2", len(entries))
	}
	if entries[0].ID != "12" {
		t.Fatalf("newest entry is %s, want 12", entries[0].ID)
	}
}

func TestCompleted_EmptyOnFreshInstall(t *testing.T) {
	tr := newTestTracker(t)
	if entries := tr.Completed(); len(entries) != 0 {
		t.Fatalf("expected empty ledger, got %d entries", len(entries))
	}
}

func TestGoal_Lifecycle(t *testing.T) {
	tr := newTestTracker(t)
	setDay(tr, "2026-03-01")

	goal := tr.AddGoal("Read", "")

	goals := tr.Goals()
	if len(goals) != 1 {
		t.Fatalf("expected 1 goal, got %d", len(goals))
	}
	if goals[0].Title != "Read" || goals[0].IsCompleted {
		t.Fatalf("unexpected goal: %+v", goals[0])
	}
	if goals[0].CreatedAt != "2026-03-01" {
		t.Fatalf("createdAt = %s, want 2026-03-01", goals[0].CreatedAt)
	}
	if goals[0].ID == "" {
		t.Fatal("goal id must not be empty")
	}

	if !tr.ToggleGoal(goal.ID) {
		t.Fatal("toggle should succeed")
	}
	if !tr.Goals()[0].IsCompleted {
		t.Fatal("goal should be completed after toggle")
	}

	if !tr.ToggleGoal(goal.ID) {
		t.Fatal("second toggle should succeed")
	}
	if tr.Goals()[0].IsCompleted {
		t.Fatal("goal should be uncompleted after second toggle")
	}

	if !tr.DeleteGoal(goal.ID) {
		t.Fatal("delete should succeed")
	}
	if len(tr.Goals()) != 0 {
		t.Fatal("goal should be gone after delete")
	}
}

func TestGoal_UnknownIDIsNoOp(t *testing.T) {
	tr := newTestTracker(t)
	tr.AddGoal("Keep me", "")

	if tr.ToggleGoal("missing") {
		t.Fatal("toggle of unknown id should report false")
	}
	if tr.DeleteGoal("missing") {
		t.Fatal("delete of unknown id should report false")
	}
	if len(tr.Goals()) != 1 {
		t.Fatal("existing goal must survive no-op calls")
	}
}

func TestGoal_UniqueIDs(t *testing.T) {
	tr := newTestTracker(t)

	a := tr.AddGoal("one", "")
	b := tr.AddGoal("two", "")
	if a.ID == b.ID {
		t.Fatalf("goals share id %s", a.ID)
	}
}

func TestReset_RestoresFreshInstallDefaults(t *testing.T) {
	tr := newTestTracker(t)
	setDay(tr, "2026-03-01")

	tr.SaveProfile(models.Profile{Level: models.LevelB1, Focus: models.FocusHealth})
	c, _ := catalog.ByID("11")
	tr.SaveTodayChallenge(c)
	tr.AddCompleted(c)
	tr.AddGoal("Read", "")

	if err := tr.Reset(); err != nil {
		t.Fatalf("reset failed: %v", err)
	}

	if _, ok := tr.Profile(); ok {
		t.Fatal("profile survived reset")
	}
	if _, ok := tr.TodayChallenge(); ok {
		t.Fatal("assignment survived reset")
	}
	if len(tr.Completed()) != 0 {
		t.Fatal("ledger survived reset")
	}
	if len(tr.Goals()) != 0 {
		t.Fatal("goals survived reset")
	}
}

func TestEndToEnd_B1HealthScenario(t *testing.T) {
	tr := newTestTracker(t)
	setDay(tr, "2026-03-01")

	profile := models.Profile{Level: models.LevelB1, Focus: models.FocusHealth}
	tr.SaveProfile(profile)

	if _, ok := tr.TodayChallenge(); ok {
		t.Fatal("expected no assignment before selection")
	}

	assigned, persisted := tr.AssignToday(profile)
	if !persisted {
		t.Fatal("expected persisted assignment")
	}
	if assigned.Level != models.LevelB1 {
		t.Fatalf("assigned level = %s, want B1", assigned.Level)
	}
	if assigned.Focus != models.FocusHealth && assigned.Focus != models.FocusMix {
		t.Fatalf("assigned focus = %s, want health or mix", assigned.Focus)
	}

	cached, ok := tr.TodayChallenge()
	if !ok || cached.ID != assigned.ID {
		t.Fatalf("cached read returned %v/%v, want %s", cached.ID, ok, assigned.ID)
	}
}

// failingStore simulates an unavailable backend: every call errors.
type failingStore struct{}

var errBroken = errors.New("backend unavailable")

func (failingStore) Init() error                  { return errBroken }
func (failingStore) Load() error                  { return errBroken }
func (failingStore) Close() error                 { return nil }
func (failingStore) Get(string) ([]byte, error)   { return nil, errBroken }
func (failingStore) Set(string, []byte) error     { return errBroken }
func (failingStore) Delete(string) error          { return errBroken }
func (failingStore) Clear() error                 { return errBroken }
func (failingStore) ConfigPath() string           { return "" }

func TestStorageFailuresDegradeToDefaults(t *testing.T) {
	tr := New(failingStore{}, zerolog.Nop())

	if _, ok := tr.Profile(); ok {
		t.Fatal("profile read on broken store should report absent")
	}
	if _, ok := tr.TodayChallenge(); ok {
		t.Fatal("assignment read on broken store should report absent")
	}
	if entries := tr.Completed(); len(entries) != 0 {
		t.Fatal("ledger read on broken store should be empty")
	}
	if goals := tr.Goals(); len(goals) != 0 {
		t.Fatal("goals read on broken store should be empty")
	}

	// Writes are silent no-ops, never panics or propagated errors.
	tr.SaveProfile(models.Profile{Level: models.LevelA1, Focus: models.FocusMix})
	tr.SaveTodayChallenge(catalog.Default())
	if tr.AddCompleted(catalog.Default()) {
		t.Fatal("write on broken store should report false")
	}
}
