package models

// Challenge is one catalog entry. The catalog is compiled in and never
// mutated at runtime.
type Challenge struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Level       Level  `json:"level"`
	Focus       Focus  `json:"focus"`
}

// Assignment is the cached "today's challenge" slot. At most one is
// persisted at a time; it is only valid while Date equals the current
// UTC calendar date.
type Assignment struct {
	Date      string    `json:"date"` // YYYY-MM-DD format
	Challenge Challenge `json:"challenge"`
}

// CompletedEntry is one row of the completion history. Entries are
// immutable once written; the collection is kept newest-first and holds
// at most one entry per (ID, CompletedDate) pair.
type CompletedEntry struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	CompletedDate string `json:"completedDate"` // YYYY-MM-DD format
	Focus         Focus  `json:"focus"`
}
