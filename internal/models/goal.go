package models

// Goal is a user-authored personal goal, independent of the daily
// challenge flow. Only IsCompleted ever changes after creation.
type Goal struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsCompleted bool   `json:"isCompleted"`
	CreatedAt   string `json:"createdAt"` // YYYY-MM-DD format
}
