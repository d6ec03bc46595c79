package models

import "time"

// ChatEntry is a cached question/answer pair. Entries are append-only:
// once a question has an answer it is never regenerated or updated.
type ChatEntry struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
}
