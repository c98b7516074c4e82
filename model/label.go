package model

import "time"

// Label rows are freestanding: notes keep label names as a serialized list,
// so renaming or deleting a label does not touch notes that reference it.
type Label struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
