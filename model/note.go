package model

import (
	"time"
)

type Note struct {
	ID         int64      `json:"id"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	UserID     int64      `json:"user_id"`
	IsArchived bool       `json:"is_archived"`
	IsShared   bool       `json:"is_shared"`
	ShareToken *string    `json:"share_token,omitempty"`
	Labels     []string   `json:"labels"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// NotePatch carries the optional fields of a partial update. A nil field
// means "leave unchanged". ShareToken is filled in by the service layer when
// IsShared transitions to true; it is never accepted from the client.
type NotePatch struct {
	Title      *string
	Content    *string
	IsArchived *bool
	IsShared   *bool
	ShareToken *string
	Labels     *[]string
}

// ApplyPatch returns a copy of note with the patch applied. Turning sharing
// on installs the token supplied on the patch, turning it off clears the
// token, so is_shared and share_token never disagree. Every patch stamps
// UpdatedAt, lifecycle toggles included.
func ApplyPatch(note Note, patch NotePatch, now time.Time) Note {
	if patch.Title != nil {
		note.Title = *patch.Title
	}
	if patch.Content != nil {
		note.Content = *patch.Content
	}
	if patch.IsArchived != nil {
		note.IsArchived = *patch.IsArchived
	}
	if patch.IsShared != nil {
		note.IsShared = *patch.IsShared
		if note.IsShared {
			note.ShareToken = patch.ShareToken
		} else {
			note.ShareToken = nil
		}
	}
	if patch.Labels != nil {
		note.Labels = *patch.Labels
	}
	note.UpdatedAt = now
	return note
}
