package dto

import (
	"time"

	"main/model"
)

type CreateNoteRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content" binding:"required"`
	Labels  []string `json:"labels"`
	UserID  int64    `json:"userId" binding:"required"`
}

// UpdateNoteRequest is a partial update: nil fields are left untouched.
type UpdateNoteRequest struct {
	Title      *string   `json:"title"`
	Content    *string   `json:"content"`
	IsArchived *bool     `json:"is_archived"`
	IsShared   *bool     `json:"is_shared"`
	Labels     *[]string `json:"labels"`
}

// ToPatch converts the request into a model patch. The share token slot is
// left empty; the service fills it when sharing is switched on.
func (r UpdateNoteRequest) ToPatch() model.NotePatch {
	return model.NotePatch{
		Title:      r.Title,
		Content:    r.Content,
		IsArchived: r.IsArchived,
		IsShared:   r.IsShared,
		Labels:     r.Labels,
	}
}

type RestoreNoteRequest struct {
	Action string `json:"action" binding:"required"`
}

// NoteWithShareURL decorates a note with its share link for update
// responses.
type NoteWithShareURL struct {
	*model.Note
	ShareURL *string `json:"share_url,omitempty"`
}

// TrashNote decorates a trashed note with the seconds remaining before it
// becomes eligible for purge.
type TrashNote struct {
	*model.Note
	TimeLeft int64 `json:"time_left"`
}

// SharedNoteResponse is the public-safe projection served to share-token
// holders: no user id, no token, no owner credentials.
type SharedNoteResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Labels    []string  `json:"labels"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	OwnerName string    `json:"owner_name"`
}

func ToSharedNoteResponse(note *model.Note, ownerName string) SharedNoteResponse {
	return SharedNoteResponse{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		Labels:    note.Labels,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
		OwnerName: ownerName,
	}
}
