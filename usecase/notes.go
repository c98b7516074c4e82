package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"main/model"
	"main/repository"
	"main/services"

	"go.uber.org/zap"
)

// shareTokenRetries bounds regeneration when a freshly minted token collides
// with an existing one.
const shareTokenRetries = 3

type NoteService struct {
	NotesRepo *repository.NotesRepo
	Retention time.Duration
	BaseURL   string
	Logger    *zap.Logger
}

func (svc *NoteService) validateNewNote(note *model.Note) error {
	if note.UserID <= 0 {
		return errors.New("user ID is required")
	}
	if note.Content == "" {
		return errors.New("note content is required")
	}
	return nil
}

// CreateNote stores a new note in its initial state: active, unarchived,
// unshared, labels defaulting to an empty list.
func (svc *NoteService) CreateNote(ctx context.Context, note *model.Note) error {
	if err := svc.validateNewNote(note); err != nil {
		return err
	}

	note.IsArchived = false
	note.IsShared = false
	note.ShareToken = nil
	note.DeletedAt = nil
	if note.Labels == nil {
		note.Labels = []string{}
	}

	now := time.Now().UTC()
	note.CreatedAt = now
	note.UpdatedAt = now

	return svc.NotesRepo.CreateNote(ctx, note)
}

func (svc *NoteService) GetNote(ctx context.Context, noteID int64) (*model.Note, error) {
	return svc.NotesRepo.GetNote(ctx, noteID)
}

// ListNotes returns the user's live notes, optionally narrowed by a
// case-insensitive substring search and the archived flag, most recently
// updated first.
func (svc *NoteService) ListNotes(ctx context.Context, userID int64, search string, archived *bool) ([]*model.Note, error) {
	if userID <= 0 {
		return nil, errors.New("user ID is required")
	}
	return svc.NotesRepo.GetUserNotes(ctx, userID, strings.TrimSpace(search), archived)
}

// UpdateNote applies a partial update. Switching sharing on mints a fresh
// token every time; switching it off clears the token. A note currently in
// the trash reports not-found.
func (svc *NoteService) UpdateNote(ctx context.Context, noteID int64, patch model.NotePatch) (*model.Note, error) {
	current, err := svc.NotesRepo.GetNote(ctx, noteID)
	if err != nil {
		return nil, err
	}

	for attempt := 0; ; attempt++ {
		if patch.IsShared != nil && *patch.IsShared {
			token, err := services.GenerateShareToken()
			if err != nil {
				return nil, err
			}
			patch.ShareToken = &token
		}

		next := model.ApplyPatch(*current, patch, time.Now().UTC())
		err = svc.NotesRepo.UpdateNote(ctx, &next)
		if err == nil {
			return &next, nil
		}
		if !errors.Is(err, repository.ErrTokenConflict) || attempt >= shareTokenRetries {
			return nil, err
		}
		svc.Logger.Warn("share token collision, regenerating",
			zap.Int64("note_id", noteID), zap.Int("attempt", attempt+1))
	}
}

// ShareURL returns the capability URL for a shared note, or nil when the
// note is not shared.
func (svc *NoteService) ShareURL(note *model.Note) *string {
	if !note.IsShared || note.ShareToken == nil {
		return nil
	}
	url := svc.BaseURL + "/shared/" + *note.ShareToken
	return &url
}

// DeleteNote moves a live note to the trash. Deleting a note that is already
// trashed reports not-found so its retention clock is never restarted.
func (svc *NoteService) DeleteNote(ctx context.Context, noteID int64) error {
	return svc.NotesRepo.SoftDeleteNote(ctx, noteID, time.Now().UTC())
}

// RestoreNote brings a trashed note back; it reappears in the active or
// archived listing according to its archive flag.
func (svc *NoteService) RestoreNote(ctx context.Context, noteID int64) (*model.Note, error) {
	return svc.NotesRepo.RestoreNote(ctx, noteID, time.Now().UTC())
}

// ListTrash returns the user's trashed notes that are still inside the
// retention window, most recently deleted first. A note whose window has
// elapsed is omitted even if it has not been physically purged yet.
func (svc *NoteService) ListTrash(ctx context.Context, userID int64, now time.Time) ([]*model.Note, error) {
	if userID <= 0 {
		return nil, errors.New("user ID is required")
	}

	deleted, err := svc.NotesRepo.GetDeletedNotes(ctx, userID)
	if err != nil {
		return nil, err
	}

	notes := []*model.Note{}
	for _, note := range deleted {
		if now.Sub(*note.DeletedAt) < svc.Retention {
			notes = append(notes, note)
		}
	}
	return notes, nil
}

// TimeLeft derives the seconds a trashed note has before purge eligibility.
// It is computed from deleted_at and now, never stored.
func (svc *NoteService) TimeLeft(note *model.Note, now time.Time) int64 {
	if note.DeletedAt == nil {
		return 0
	}
	elapsed := int64(now.Sub(*note.DeletedAt).Seconds())
	left := int64(svc.Retention.Seconds()) - elapsed
	if left < 0 {
		return 0
	}
	return left
}

// Cleanup purges notes whose retention window has elapsed, across all users,
// and reports the number removed. Safe to call concurrently and with nothing
// expired.
func (svc *NoteService) Cleanup(ctx context.Context, now time.Time) (int64, error) {
	purged, err := svc.NotesRepo.PurgeExpired(ctx, now.Add(-svc.Retention))
	if err != nil {
		return 0, err
	}
	if purged > 0 {
		svc.Logger.Info("purged expired notes", zap.Int64("count", purged))
	}
	return purged, nil
}

// GetSharedNote resolves a share token to its public projection inputs. The
// deleted state is intentionally ignored: a trashed note stays reachable
// through its token until purged.
func (svc *NoteService) GetSharedNote(ctx context.Context, token string) (*model.Note, string, error) {
	if token == "" {
		return nil, "", repository.ErrNoteNotFound
	}
	return svc.NotesRepo.GetNoteByShareToken(ctx, token)
}
