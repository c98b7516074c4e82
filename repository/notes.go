package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"main/model"
)

type NotesRepo struct {
	DB *sql.DB
}

func GetNotesRepo(db *sql.DB) *NotesRepo {
	return &NotesRepo{DB: db}
}

const noteColumns = `id, title, content, user_id, is_archived, is_shared, share_token, labels, deleted_at, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (*model.Note, error) {
	var (
		note      model.Note
		token     sql.NullString
		labels    string
		deletedAt sql.NullInt64
		createdAt int64
		updatedAt int64
	)
	err := row.Scan(&note.ID, &note.Title, &note.Content, &note.UserID,
		&note.IsArchived, &note.IsShared, &token, &labels,
		&deletedAt, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	if token.Valid {
		note.ShareToken = &token.String
	}
	if deletedAt.Valid {
		t := fromMillis(deletedAt.Int64)
		note.DeletedAt = &t
	}
	note.CreatedAt = fromMillis(createdAt)
	note.UpdatedAt = fromMillis(updatedAt)

	note.Labels = []string{}
	if labels != "" {
		if err := json.Unmarshal([]byte(labels), &note.Labels); err != nil {
			return nil, fmt.Errorf("failed to decode labels: %w", err)
		}
	}
	return &note, nil
}

func encodeLabels(labels []string) (string, error) {
	if labels == nil {
		labels = []string{}
	}
	raw, err := json.Marshal(labels)
	if err != nil {
		return "", fmt.Errorf("failed to encode labels: %w", err)
	}
	return string(raw), nil
}

// CreateNote inserts the note and fills in its generated ID. CreatedAt and
// UpdatedAt must already be set by the caller.
func (r *NotesRepo) CreateNote(ctx context.Context, note *model.Note) error {
	labels, err := encodeLabels(note.Labels)
	if err != nil {
		return err
	}

	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO notes (title, content, user_id, is_archived, is_shared, share_token, labels, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		note.Title, note.Content, note.UserID, note.IsArchived, note.IsShared,
		note.ShareToken, labels, toMillis(note.CreatedAt), toMillis(note.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to insert note: %w", err)
	}

	note.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read note id: %w", err)
	}
	return nil
}

// GetNote returns a single note. Soft-deleted notes are treated as absent.
func (r *NotesRepo) GetNote(ctx context.Context, noteID int64) (*model.Note, error) {
	row := r.DB.QueryRowContext(ctx,
		`SELECT `+noteColumns+` FROM notes WHERE id = ? AND deleted_at IS NULL`, noteID)

	note, err := scanNote(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to select note: %w", err)
	}
	return note, nil
}

// GetUserNotes lists a user's live notes, most recently updated first.
// search narrows to notes whose title or content contains the term
// (case-insensitive); archived filters on the archive flag when non-nil.
func (r *NotesRepo) GetUserNotes(ctx context.Context, userID int64, search string, archived *bool) ([]*model.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE user_id = ? AND deleted_at IS NULL`
	args := []any{userID}

	if search != "" {
		query += ` AND (title LIKE ? OR content LIKE ?)`
		pattern := "%" + search + "%"
		args = append(args, pattern, pattern)
	}
	if archived != nil {
		query += ` AND is_archived = ?`
		args = append(args, *archived)
	}
	query += ` ORDER BY updated_at DESC`

	return r.queryNotes(ctx, query, args...)
}

// GetDeletedNotes returns every soft-deleted note the user owns, most
// recently deleted first. Retention filtering happens in the service layer
// because remaining time is derived from "now", not stored.
func (r *NotesRepo) GetDeletedNotes(ctx context.Context, userID int64) ([]*model.Note, error) {
	return r.queryNotes(ctx,
		`SELECT `+noteColumns+` FROM notes WHERE user_id = ? AND deleted_at IS NOT NULL ORDER BY deleted_at DESC`,
		userID)
}

func (r *NotesRepo) queryNotes(ctx context.Context, query string, args ...any) ([]*model.Note, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select notes: %w", err)
	}
	defer rows.Close()

	notes := []*model.Note{}
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return notes, nil
}

// UpdateNote writes the full row back. The deleted_at IS NULL guard makes
// updates on trashed notes report not-found instead of resurrecting them.
func (r *NotesRepo) UpdateNote(ctx context.Context, note *model.Note) error {
	labels, err := encodeLabels(note.Labels)
	if err != nil {
		return err
	}

	res, err := r.DB.ExecContext(ctx, `
		UPDATE notes
		SET title = ?, content = ?, is_archived = ?, is_shared = ?, share_token = ?, labels = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL`,
		note.Title, note.Content, note.IsArchived, note.IsShared,
		note.ShareToken, labels, toMillis(note.UpdatedAt), note.ID)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: notes.share_token") {
			return ErrTokenConflict
		}
		return fmt.Errorf("failed to update note: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}
	return nil
}

// SoftDeleteNote stamps deleted_at, but only on a live note so an already
// trashed note's retention clock is never restarted.
func (r *NotesRepo) SoftDeleteNote(ctx context.Context, noteID int64, now time.Time) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE notes SET deleted_at = ?, updated_at = ? WHERE id = ? AND deleted_at IS NULL`,
		toMillis(now), toMillis(now), noteID)
	if err != nil {
		return fmt.Errorf("failed to soft-delete note: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}
	return nil
}

// RestoreNote clears deleted_at on a trashed note and returns the row.
func (r *NotesRepo) RestoreNote(ctx context.Context, noteID int64, now time.Time) (*model.Note, error) {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE notes SET deleted_at = NULL, updated_at = ? WHERE id = ? AND deleted_at IS NOT NULL`,
		toMillis(now), noteID)
	if err != nil {
		return nil, fmt.Errorf("failed to restore note: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return nil, ErrNoteNotFound
	}

	return r.GetNote(ctx, noteID)
}

// PurgeExpired permanently removes notes deleted before the cutoff, across
// all users, and reports how many rows went away. Running it with nothing
// expired is a no-op.
func (r *NotesRepo) PurgeExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.DB.ExecContext(ctx,
		`DELETE FROM notes WHERE deleted_at IS NOT NULL AND deleted_at < ?`,
		toMillis(cutoff))
	if err != nil {
		return 0, fmt.Errorf("failed to purge notes: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return affected, nil
}

// GetNoteByShareToken resolves a share token to the note and its owner's
// display name. Only notes currently flagged shared resolve; the deleted
// state is deliberately not checked (a trashed note stays reachable through
// its token until purged).
func (r *NotesRepo) GetNoteByShareToken(ctx context.Context, token string) (*model.Note, string, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT n.id, n.title, n.content, n.user_id, n.is_archived, n.is_shared, n.share_token, n.labels, n.deleted_at, n.created_at, n.updated_at, u.name
		FROM notes n
		JOIN users u ON n.user_id = u.id
		WHERE n.share_token = ? AND n.is_shared = 1`, token)

	var (
		note      model.Note
		tok       sql.NullString
		labels    string
		deletedAt sql.NullInt64
		createdAt int64
		updatedAt int64
		ownerName string
	)
	err := row.Scan(&note.ID, &note.Title, &note.Content, &note.UserID,
		&note.IsArchived, &note.IsShared, &tok, &labels,
		&deletedAt, &createdAt, &updatedAt, &ownerName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", ErrNoteNotFound
		}
		return nil, "", fmt.Errorf("failed to select shared note: %w", err)
	}

	if tok.Valid {
		note.ShareToken = &tok.String
	}
	if deletedAt.Valid {
		t := fromMillis(deletedAt.Int64)
		note.DeletedAt = &t
	}
	note.CreatedAt = fromMillis(createdAt)
	note.UpdatedAt = fromMillis(updatedAt)

	note.Labels = []string{}
	if labels != "" {
		if err := json.Unmarshal([]byte(labels), &note.Labels); err != nil {
			return nil, "", fmt.Errorf("failed to decode labels: %w", err)
		}
	}
	return &note, ownerName, nil
}
