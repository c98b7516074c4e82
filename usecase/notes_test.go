package usecase

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"main/model"
	"main/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testRetention = 30 * time.Second

func newTestNoteService(t *testing.T) (*NoteService, *sql.DB, int64) {
	t.Helper()
	db, err := repository.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	user := &model.User{
		Email:     "owner@example.com",
		Password:  "salt$hash",
		Name:      "Owner",
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, repository.GetUsersRepo(db).CreateUser(context.Background(), user))

	svc := &NoteService{
		NotesRepo: repository.GetNotesRepo(db),
		Retention: testRetention,
		BaseURL:   "http://localhost:8080",
		Logger:    zap.NewNop(),
	}
	return svc, db, user.ID
}

// backdateDeletion rewrites deleted_at as if the note was trashed `ago` in
// the past, so retention behavior is testable without sleeping.
func backdateDeletion(t *testing.T, db *sql.DB, noteID int64, ago time.Duration) {
	t.Helper()
	_, err := db.Exec(`UPDATE notes SET deleted_at = ? WHERE id = ?`,
		time.Now().UTC().Add(-ago).UnixMilli(), noteID)
	require.NoError(t, err)
}

func createNote(t *testing.T, svc *NoteService, userID int64, content string) *model.Note {
	t.Helper()
	note := &model.Note{Content: content, UserID: userID}
	require.NoError(t, svc.CreateNote(context.Background(), note))
	return note
}

func boolPtr(b bool) *bool { return &b }

func TestCreateNoteDefaults(t *testing.T) {
	svc, _, userID := newTestNoteService(t)
	ctx := context.Background()

	note := &model.Note{Content: "buy milk", UserID: userID}
	require.NoError(t, svc.CreateNote(ctx, note))

	got, err := svc.GetNote(ctx, note.ID)
	require.NoError(t, err)
	assert.Equal(t, "", got.Title)
	assert.Equal(t, []string{}, got.Labels)
	assert.False(t, got.IsArchived)
	assert.False(t, got.IsShared)
	assert.Nil(t, got.ShareToken)
	assert.Nil(t, got.DeletedAt)
}

func TestCreateNoteValidation(t *testing.T) {
	svc, _, userID := newTestNoteService(t)
	ctx := context.Background()

	err := svc.CreateNote(ctx, &model.Note{Content: "", UserID: userID})
	assert.EqualError(t, err, "note content is required")

	err = svc.CreateNote(ctx, &model.Note{Content: "hello"})
	assert.EqualError(t, err, "user ID is required")
}

func TestUpdateNotePartial(t *testing.T) {
	svc, _, userID := newTestNoteService(t)
	ctx := context.Background()
	note := createNote(t, svc, userID, "original content")

	title := "New Title"
	updated, err := svc.UpdateNote(ctx, note.ID, model.NotePatch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "New Title", updated.Title)
	assert.Equal(t, "original content", updated.Content)
	assert.True(t, updated.UpdatedAt.After(note.UpdatedAt) || updated.UpdatedAt.Equal(note.UpdatedAt))
}

func TestSharingLifecycle(t *testing.T) {
	svc, _, userID := newTestNoteService(t)
	ctx := context.Background()
	note := createNote(t, svc, userID, "share me")
	hexToken := regexp.MustCompile(`^[0-9a-f]{32}$`)

	shared, err := svc.UpdateNote(ctx, note.ID, model.NotePatch{IsShared: boolPtr(true)})
	require.NoError(t, err)
	require.NotNil(t, shared.ShareToken)
	first := *shared.ShareToken
	assert.Regexp(t, hexToken, first)

	if url := svc.ShareURL(shared); assert.NotNil(t, url) {
		assert.Equal(t, "http://localhost:8080/shared/"+first, *url)
	}

	// sharing again mints a fresh token
	reshared, err := svc.UpdateNote(ctx, note.ID, model.NotePatch{IsShared: boolPtr(true)})
	require.NoError(t, err)
	require.NotNil(t, reshared.ShareToken)
	assert.NotEqual(t, first, *reshared.ShareToken)

	// unsharing clears the token and the URL
	unshared, err := svc.UpdateNote(ctx, note.ID, model.NotePatch{IsShared: boolPtr(false)})
	require.NoError(t, err)
	assert.False(t, unshared.IsShared)
	assert.Nil(t, unshared.ShareToken)
	assert.Nil(t, svc.ShareURL(unshared))

	// sharing after unsharing rotates again
	again, err := svc.UpdateNote(ctx, note.ID, model.NotePatch{IsShared: boolPtr(true)})
	require.NoError(t, err)
	require.NotNil(t, again.ShareToken)
	assert.NotEqual(t, first, *again.ShareToken)
}

func TestUpdateTrashedNoteNotFound(t *testing.T) {
	svc, _, userID := newTestNoteService(t)
	ctx := context.Background()
	note := createNote(t, svc, userID, "doomed")

	require.NoError(t, svc.DeleteNote(ctx, note.ID))

	title := "too late"
	_, err := svc.UpdateNote(ctx, note.ID, model.NotePatch{Title: &title})
	assert.ErrorIs(t, err, repository.ErrNoteNotFound)
}

func TestTrashLifecycle(t *testing.T) {
	svc, db, userID := newTestNoteService(t)
	ctx := context.Background()

	note := createNote(t, svc, userID, "buy milk")
	require.NoError(t, svc.DeleteNote(ctx, note.ID))

	t.Run("freshly deleted note sits in trash with a full window", func(t *testing.T) {
		now := time.Now().UTC()
		trash, err := svc.ListTrash(ctx, userID, now)
		require.NoError(t, err)
		require.Len(t, trash, 1)

		left := svc.TimeLeft(trash[0], now)
		assert.InDelta(t, testRetention.Seconds(), float64(left), 1)
	})

	t.Run("gone from active listing immediately", func(t *testing.T) {
		notes, err := svc.ListNotes(ctx, userID, "", nil)
		require.NoError(t, err)
		assert.Empty(t, notes)
	})

	t.Run("expired note is hidden from trash before any purge", func(t *testing.T) {
		backdateDeletion(t, db, note.ID, testRetention+time.Second)

		trash, err := svc.ListTrash(ctx, userID, time.Now().UTC())
		require.NoError(t, err)
		assert.Empty(t, trash)
	})

	t.Run("cleanup purges it for good", func(t *testing.T) {
		cleaned, err := svc.Cleanup(ctx, time.Now().UTC())
		require.NoError(t, err)
		assert.Equal(t, int64(1), cleaned)

		_, err = svc.GetNote(ctx, note.ID)
		assert.ErrorIs(t, err, repository.ErrNoteNotFound)

		// idempotent
		cleaned, err = svc.Cleanup(ctx, time.Now().UTC())
		require.NoError(t, err)
		assert.Zero(t, cleaned)
	})
}

func TestRestoreKeepsArchiveFlag(t *testing.T) {
	svc, _, userID := newTestNoteService(t)
	ctx := context.Background()

	note := createNote(t, svc, userID, "archived then trashed")
	_, err := svc.UpdateNote(ctx, note.ID, model.NotePatch{IsArchived: boolPtr(true)})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteNote(ctx, note.ID))

	restored, err := svc.RestoreNote(ctx, note.ID)
	require.NoError(t, err)
	assert.Nil(t, restored.DeletedAt)
	assert.True(t, restored.IsArchived, "restore returns the note to the archived view it came from")

	archived := true
	notes, err := svc.ListNotes(ctx, userID, "", &archived)
	require.NoError(t, err)
	assert.Len(t, notes, 1)

	// restoring twice fails
	_, err = svc.RestoreNote(ctx, note.ID)
	assert.ErrorIs(t, err, repository.ErrNoteNotFound)
}

func TestTimeLeftDerivation(t *testing.T) {
	svc, _, _ := newTestNoteService(t)

	deleted := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	note := &model.Note{DeletedAt: &deleted}

	tests := []struct {
		name    string
		elapsed time.Duration
		want    int64
	}{
		{"just deleted", 0, 30},
		{"ten seconds in", 10 * time.Second, 20},
		{"sub-second elapsed floors", 10*time.Second + 900*time.Millisecond, 20},
		{"window boundary", 30 * time.Second, 0},
		{"past the window clamps to zero", time.Minute, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, svc.TimeLeft(note, deleted.Add(tc.elapsed)))
		})
	}
}
