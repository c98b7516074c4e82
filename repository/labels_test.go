package repository

import (
	"context"
	"testing"
	"time"

	"main/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabels(t *testing.T) {
	db := setupDB(t)
	repo := GetLabelsRepo(db)
	ctx := context.Background()
	userID := createTestUser(t, db, "a@example.com")
	otherID := createTestUser(t, db, "b@example.com")

	add := func(name string, uid int64) *model.Label {
		label := &model.Label{Name: name, UserID: uid, CreatedAt: time.Now().UTC()}
		require.NoError(t, repo.CreateLabel(ctx, label))
		return label
	}

	add("work", userID)
	add("errands", userID)

	t.Run("duplicate per user is rejected", func(t *testing.T) {
		dup := &model.Label{Name: "work", UserID: userID, CreatedAt: time.Now().UTC()}
		err := repo.CreateLabel(ctx, dup)
		assert.ErrorIs(t, err, ErrLabelExists)
	})

	t.Run("same name allowed for another user", func(t *testing.T) {
		label := add("work", otherID)
		assert.NotZero(t, label.ID)
	})

	t.Run("listing is owner-scoped and name-ordered", func(t *testing.T) {
		labels, err := repo.GetUserLabels(ctx, userID)
		require.NoError(t, err)
		require.Len(t, labels, 2)
		assert.Equal(t, "errands", labels[0].Name)
		assert.Equal(t, "work", labels[1].Name)
	})
}
