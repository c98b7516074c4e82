package usecase

import (
	"context"
	"testing"

	"main/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserService(t *testing.T) *UserService {
	t.Helper()
	db, err := repository.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &UserService{UsersRepo: repository.GetUsersRepo(db)}
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestUserService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice@example.com", "hunter2", "Alice")
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	assert.NotEqual(t, "hunter2", user.Password, "password must be stored hashed")

	t.Run("login with the right password", func(t *testing.T) {
		got, err := svc.Login(ctx, "alice@example.com", "hunter2")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
		assert.Equal(t, "Alice", got.Name)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "alice@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email looks the same as a wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "nobody@example.com", "hunter2")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("duplicate registration", func(t *testing.T) {
		_, err := svc.Register(ctx, "alice@example.com", "other", "Impostor")
		assert.ErrorIs(t, err, repository.ErrEmailTaken)
	})
}

func TestRegisterEmptyPassword(t *testing.T) {
	svc := newTestUserService(t)
	_, err := svc.Register(context.Background(), "bob@example.com", "", "Bob")
	assert.Error(t, err)
}

func TestLabelService(t *testing.T) {
	svc := newTestUserService(t)
	ctx := context.Background()
	user, err := svc.Register(ctx, "carol@example.com", "pw", "Carol")
	require.NoError(t, err)

	labels := &LabelService{LabelsRepo: repository.GetLabelsRepo(svc.UsersRepo.DB)}

	created, err := labels.CreateLabel(ctx, "  work  ", user.ID)
	require.NoError(t, err)
	assert.Equal(t, "work", created.Name, "label names are trimmed")

	_, err = labels.CreateLabel(ctx, "work", user.ID)
	assert.ErrorIs(t, err, repository.ErrLabelExists)

	_, err = labels.CreateLabel(ctx, "   ", user.ID)
	assert.EqualError(t, err, "label name is required")

	listed, err := labels.ListLabels(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "work", listed[0].Name)
}
