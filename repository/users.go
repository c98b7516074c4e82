package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"main/model"
)

type UsersRepo struct {
	DB *sql.DB
}

func GetUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{DB: db}
}

// CreateUser inserts the user and fills in the generated ID. Email
// uniqueness is enforced by the store.
func (r *UsersRepo) CreateUser(ctx context.Context, user *model.User) error {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO users (email, password, name, created_at) VALUES (?, ?, ?, ?)`,
		user.Email, user.Password, user.Name, toMillis(user.CreatedAt))
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: users.email") {
			return ErrEmailTaken
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	user.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read user id: %w", err)
	}
	return nil
}

func (r *UsersRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	row := r.DB.QueryRowContext(ctx,
		`SELECT id, email, password, name, created_at FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func (r *UsersRepo) GetUserByID(ctx context.Context, userID int64) (*model.User, error) {
	row := r.DB.QueryRowContext(ctx,
		`SELECT id, email, password, name, created_at FROM users WHERE id = ?`, userID)
	return scanUser(row)
}

func scanUser(row *sql.Row) (*model.User, error) {
	var (
		user      model.User
		createdAt int64
	)
	err := row.Scan(&user.ID, &user.Email, &user.Password, &user.Name, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to select user: %w", err)
	}
	user.CreatedAt = fromMillis(createdAt)
	return &user, nil
}
