package usecase

import (
	"context"
	"errors"
	"time"

	"main/model"
	"main/repository"
	"main/services"
)

// ErrInvalidCredentials covers both unknown-user and wrong-password so the
// two are indistinguishable to a caller.
var ErrInvalidCredentials = errors.New("invalid email or password")

type UserService struct {
	UsersRepo *repository.UsersRepo
}

// Register creates an account. Duplicate emails surface as
// repository.ErrEmailTaken.
func (svc *UserService) Register(ctx context.Context, email, password, name string) (*model.User, error) {
	hash, err := services.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:     email,
		Password:  hash,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	if err := svc.UsersRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the password against the stored hash and returns the user.
func (svc *UserService) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := svc.UsersRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !services.ComparePasswords(user.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
