package repository

import "errors"

var (
	ErrNoteNotFound  = errors.New("note not found")
	ErrUserNotFound  = errors.New("user not found")
	ErrEmailTaken    = errors.New("email already registered")
	ErrLabelExists   = errors.New("label already exists")
	ErrTokenConflict = errors.New("share token already in use")
)
