package model

import "time"

type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // argon2 hash, never serialized
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
