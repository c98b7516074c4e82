package services

import (
	"bytes"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters. The stored format is base64(salt) + "$" + base64(hash).
const (
	argonMemory      = 64 * 1024
	argonIterations  = 3
	argonParallelism = 2
	argonKeyLength   = 32
	saltLength       = 16
)

// HashPassword derives an argon2id hash with a fresh random salt. Any
// non-empty password is accepted.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("password is required")
	}

	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.New("failed to generate salt")
	}

	hash := argon2.IDKey([]byte(password), salt,
		argonIterations, argonMemory, argonParallelism, argonKeyLength)

	return base64.RawStdEncoding.EncodeToString(salt) + "$" +
		base64.RawStdEncoding.EncodeToString(hash), nil
}

// VerifyPassword recomputes the hash of providedPassword with the stored
// salt and compares. An error means the stored value is malformed, not that
// the password was wrong.
func VerifyPassword(storedPassword, providedPassword string) (bool, error) {
	parts := strings.Split(storedPassword, "$")
	if len(parts) != 2 {
		return false, errors.New("invalid stored password format")
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[0])
	if err != nil {
		return false, err
	}
	storedHash, err := base64.RawStdEncoding.DecodeString(parts[1])
	if err != nil {
		return false, err
	}

	computed := argon2.IDKey([]byte(providedPassword), salt,
		argonIterations, argonMemory, argonParallelism, argonKeyLength)
	return bytes.Equal(computed, storedHash), nil
}

// ComparePasswords reports whether plainPassword matches storedHash,
// treating malformed stored values as a mismatch.
func ComparePasswords(storedHash, plainPassword string) bool {
	match, err := VerifyPassword(storedHash, plainPassword)
	if err != nil {
		return false
	}
	return match
}
