package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// MinLength mirrors the login form rule. Hash refuses anything shorter so a
// weak secret can never reach the database through a seed or misconfigured env.
const MinLength = 6

var (
	ErrTooShort = errors.New("password shorter than minimum length")
	ErrMismatch = errors.New("password does not match")
)

func Hash(raw string) (string, error) {
	if len(raw) < MinLength {
		return "", ErrTooShort
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hashed), nil
}

func Verify(hash, raw string) error {
	if hash == "" || raw == "" {
		return ErrMismatch
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(raw)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		return err
	}

	return nil
}
