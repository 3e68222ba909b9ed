package guest

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidName  = errors.New("invalid guest name")
	ErrInvalidEmail = errors.New("invalid email format")
	ErrInvalidPhone = errors.New("invalid phone number")
)

var (
	nameRegex  = regexp.MustCompile(`^[a-zA-Z\s'\-]+$`)
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^[\d\s+\-()]{6,20}$`)
)

type Name struct {
	first string
	last  string
}

func NewName(first, last string) (Name, error) {
	first = strings.TrimSpace(first)
	last = strings.TrimSpace(last)
	if len(first) < 2 || !nameRegex.MatchString(first) {
		return Name{}, ErrInvalidName
	}
	if last != "" && !nameRegex.MatchString(last) {
		return Name{}, ErrInvalidName
	}
	return Name{first: first, last: last}, nil
}

// NewNameFromFull splits a single "full name" field as the public checkout
// form supplies it: first word, rest.
func NewNameFromFull(full string) (Name, error) {
	full = strings.TrimSpace(full)
	parts := strings.SplitN(full, " ", 2)
	if len(parts) == 1 {
		return NewName(parts[0], "")
	}
	return NewName(parts[0], parts[1])
}

func (n Name) First() string { return n.first }
func (n Name) Last() string  { return n.last }

func (n Name) Full() string {
	if n.last == "" {
		return n.first
	}
	return n.first + " " + n.last
}

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string { return e.value }

type Phone struct {
	value string
}

func NewPhone(s string) (Phone, error) {
	s = strings.TrimSpace(s)
	if !phoneRegex.MatchString(s) {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{value: s}, nil
}

func (p Phone) Value() string { return p.value }
