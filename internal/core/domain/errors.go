package domain

import "errors"

var (
	ErrUnauthenticated    = errors.New("login required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("permission denied")
	ErrInvalidInput       = errors.New("invalid input")

	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("username already exists")
	ErrPostNotFound = errors.New("post not found")

	ErrSessionNotFound = errors.New("session not found")
)
