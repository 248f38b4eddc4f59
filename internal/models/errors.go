package models

import "errors"

// Credential store errors shared by repositories and services.
var (
	ErrDuplicateUsername = errors.New("username already exists")
	ErrUserNotFound      = errors.New("user not found")
)
