package domain

import "errors"

// Auth errors
var (
	ErrUserExists         = errors.New("user with given email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Article errors
var (
	ErrArticleNotFound = errors.New("article not found")
	ErrTitleExists     = errors.New("article with given title already exists")
)
