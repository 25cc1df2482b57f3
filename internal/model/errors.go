package model

import "errors"

// Sentinel errors shared across services and handlers
var (
	ErrNotFound           = errors.New("record not found")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrAlreadyInstalled   = errors.New("database already installed")
)
