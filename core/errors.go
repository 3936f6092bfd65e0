package core

import "errors"

// Account errors
var (
	ErrAccountExists     = errors.New("account already exists")    // signup with a taken email
	ErrAccountNotFound   = errors.New("account not found")         // operation addressing a missing email
	ErrInvalidCredential = errors.New("invalid email or password") // password mismatch at login
)

// Validation errors (caller input)
var (
	ErrNameRequired  = errors.New("name is required")
	ErrEmailRequired = errors.New("email is required")
)

// Config errors (library setup)
var (
	ErrStorageRequired = errors.New("storage adapter is required")
)
