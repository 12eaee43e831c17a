package repository

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors shared by the Firestore and in-memory store
// implementations. ErrNotFound is benign on update-only paths; callers decide
// with errors.Is.
var (
	ErrNotFound      = goerr.New("not found")
	ErrAlreadyExists = goerr.New("already exists")
	ErrInvalidInput  = goerr.New("invalid input")
)
