package models

import "errors"

// Domain specific errors shared across handlers and services.
var (
	ErrNotFound        = errors.New("requested item not found")
	ErrConflict        = errors.New("item already exists or conflict")
	ErrBadRequest      = errors.New("bad request")
	ErrValidation      = errors.New("validation failed")
	ErrEmptyMessage    = errors.New("message is empty")
	ErrSubmitInFlight  = errors.New("a submit is already in flight for this session")
	ErrSessionNotFound = errors.New("chat session not found or expired")
	ErrProvider        = errors.New("completion provider request failed")
)
