package usecase

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("resource not found")

	// Natural-language query pipeline failures, one per stage.
	ErrGeneration    = errors.New("sql generation failed")
	ErrValidation    = errors.New("sql validation failed")
	ErrExecution     = errors.New("sql execution failed")
	ErrQueryTimeout  = errors.New("query timed out")
	ErrPoolExhausted = errors.New("connection pool exhausted")
)
