package service

import "errors"

var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation")
	ErrComputation = errors.New("computation")
)
