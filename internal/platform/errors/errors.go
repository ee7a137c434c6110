package apperrors

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotFound         = errors.New("not found")
	ErrInvalidDataset   = errors.New("invalid dataset")
	ErrPrintUnavailable = errors.New("print command unavailable")
)
